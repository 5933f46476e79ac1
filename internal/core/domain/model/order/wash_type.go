package order

import (
	"fmt"

	"amsral/internal/pkg/errs"
)

// WashType classifies how a production record's items are washed.
// The value is persisted as text and shown to operators as-is.
type WashType string

const (
	// WashNormal is the standard wash program.
	WashNormal WashType = "Normal"
	// WashHeavy is the program for heavily soiled items.
	WashHeavy WashType = "Heavy"
	// WashDelicate is the low-agitation program for delicate fabrics.
	WashDelicate WashType = "Delicate"
	// WashDryClean marks items routed to dry cleaning instead of washing.
	WashDryClean WashType = "DryClean"
)

// Validate checks if the WashType is one of the supported programs.
func (w WashType) Validate() error {
	switch w {
	case WashNormal, WashHeavy, WashDelicate, WashDryClean:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("wash type is invalid",
			fmt.Errorf("%q is not a supported wash type", string(w)))
	}
}

// String implements the fmt.Stringer interface.
func (w WashType) String() string {
	return string(w)
}
