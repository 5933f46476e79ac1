package user

import (
	"fmt"

	"amsral/internal/pkg/errs"
)

// Role classifies what an operator account is allowed to administer.
// Enforcement of the permission matrix lives outside this module; the role
// itself is just administrable data on the account.
type Role string

const (
	// RoleAdmin can administer users and every workflow screen.
	RoleAdmin Role = "Admin"
	// RoleManager can manage customers, orders and billing.
	RoleManager Role = "Manager"
	// RoleOperator can work the production workflow only.
	RoleOperator Role = "Operator"
)

// Validate checks if the Role is one of the supported values.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleManager, RoleOperator:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%q is not a supported role", string(r)))
	}
}

// String implements the fmt.Stringer interface.
func (r Role) String() string {
	return string(r)
}
