package order

import (
	"fmt"

	"amsral/internal/pkg/errs"
)

// Status represents the lifecycle state of a laundry order.
// It implements a state machine with defined transitions so orders follow
// the production workflow: item intake, washing, completion, delivery and
// billing.
//
// State transitions:
//
//	Pending ──> Processing ──> Completed ──> Delivered ──> Invoiced
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first opened.
	// Orders in this status are collecting production records at intake.
	Pending

	// Processing indicates at least one record has washing assigned.
	Processing

	// Completed indicates every production record has finished processing.
	Completed

	// Delivered indicates the processed items were handed back to the customer.
	Delivered

	// Invoiced indicates the order has been billed.
	// This is a final state with no further transitions allowed.
	Invoiced
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Completed:  "Completed",
		Delivered:  "Delivered",
		Invoiced:   "Invoiced",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Completed:  "Completed",
		Delivered:  "Delivered",
		Invoiced:   "Invoiced",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Completed, Delivered, Invoiced.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAddRecord checks whether production records may still be added.
//
// Records can be added while the order is at intake (Pending) or already
// in the wash room (Processing). Once processing has finished the record
// set is frozen.
func (s Status) ValidateAddRecord() error {
	if s != Pending && s != Processing {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to add records", s.String()),
		)
	}
	return nil
}

// StartProcessing transitions the status to Processing.
//
// Valid transitions:
//   - Pending -> Processing (first record assigned to a machine)
//   - Processing -> Processing (further records assigned)
//
// Returns:
//   - (Processing, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) StartProcessing() (Status, error) {
	if s != Pending && s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start processing", s.String()),
		)
	}

	return Processing, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Processing -> Completed (all records finished)
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Completed -> Delivered (items handed back to the customer)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Deliver() (Status, error) {
	if s != Completed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}

// Invoice transitions the status to Invoiced.
//
// Valid transitions:
//   - Delivered -> Invoiced (order billed)
//
// Invoiced is a final state with no further transitions possible.
//
// Returns:
//   - (Invoiced, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Invoice() (Status, error) {
	if s != Delivered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to invoice", s.String()),
		)
	}

	return Invoiced, nil
}
