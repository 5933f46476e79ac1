// Package billing provides the Invoice aggregate for charging delivered
// orders. Amounts are kept in cents to avoid floating point rounding.
package billing

import (
	"errors"
	"fmt"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/pkg/errs"
)

// ErrInvoiceIsNotConstructed is returned when using an improperly initialized Invoice.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice or RestoreInvoice constructors")

// Status represents the billing state of an invoice.
//
// State transitions:
//
//	Draft ──> Issued ──> Paid
type Status int

const (
	// StatusUnknown represents an invalid or undefined invoice status.
	StatusUnknown Status = iota
	// StatusDraft is the initial state of a freshly created invoice.
	StatusDraft
	// StatusIssued indicates the invoice was sent to the customer.
	StatusIssued
	// StatusPaid indicates payment was received. Final state.
	StatusPaid
)

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	switch s {
	case StatusDraft, StatusIssued, StatusPaid:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("invoice status is invalid",
			fmt.Errorf("%d is not a valid invoice status", s))
	}
}

// String implements the fmt.Stringer interface; safe on any value.
func (s Status) String() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusIssued:
		return "Issued"
	case StatusPaid:
		return "Paid"
	default:
		return "Unknown"
	}
}

// Invoice represents the bill for one delivered order.
//
// Business rules:
//   - Invoice must reference a valid order and customer
//   - Quantity and unit price must be positive
//   - The total amount is derived: quantity * unit price
//   - Status transitions follow Draft -> Issued -> Paid
type Invoice struct {
	// id uniquely identifies the invoice
	id kernel.UUID
	// orderID is the billed order's sequence number
	orderID int64
	// customerID references the charged customer
	customerID kernel.UUID
	// quantity is the billed item count
	quantity int
	// unitPriceCents is the price per item in cents
	unitPriceCents int64
	// status represents the billing state
	status Status
	// isConstructed ensures the invoice was created via a constructor
	isConstructed bool
}

// NewInvoice creates a draft invoice for a delivered order.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - orderID: The billed order's sequence number (must be positive)
//   - customerID: The charged customer (must be a valid UUID)
//   - quantity: Billed item count (must be positive)
//   - unitPriceCents: Price per item in cents (must be positive)
func NewInvoice(
	id kernel.UUID,
	orderID int64,
	customerID kernel.UUID,
	quantity int,
	unitPriceCents int64,
) (*Invoice, error) {
	inv := &Invoice{
		status:        StatusDraft,
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setOrderID(orderID),
		inv.setCustomerID(customerID),
		inv.setQuantity(quantity),
		inv.setUnitPriceCents(unitPriceCents),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// RestoreInvoice reconstructs an invoice from persistence.
func RestoreInvoice(
	id kernel.UUID,
	orderID int64,
	customerID kernel.UUID,
	quantity int,
	unitPriceCents int64,
	status Status,
) (*Invoice, error) {
	inv, err := NewInvoice(id, orderID, customerID, quantity, unitPriceCents)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	inv.status = status

	return inv, nil
}

// Validate ensures the Invoice instance was properly constructed.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}

	return nil
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// OrderID returns the billed order's sequence number.
func (i *Invoice) OrderID() int64 {
	return i.orderID
}

// CustomerID returns the charged customer's identifier.
func (i *Invoice) CustomerID() kernel.UUID {
	return i.customerID
}

// Quantity returns the billed item count.
func (i *Invoice) Quantity() int {
	return i.quantity
}

// UnitPriceCents returns the price per item in cents.
func (i *Invoice) UnitPriceCents() int64 {
	return i.unitPriceCents
}

// TotalCents returns the derived invoice total in cents.
func (i *Invoice) TotalCents() int64 {
	return int64(i.quantity) * i.unitPriceCents
}

// Status returns the billing state.
func (i *Invoice) Status() Status {
	return i.status
}

// Issue marks the draft invoice as sent to the customer.
func (i *Invoice) Issue() error {
	if i.status != StatusDraft {
		return errs.NewValueIsInvalidErrorWithCause("invoice status is invalid",
			fmt.Errorf("%s is not a valid status to issue", i.status))
	}

	i.status = StatusIssued
	return nil
}

// MarkPaid records payment for an issued invoice.
func (i *Invoice) MarkPaid() error {
	if i.status != StatusIssued {
		return errs.NewValueIsInvalidErrorWithCause("invoice status is invalid",
			fmt.Errorf("%s is not a valid status to mark paid", i.status))
	}

	i.status = StatusPaid
	return nil
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not a positive integer", orderID))
	}
	i.orderID = orderID
	return nil
}

func (i *Invoice) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	i.customerID = customerID
	return nil
}

func (i *Invoice) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Invoice) setUnitPriceCents(unitPriceCents int64) error {
	if unitPriceCents <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPriceCents is invalid",
			fmt.Errorf("%d is not greater than 0", unitPriceCents))
	}
	i.unitPriceCents = unitPriceCents
	return nil
}
