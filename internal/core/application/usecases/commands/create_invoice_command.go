package commands

import (
	"errors"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/pkg/guard"
)

var (
	ErrCreateInvoiceCommandIsNotConstructed = errors.New(
		"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
	)
	ErrUnitPriceIsInvalid = errors.New("unit price must be greater than 0")
)

// CreateInvoiceCommand represents a request to bill a delivered order.
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID      kernel.UUID
	orderID        int64
	unitPriceCents int64

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand creates a command to bill an order at the given
// unit price in cents.
func NewCreateInvoiceCommand(invoiceID kernel.UUID, orderID int64, unitPriceCents int64) (CreateInvoiceCommand, error) {
	invoiceCommand := CreateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		invoiceCommand.setInvoiceID(invoiceID),
		invoiceCommand.setOrderID(orderID),
		invoiceCommand.setUnitPriceCents(unitPriceCents),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}

	return invoiceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the identifier for the new invoice.
func (c CreateInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// OrderID returns the billed order's sequence number.
func (c CreateInvoiceCommand) OrderID() int64 {
	return c.orderID
}

// UnitPriceCents returns the price per item in cents.
func (c CreateInvoiceCommand) UnitPriceCents() int64 {
	return c.unitPriceCents
}

func (c *CreateInvoiceCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *CreateInvoiceCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *CreateInvoiceCommand) setUnitPriceCents(unitPriceCents int64) error {
	if unitPriceCents <= 0 {
		return ErrUnitPriceIsInvalid
	}

	c.unitPriceCents = unitPriceCents
	return nil
}
