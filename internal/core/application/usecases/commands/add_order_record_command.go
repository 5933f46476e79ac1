package commands

import (
	"errors"
	"fmt"

	"amsral/internal/core/domain/model/order"
	"amsral/internal/pkg/guard"
)

var (
	ErrAddOrderRecordCommandIsNotConstructed = errors.New(
		"AddOrderRecordCommand must be created via NewAddOrderRecordCommand constructor",
	)
	ErrOrderIDIsInvalid  = errors.New("order id must be greater than 0")
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddOrderRecordCommand represents a request to add a production record to an
// order at intake. The tracking number is not part of the command; the
// handler allocates the lowest free letter for the order.
type AddOrderRecordCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	quantity int
	washType order.WashType

	guard guard.ConstructorGuard
}

// NewAddOrderRecordCommand creates a command to add a record to an order.
// Validates that the order id and quantity are positive and the wash type is
// supported.
func NewAddOrderRecordCommand(orderID int64, quantity int, washType order.WashType) (AddOrderRecordCommand, error) {
	recordCommand := AddOrderRecordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		recordCommand.setOrderID(orderID),
		recordCommand.setQuantity(quantity),
		recordCommand.setWashType(washType),
	); err != nil {
		return AddOrderRecordCommand{}, err
	}

	return recordCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderRecordCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderRecordCommandIsNotConstructed)
}

// OrderID returns the target order's sequence number.
func (c AddOrderRecordCommand) OrderID() int64 {
	return c.orderID
}

// Quantity returns the batch item count.
func (c AddOrderRecordCommand) Quantity() int {
	return c.quantity
}

// WashType returns the wash program for the batch.
func (c AddOrderRecordCommand) WashType() order.WashType {
	return c.washType
}

func (c *AddOrderRecordCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderRecordCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *AddOrderRecordCommand) setWashType(washType order.WashType) error {
	if err := washType.Validate(); err != nil {
		return fmt.Errorf("wash type: %w", err)
	}

	c.washType = washType
	return nil
}
