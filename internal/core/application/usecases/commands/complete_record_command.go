package commands

import (
	"errors"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/pkg/guard"
)

var (
	ErrCompleteRecordCommandIsNotConstructed = errors.New(
		"CompleteRecordCommand must be created via NewCompleteRecordCommand constructor",
	)
	ErrDeliveredQuantityIsInvalid = errors.New("delivered quantity must not be negative")
)

// CompleteRecordCommand represents a request to finish processing of one
// production record, counting how many items come back from the machines.
type CompleteRecordCommand struct { //nolint:recvcheck //using for validation
	orderID           int64
	recordID          kernel.UUID
	deliveredQuantity int

	guard guard.ConstructorGuard
}

// NewCompleteRecordCommand creates a command to complete a record.
// The upper bound on deliveredQuantity is the record's batch size and is
// enforced by the aggregate.
func NewCompleteRecordCommand(orderID int64, recordID kernel.UUID, deliveredQuantity int) (CompleteRecordCommand, error) {
	completeCommand := CompleteRecordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setOrderID(orderID),
		completeCommand.setRecordID(recordID),
		completeCommand.setDeliveredQuantity(deliveredQuantity),
	); err != nil {
		return CompleteRecordCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteRecordCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRecordCommandIsNotConstructed)
}

// OrderID returns the target order's sequence number.
func (c CompleteRecordCommand) OrderID() int64 {
	return c.orderID
}

// RecordID returns the target record's identifier.
func (c CompleteRecordCommand) RecordID() kernel.UUID {
	return c.recordID
}

// DeliveredQuantity returns the counted item total.
func (c CompleteRecordCommand) DeliveredQuantity() int {
	return c.deliveredQuantity
}

func (c *CompleteRecordCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteRecordCommand) setRecordID(recordID kernel.UUID) error {
	if err := recordID.Validate(); err != nil {
		return err
	}

	c.recordID = recordID
	return nil
}

func (c *CompleteRecordCommand) setDeliveredQuantity(deliveredQuantity int) error {
	if deliveredQuantity < 0 {
		return ErrDeliveredQuantityIsInvalid
	}

	c.deliveredQuantity = deliveredQuantity
	return nil
}
