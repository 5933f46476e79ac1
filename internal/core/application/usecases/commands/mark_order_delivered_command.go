package commands

import (
	"errors"

	"amsral/internal/pkg/guard"
)

var ErrMarkOrderDeliveredCommandIsNotConstructed = errors.New(
	"MarkOrderDeliveredCommand must be created via NewMarkOrderDeliveredCommand constructor",
)

// MarkOrderDeliveredCommand represents a request to hand a completed order
// back to the customer.
type MarkOrderDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewMarkOrderDeliveredCommand creates a command to deliver an order.
func NewMarkOrderDeliveredCommand(orderID int64) (MarkOrderDeliveredCommand, error) {
	deliverCommand := MarkOrderDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deliverCommand.setOrderID(orderID); err != nil {
		return MarkOrderDeliveredCommand{}, err
	}

	return deliverCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDeliveredCommandIsNotConstructed)
}

// OrderID returns the target order's sequence number.
func (c MarkOrderDeliveredCommand) OrderID() int64 {
	return c.orderID
}

func (c *MarkOrderDeliveredCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
