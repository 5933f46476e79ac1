package commands

import (
	"errors"

	"amsral/internal/pkg/guard"
)

var ErrBillDeliveredOrdersCommandIsNotConstructed = errors.New(
	"BillDeliveredOrdersCommand must be created via NewBillDeliveredOrdersCommand constructor",
)

// BillDeliveredOrdersCommand represents a sweep that turns every delivered
// order into a draft invoice at the standing unit price.
type BillDeliveredOrdersCommand struct { //nolint:recvcheck //using for validation
	unitPriceCents int64

	guard guard.ConstructorGuard
}

// NewBillDeliveredOrdersCommand creates a command for the billing sweep.
func NewBillDeliveredOrdersCommand(unitPriceCents int64) (BillDeliveredOrdersCommand, error) {
	billCommand := BillDeliveredOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := billCommand.setUnitPriceCents(unitPriceCents); err != nil {
		return BillDeliveredOrdersCommand{}, err
	}

	return billCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c BillDeliveredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrBillDeliveredOrdersCommandIsNotConstructed)
}

// UnitPriceCents returns the standing price per item in cents.
func (c BillDeliveredOrdersCommand) UnitPriceCents() int64 {
	return c.unitPriceCents
}

func (c *BillDeliveredOrdersCommand) setUnitPriceCents(unitPriceCents int64) error {
	if unitPriceCents <= 0 {
		return ErrUnitPriceIsInvalid
	}

	c.unitPriceCents = unitPriceCents
	return nil
}
