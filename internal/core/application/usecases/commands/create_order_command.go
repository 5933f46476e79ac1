package commands

import (
	"errors"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrReferenceIsRequired = errors.New("reference is required")
)

// CreateOrderCommand represents a request to open a new laundry order for a
// customer at intake.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, "12 shirts, pickup friday")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %d opened and collecting records", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	reference  string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// Validates that the customer ID is valid and the reference is not empty.
func NewCreateOrderCommand(customerID kernel.UUID, reference string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setReference(reference),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the owning customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Reference returns the free-text intake note.
func (c CreateOrderCommand) Reference() string {
	return c.reference
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setReference(reference string) error {
	if reference == "" {
		return ErrReferenceIsRequired
	}

	c.reference = reference
	return nil
}
