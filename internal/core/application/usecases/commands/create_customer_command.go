package commands

import (
	"errors"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
)

// CreateCustomerCommand represents a request to register a new customer.
// Phone and address are optional contact details.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	phone      string
	address    string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// Validates that the customer ID is valid and the name is not empty.
func NewCreateCustomerCommand(customerID kernel.UUID, name, phone, address string) (CreateCustomerCommand, error) {
	customerCommand := CreateCustomerCommand{
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerCommand.setCustomerID(customerID),
		customerCommand.setName(name),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return customerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the unique identifier for the customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Phone returns the optional contact phone number.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the optional pickup/delivery address.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}
