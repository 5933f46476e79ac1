package customer

import (
	"errors"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/pkg/errs"
)

// Domain errors for customer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructors")
)

// Customer represents a client of the laundry service.
// It is an aggregate root that manages customer identity and contact details.
//
// Business rules:
//   - Customer must have a valid UUID and a non-empty name
//   - Phone and address are optional contact details
//   - Deactivated customers are kept for history but cannot open new orders
type Customer struct {
	// id uniquely identifies the customer
	id kernel.UUID
	// name is the customer's display name
	name string
	// phone is the optional contact phone number
	phone string
	// address is the optional pickup/delivery address
	address string
	// active indicates whether the customer can open new orders
	active bool
	// isConstructed ensures the customer was created via a constructor
	isConstructed bool
}

// NewCustomer registers a new active customer.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Display name (must not be empty)
//   - phone: Optional contact phone
//   - address: Optional pickup/delivery address
//
// Returns:
//   - *Customer: The created customer if all validations pass
//   - error: Validation error if any parameter is invalid
func NewCustomer(id kernel.UUID, name string, phone string, address string) (*Customer, error) {
	c := &Customer{
		phone:         phone,
		address:       address,
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(c.setID(id), c.setName(name)); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id kernel.UUID, name string, phone string, address string, active bool) (*Customer, error) {
	c, err := NewCustomer(id, name, phone, address)
	if err != nil {
		return nil, err
	}

	c.active = active
	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}

	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the optional contact phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the optional pickup/delivery address.
func (c *Customer) Address() string {
	return c.address
}

// IsActive reports whether the customer can open new orders.
func (c *Customer) IsActive() bool {
	return c.active
}

// Deactivate marks the customer as inactive.
// History is kept; the customer just cannot open new orders.
func (c *Customer) Deactivate() {
	c.active = false
}

// Activate marks the customer as active again.
func (c *Customer) Activate() {
	c.active = true
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
