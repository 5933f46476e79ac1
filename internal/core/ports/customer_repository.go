// Package ports defines repository and messaging interfaces for the laundry
// management domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"amsral/internal/core/domain/model/customer"
	"amsral/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	// The customer must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
