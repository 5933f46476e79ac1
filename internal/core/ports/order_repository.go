package ports

import (
	"context"
	"time"

	"amsral/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored with their production records; loading an order always
// rehydrates the full aggregate.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The storage sequence assigns the order's integer id; Add sets it on
	// the aggregate before returning.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate,
	// including added, assigned and completed records.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its sequence id.
	// Returns the complete order with all of its records.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllIncomplete retrieves all orders that have not reached
	// Completed status yet. Used by the workflow screens.
	GetAllIncomplete(ctx context.Context) ([]*order.Order, error)

	// GetAllInDeliveredStatus retrieves all orders awaiting billing.
	GetAllInDeliveredStatus(ctx context.Context) ([]*order.Order, error)

	// GetAllPendingOlderThan retrieves pending orders created before the
	// cutoff. Used by the aging sweep to flag stale intake orders.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
