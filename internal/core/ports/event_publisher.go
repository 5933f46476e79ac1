package ports

import (
	"context"

	"amsral/internal/core/domain/model/order"
)

// EventPublisher notifies external consumers about order lifecycle changes.
// Implementations must be safe for concurrent use; publishing failures are
// reported to the caller, which decides whether they are fatal.
type EventPublisher interface {
	// PublishOrderStatusChanged announces a status transition of an order.
	PublishOrderStatusChanged(ctx context.Context, orderID int64, status order.Status) error

	// PublishOrderEscalated announces that an order sat in intake past the
	// aging threshold and needs attention.
	PublishOrderEscalated(ctx context.Context, orderID int64) error
}
