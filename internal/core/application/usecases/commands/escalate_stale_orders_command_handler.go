package commands

import (
	"context"
	"time"

	"amsral/internal/core/ports"
)

// EscalateStaleOrdersCommandHandler flags intake orders that nobody touched
// within the aging threshold. The sweep does not mutate order state; it
// announces each stale order so operators get notified.
type EscalateStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewEscalateStaleOrdersCommandHandler creates a handler for the aging sweep.
func NewEscalateStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) EscalateStaleOrdersCommandHandler {
	return EscalateStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle runs the sweep and returns the number of escalated orders.
func (h *EscalateStaleOrdersCommandHandler) Handle(ctx context.Context, cmd EscalateStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().Add(-cmd.OlderThan())
	staleOrders, err := uow.OrderRepository().GetAllPendingOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, staleOrder := range staleOrders {
		if err = h.publisher.PublishOrderEscalated(ctx, staleOrder.ID()); err != nil {
			return 0, err
		}
	}

	return len(staleOrders), nil
}
