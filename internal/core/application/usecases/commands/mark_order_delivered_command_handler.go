package commands

import (
	"context"

	"amsral/internal/core/ports"
)

// MarkOrderDeliveredCommandHandler hands completed orders back to customers.
// After the transition is committed the handler announces the status change
// so downstream consumers (billing, notifications) can react.
type MarkOrderDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewMarkOrderDeliveredCommandHandler creates a handler for order delivery.
func NewMarkOrderDeliveredCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) MarkOrderDeliveredCommandHandler {
	return MarkOrderDeliveredCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery command.
func (h *MarkOrderDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkOrderDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Deliver(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.PublishOrderStatusChanged(ctx, aggregate.ID(), aggregate.Status())
}
