package commands

import (
	"context"
)

// CompleteRecordCommandHandler finishes processing for production records.
// Completing the last open record of an order moves the order to Completed.
type CompleteRecordCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteRecordCommandHandler creates a handler for record completion.
func NewCompleteRecordCommandHandler(uowFactory OrderUoWFactory) CompleteRecordCommandHandler {
	return CompleteRecordCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h *CompleteRecordCommandHandler) Handle(ctx context.Context, cmd CompleteRecordCommand) error {
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

	if err = aggregate.CompleteRecord(cmd.RecordID(), cmd.DeliveredQuantity()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
