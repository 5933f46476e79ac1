package commands

import (
	"context"
)

// AssignRecordProcessingCommandHandler routes production records to machines.
// Moving the first record into processing also moves the order itself from
// Pending to Processing.
type AssignRecordProcessingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignRecordProcessingCommandHandler creates a handler for processing assignment.
func NewAssignRecordProcessingCommandHandler(uowFactory OrderUoWFactory) AssignRecordProcessingCommandHandler {
	return AssignRecordProcessingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
func (h *AssignRecordProcessingCommandHandler) Handle(ctx context.Context, cmd AssignRecordProcessingCommand) error {
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

	if err = aggregate.AssignRecordProcessing(
		cmd.RecordID(), cmd.ProcessTypes(), cmd.WashingMachine(), cmd.DryingMachine(),
	); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
