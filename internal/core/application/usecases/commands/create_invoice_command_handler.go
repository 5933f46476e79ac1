package commands

import (
	"context"

	"amsral/internal/core/domain/model/billing"
)

// CreateInvoiceCommandHandler bills delivered orders one at a time.
// The order transitions to Invoiced and a draft invoice is created in the
// same transaction.
type CreateInvoiceCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewCreateInvoiceCommandHandler creates a handler for manual billing.
func NewCreateInvoiceCommandHandler(uowFactory BillingUoWFactory) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the billing command.
func (h *CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) error {
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

	if err = aggregate.Invoice(); err != nil {
		return err
	}

	invoice, err := billing.NewInvoice(
		cmd.InvoiceID(),
		aggregate.ID(),
		aggregate.CustomerID(),
		aggregate.Quantity(),
		cmd.UnitPriceCents(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.InvoiceRepository().Add(ctx, invoice); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
