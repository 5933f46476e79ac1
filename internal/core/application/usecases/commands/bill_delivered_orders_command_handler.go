package commands

import (
	"context"

	"amsral/internal/core/domain/model/billing"
	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/ports"
)

// BillDeliveredOrdersCommandHandler invoices all delivered orders in one
// sweep. Each order is billed in its own transaction so one failing order
// does not block the rest of the batch.
type BillDeliveredOrdersCommandHandler struct {
	uowFactory BillingUoWFactory
	publisher  ports.EventPublisher
}

// NewBillDeliveredOrdersCommandHandler creates a handler for the billing sweep.
func NewBillDeliveredOrdersCommandHandler(
	uowFactory BillingUoWFactory,
	publisher ports.EventPublisher,
) BillDeliveredOrdersCommandHandler {
	return BillDeliveredOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle runs the sweep and returns the number of invoiced orders.
func (h *BillDeliveredOrdersCommandHandler) Handle(ctx context.Context, cmd BillDeliveredOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	orderIDs, err := h.deliveredOrderIDs(ctx)
	if err != nil {
		return 0, err
	}

	billed := 0
	for _, orderID := range orderIDs {
		if err = h.billOrder(ctx, orderID, cmd.UnitPriceCents()); err != nil {
			return billed, err
		}
		billed++
	}

	return billed, nil
}

func (h *BillDeliveredOrdersCommandHandler) deliveredOrderIDs(ctx context.Context) ([]int64, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveredOrders, err := uow.OrderRepository().GetAllInDeliveredStatus(ctx)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	orderIDs := make([]int64, 0, len(deliveredOrders))
	for _, deliveredOrder := range deliveredOrders {
		orderIDs = append(orderIDs, deliveredOrder.ID())
	}
	return orderIDs, nil
}

func (h *BillDeliveredOrdersCommandHandler) billOrder(ctx context.Context, orderID int64, unitPriceCents int64) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = aggregate.Invoice(); err != nil {
		return err
	}

	invoice, err := billing.NewInvoice(
		kernel.NewUUID(),
		aggregate.ID(),
		aggregate.CustomerID(),
		aggregate.Quantity(),
		unitPriceCents,
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

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.PublishOrderStatusChanged(ctx, aggregate.ID(), aggregate.Status())
}
