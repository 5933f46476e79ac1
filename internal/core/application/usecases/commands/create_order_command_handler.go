package commands

import (
	"context"
	"errors"

	"amsral/internal/core/domain/model/order"
)

// ErrCustomerIsInactive is returned when opening an order for a customer that
// was deactivated.
var ErrCustomerIsInactive = errors.New("customer is inactive")

// CreateOrderCommandHandler handles the business logic for opening orders.
// Verifies the customer exists and is active before persisting the order.
type CreateOrderCommandHandler struct {
	uowFactory IntakeUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake.
// Requires an IntakeUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory IntakeUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The order starts in Pending status with no records; the storage sequence
// assigns the order number, which is returned to the caller.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
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

	owner, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return 0, err
	}
	if !owner.IsActive() {
		return 0, ErrCustomerIsInactive
	}

	newOrder, err := order.NewOrder(cmd.CustomerID(), cmd.Reference())
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newOrder.ID(), nil
}
