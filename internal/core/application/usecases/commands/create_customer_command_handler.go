package commands

import (
	"context"

	"amsral/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler handles the business logic for customer registration.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
// Requires a CustomerUoWFactory for transactional persistence.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command.
// Creates the customer in active state and persists it transactionally.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
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

	newCustomer, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.Phone(), cmd.Address())
	if err != nil {
		return err
	}

	if err = uow.CustomerRepository().Add(ctx, newCustomer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
