package commands_test

import (
	"testing"

	"amsral/internal/core/application/usecases/commands"
	"amsral/internal/core/domain/model/billing"
	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateInvoiceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	invoiceID := kernel.NewUUID()
	cmd, _ := commands.NewCreateInvoiceCommand(invoiceID, 6, 150)

	aggregate := deliveredOrder(t, 6)

	repo := new(MockOrderRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(6)).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Add", mock.Anything, mock.AnythingOfType("*billing.Invoice")).
			Run(func(args mock.Arguments) {
				invoice := args.Get(1).(*billing.Invoice)
				require.True(t, invoice.ID().IsEqual(invoiceID))
				require.Equal(t, int64(6), invoice.OrderID())
				require.Equal(t, 5, invoice.Quantity())
				require.Equal(t, int64(750), invoice.TotalCents())
				require.Equal(t, billing.StatusDraft, invoice.Status())
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateInvoiceCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Invoiced, aggregate.Status())
	repo.AssertExpectations(t)
	invoiceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_NotDelivered(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateInvoiceCommand(kernel.NewUUID(), 6, 150)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(6)).Return(restoredOrder(t, 6, "6A"), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateInvoiceCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Pending is not a valid status to invoice")
}
