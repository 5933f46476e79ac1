package commands_test

import (
	"testing"

	"amsral/internal/core/application/usecases/commands"
	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deliveredOrder(t *testing.T, orderID int64) *order.Order {
	t.Helper()

	tn, err := kernel.NewTrackingNumber(orderID, 'A')
	require.NoError(t, err)
	record, err := order.RestoreRecord(
		kernel.NewUUID(), &tn, 5, order.WashNormal, nil, "W1", "", 5, order.RecordDelivered)
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(
		orderID, kernel.NewUUID(), "intake batch", order.Delivered, []*order.Record{record})
	require.NoError(t, err)
	return aggregate
}

func TestBillDeliveredOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewBillDeliveredOrdersCommand(150)

	// Listing sweep transaction.
	listRepo := new(MockOrderRepository)
	listUoW := new(MockUoW)
	mock.InOrder(
		listUoW.On("Begin", ctx).Return(nil).Once(),
		listUoW.On("OrderRepository").Return(listRepo).Once(),
		listRepo.On("GetAllInDeliveredStatus", mock.Anything).
			Return([]*order.Order{deliveredOrder(t, 6), deliveredOrder(t, 7)}, nil).Once(),
		listUoW.On("Commit", ctx).Return(nil).Once(),
		listUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)

	// One billing transaction per order.
	newBillingUoW := func(orderID int64) *MockUoW {
		repo := new(MockOrderRepository)
		invoiceRepo := new(MockInvoiceRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Get", mock.Anything, orderID).Return(deliveredOrder(t, orderID), nil).Once(),
			repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
			uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
			invoiceRepo.On("Add", mock.Anything, mock.AnythingOfType("*billing.Invoice")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			publisher.On("PublishOrderStatusChanged", ctx, orderID, order.Invoiced).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		return uow
	}

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(listUoW).Once()
	factory.On("Create").Return(newBillingUoW(6)).Once()
	factory.On("Create").Return(newBillingUoW(7)).Once()

	h := commands.NewBillDeliveredOrdersCommandHandler(factory, publisher)
	billed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, billed)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestBillDeliveredOrdersCommandHandler_Handle_NothingToBill(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewBillDeliveredOrdersCommand(150)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllInDeliveredStatus", mock.Anything).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewBillDeliveredOrdersCommandHandler(factory, publisher)
	billed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 0, billed)
	publisher.AssertNotCalled(t, "PublishOrderStatusChanged", mock.Anything, mock.Anything, mock.Anything)
}

func TestNewBillDeliveredOrdersCommand_Validation(t *testing.T) {
	_, err := commands.NewBillDeliveredOrdersCommand(0)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUnitPriceIsInvalid)
}
