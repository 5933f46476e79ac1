package commands_test

import (
	"errors"
	"testing"

	"amsral/internal/core/application/usecases/commands"
	"amsral/internal/core/domain/model/customer"
	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(customerID, "12 shirts")

	owner, err := customer.NewCustomer(customerID, "Hotel Aurora", "", "")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).Return(owner, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				aggregate := args.Get(1).(*order.Order)
				require.NoError(t, aggregate.AssignID(42))
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	orderID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, int64(42), orderID)
	customerRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InactiveCustomer(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(customerID, "12 shirts")

	owner, err := customer.RestoreCustomer(customerID, "Hotel Aurora", "", "", false)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).Return(owner, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCustomerIsInactive)
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockIntakeUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "12 shirts")

	uow := new(MockUoW)
	factory := new(MockIntakeUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_Validation(t *testing.T) {
	t.Run("rejects empty reference", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "")

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrReferenceIsRequired)
	})

	t.Run("rejects unconstructed customer id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCreateOrderCommand(invalidID, "12 shirts")

		require.Error(t, err)
	})
}
