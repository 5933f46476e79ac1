package commands_test

import (
	"testing"
	"time"

	"amsral/internal/core/application/usecases/commands"
	"amsral/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEscalateStaleOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewEscalateStaleOrdersCommand(30 * time.Minute)

	staleOrders := []*order.Order{restoredOrder(t, 6), restoredOrder(t, 7)}

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllPendingOlderThan", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(staleOrders, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderEscalated", ctx, int64(6)).Return(nil).Once(),
		publisher.On("PublishOrderEscalated", ctx, int64(7)).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEscalateStaleOrdersCommandHandler(factory, publisher)
	escalated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, escalated)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestEscalateStaleOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewEscalateStaleOrdersCommand(30 * time.Minute)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllPendingOlderThan", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewEscalateStaleOrdersCommandHandler(factory, publisher)
	escalated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 0, escalated)
	publisher.AssertNotCalled(t, "PublishOrderEscalated", mock.Anything, mock.Anything)
}

func TestNewEscalateStaleOrdersCommand_Validation(t *testing.T) {
	_, err := commands.NewEscalateStaleOrdersCommand(0)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAgingThresholdIsInvalid)
}
