package commands_test

import (
	"errors"
	"testing"

	"amsral/internal/core/application/usecases/commands"
	"amsral/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateCustomerCommand(kernel.NewUUID(), "Hotel Aurora", "+357991234", "12 Harbour St")

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomerCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateCustomerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateCustomerCommand{} // not constructed properly
	factory := new(MockCustomerUoWFactory)
	h := commands.NewCreateCustomerCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateCustomerCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateCustomerCommand(kernel.NewUUID(), "Hotel Aurora", "", "")

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomerCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCreateCustomerCommand_Validation(t *testing.T) {
	t.Run("rejects empty name", func(t *testing.T) {
		_, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), "", "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
	})

	t.Run("rejects unconstructed customer id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCreateCustomerCommand(invalidID, "Hotel Aurora", "", "")

		require.Error(t, err)
	})
}
