package commands

import (
	"context"

	"amsral/internal/core/domain/model/user"
)

// CreateUserCommandHandler registers operator accounts.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewCreateUserCommandHandler creates a handler for account registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. The aggregate hashes the
// password; duplicate usernames surface as errs.ObjectAlreadyExistsError
// from the repository.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) error {
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

	account, err := user.NewUser(cmd.UserID(), cmd.Username(), cmd.Password(), cmd.Role())
	if err != nil {
		return err
	}

	if err = uow.UserRepository().Add(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
