package commands

import (
	"errors"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/user"
	"amsral/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// CreateUserCommand represents a request to register an operator account.
// The plain-text password is carried only until the aggregate hashes it.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	username string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register an account.
func NewCreateUserCommand(userID kernel.UUID, username, password string, role user.Role) (CreateUserCommand, error) {
	userCommand := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setUserID(userID),
		userCommand.setUsername(username),
		userCommand.setPassword(password),
		userCommand.setRole(role),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new account.
func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the login name.
func (c CreateUserCommand) Username() string {
	return c.username
}

// Password returns the plain-text password.
func (c CreateUserCommand) Password() string {
	return c.password
}

// Role returns the account's role.
func (c CreateUserCommand) Role() user.Role {
	return c.role
}

func (c *CreateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateUserCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *CreateUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *CreateUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
