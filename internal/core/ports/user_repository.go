package ports

import (
	"context"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for operator accounts.
type UserRepository interface {
	// Add persists a new account. The username must be unique;
	// a duplicate returns errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves an account by its login name.
	// Used by authentication.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
