package user

import (
	"errors"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for user operations.
var (
	// ErrUsernameIsRequired is returned when attempting to create a user without a username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrPasswordIsRequired is returned when attempting to create a user without a password.
	ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructors")
)

// User represents an operator account of the management application.
// It is an aggregate root that manages account identity, the role used for
// screen gating, and the password hash.
//
// Business rules:
//   - User must have a valid UUID, non-empty username, and valid role
//   - Passwords are stored only as bcrypt hashes
type User struct {
	// id uniquely identifies the account
	id kernel.UUID
	// username is the login name, unique across accounts
	username string
	// passwordHash is the bcrypt hash of the account password
	passwordHash string
	// role classifies what the account can administer
	role Role
	// isConstructed ensures the user was created via a constructor
	isConstructed bool
}

// NewUser creates an operator account, hashing the supplied plain-text
// password with bcrypt at the default cost.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - username: Login name (must not be empty)
//   - password: Plain-text password (must not be empty; never stored)
//   - role: The account's role
//
// Returns:
//   - *User: The created account if all validations pass
//   - error: Validation error if any parameter is invalid, or a hashing error
func NewUser(id kernel.UUID, username string, password string, role Role) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(u.setID(id), u.setUsername(username), u.setRole(role)); err != nil {
		return nil, err
	}

	if password == "" {
		return nil, ErrPasswordIsRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u.passwordHash = string(hash)

	return u, nil
}

// RestoreUser reconstructs an account from persistence with its stored hash.
func RestoreUser(id kernel.UUID, username string, passwordHash string, role Role) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(u.setID(id), u.setUsername(username), u.setRole(role)); err != nil {
		return nil, err
	}

	if passwordHash == "" {
		return nil, ErrPasswordIsRequired
	}
	u.passwordHash = passwordHash

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// ID returns the account's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the login name.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the account's role.
func (u *User) Role() Role {
	return u.role
}

// CheckPassword reports whether the plain-text password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

// ChangeRole updates the account's role.
func (u *User) ChangeRole(role Role) error {
	return u.setRole(role)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}
	u.username = username
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
