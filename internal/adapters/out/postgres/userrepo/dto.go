// Package userrepo provides data transfer objects and mapping functions for account persistence.
// This package implements the repository pattern for the user domain aggregate, handling
// the conversion between domain entities and database representations.
package userrepo

import (
	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting operator accounts.
// The unique index on username enforces one account per login name.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(32);not null"`
}

// TableName specifies the database table name for account entities.
// Overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Username:     aggregate.Username(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Username, dto.PasswordHash, user.Role(dto.Role))
}
