package userrepo

import (
	"context"
	"errors"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/user"
	"amsral/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database.
// A duplicate username returns an ObjectAlreadyExistsError.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return errs.NewObjectAlreadyExistsErrorWithCause("username", dto.Username, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing account to the database.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an account by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUsername retrieves an account by its login name.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", username)
		}
		return nil, err
	}

	return toDomain(dto)
}
