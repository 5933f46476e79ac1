package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"amsral/internal/core/domain/model/order"
	"amsral/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and assigns the sequence id to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateUniqueViolation(err)
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order together with its production records.
// A concurrent intake that took the same tracking number surfaces here as
// an ObjectAlreadyExistsError; callers re-allocate and retry on it.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Omit(clause.Associations).
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(dto.Records) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).
			Create(&dto.Records).Error
		if err != nil {
			return translateUniqueViolation(err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by its sequence id with all of its records.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id is invalid",
			fmt.Errorf("%d is not a positive integer", id))
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Records").First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllIncomplete retrieves all orders that have not reached Completed status.
func (r *GormOrderRepository) GetAllIncomplete(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Records").
		Find(&dtos, "status IN ?", []int{int(order.Pending), int(order.Processing)}).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllInDeliveredStatus retrieves all orders awaiting billing.
func (r *GormOrderRepository) GetAllInDeliveredStatus(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Records").
		Find(&dtos, "status = ?", int(order.Delivered)).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllPendingOlderThan retrieves pending orders created before the cutoff.
func (r *GormOrderRepository) GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Records").
		Find(&dtos, "status = ? AND created_at < ?", int(order.Pending), cutoff).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// toDomainSlice converts a slice of DTOs to domain aggregates.
func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// translateUniqueViolation maps a PostgreSQL unique constraint violation to
// the domain's ObjectAlreadyExistsError. Other errors pass through unchanged.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return errs.NewObjectAlreadyExistsErrorWithCause("trackingNumber", pgErr.Detail, err)
	}

	return err
}
