package customerrepo

import (
	"context"
	"errors"

	"amsral/internal/core/domain/model/customer"
	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer to the database.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing customer to the database.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", dto.ID).
		Select("Name", "Phone", "Address", "Active").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
