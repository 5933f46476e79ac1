package invoicerepo

import (
	"context"
	"errors"

	"amsral/internal/core/domain/model/billing"
	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new invoice to the database.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *billing.Invoice) error {
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

// Update saves an existing invoice to the database.
func (r *GormInvoiceRepository) Update(ctx context.Context, aggregate *billing.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&InvoiceDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an invoice by ID.
func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*billing.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
