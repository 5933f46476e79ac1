// Package invoicerepo provides data transfer objects and mapping functions for invoice persistence.
package invoicerepo

import (
	"amsral/internal/core/domain/model/billing"
	"amsral/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InvoiceDTO represents the database structure for persisting invoices.
// The total is derived from quantity and unit price, so it is not stored.
type InvoiceDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        int64     `gorm:"not null;index"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity       int       `gorm:"type:int;not null"`
	UnitPriceCents int64     `gorm:"not null"`
	Status         int
}

// TableName specifies the database table name for invoice entities.
// Overrides GORM's default naming convention to use "invoices".
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// fromDomain converts an invoice domain aggregate to its database representation.
func fromDomain(aggregate *billing.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		Quantity:       aggregate.Quantity(),
		UnitPriceCents: aggregate.UnitPriceCents(),
		Status:         int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an invoice domain aggregate.
func toDomain(dto InvoiceDTO) (*billing.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return billing.RestoreInvoice(
		id,
		dto.OrderID,
		customerID,
		dto.Quantity,
		dto.UnitPriceCents,
		billing.Status(dto.Status),
	)
}
