// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The integer id comes from the table's sequence, which makes it the base of
// every tracking number the order hands out.
type OrderDTO struct {
	ID         int64       `gorm:"primaryKey;autoIncrement"`
	CustomerID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Reference  string      `gorm:"type:varchar(255);not null"`
	Status     int         `gorm:"index"`
	CreatedAt  time.Time   `gorm:"autoCreateTime;index"`
	Records    []RecordDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// RecordDTO represents the database structure for persisting production records.
// The composite unique index on (order_id, tracking_number) is the backstop
// against two intakes allocating the same tracking number concurrently.
type RecordDTO struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderID           int64          `gorm:"not null;uniqueIndex:idx_order_tracking"`
	TrackingNumber    *string        `gorm:"type:varchar(32);uniqueIndex:idx_order_tracking"`
	Quantity          int            `gorm:"type:int;not null"`
	WashType          string         `gorm:"type:varchar(32);not null"`
	ProcessTypes      pq.StringArray `gorm:"type:text[]"`
	WashingMachine    string         `gorm:"type:varchar(32)"`
	DryingMachine     string         `gorm:"type:varchar(32)"`
	DeliveredQuantity int
	Status            int
}

// TableName specifies the database table name for production records.
// Overrides GORM's default naming convention to use "order_records".
func (RecordDTO) TableName() string {
	return "order_records"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the order attributes and all owned production records.
func fromDomain(aggregate *order.Order) OrderDTO {
	records := make([]RecordDTO, 0, len(aggregate.Records()))
	for _, record := range aggregate.Records() {
		records = append(records, recordFromDomain(aggregate.ID(), record))
	}

	return OrderDTO{
		ID:         aggregate.ID(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Reference:  aggregate.Reference(),
		Status:     int(aggregate.Status()),
		Records:    records,
	}
}

// recordFromDomain converts a production record to its database representation.
func recordFromDomain(orderID int64, record *order.Record) RecordDTO {
	var trackingNumber *string
	if tn := record.TrackingNumber(); tn != nil {
		raw := tn.String()
		trackingNumber = &raw
	}

	return RecordDTO{
		ID:                record.ID().Bytes(),
		OrderID:           orderID,
		TrackingNumber:    trackingNumber,
		Quantity:          record.Quantity(),
		WashType:          record.WashType().String(),
		ProcessTypes:      pq.StringArray(record.ProcessTypes()),
		WashingMachine:    record.WashingMachine(),
		DryingMachine:     record.DryingMachine(),
		DeliveredQuantity: record.DeliveredQuantity(),
		Status:            int(record.Status()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all records using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	records := make([]*order.Record, 0, len(dto.Records))
	for _, recordDto := range dto.Records {
		record, recordErr := recordToDomain(recordDto)
		if recordErr != nil {
			return nil, recordErr
		}
		records = append(records, record)
	}

	return order.RestoreOrder(dto.ID, customerID, dto.Reference, order.Status(dto.Status), records)
}

// recordToDomain converts a record DTO to a domain entity.
// Uses RestoreRecord to reconstruct the entity with its persisted state.
func recordToDomain(dto RecordDTO) (*order.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var trackingNumber *kernel.TrackingNumber
	if dto.TrackingNumber != nil {
		tn, tnErr := kernel.ParseTrackingNumber(*dto.TrackingNumber)
		if tnErr != nil {
			return nil, tnErr
		}
		trackingNumber = &tn
	}

	return order.RestoreRecord(
		id,
		trackingNumber,
		dto.Quantity,
		order.WashType(dto.WashType),
		[]string(dto.ProcessTypes),
		dto.WashingMachine,
		dto.DryingMachine,
		dto.DeliveredQuantity,
		order.RecordStatus(dto.Status),
	)
}
