package order

import (
	"errors"
	"fmt"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not created
	// through the NewRecord or RestoreRecord factory methods.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord constructors")
)

// Record represents one production sub-record of a laundry order: a batch of
// items going through washing, drying and delivery together. Each record is
// identified to operators by its tracking number, which stays stable for the
// record's whole life.
//
// Record follows these invariants:
//   - Must have a valid unique identifier
//   - Tracking number, once set, is never reassigned or mutated
//   - Quantity must be positive
//   - Delivered quantity never exceeds quantity
//   - Status transitions follow the record state machine
type Record struct {
	// id is the unique identifier for the record
	id kernel.UUID

	// trackingNumber is the per-order identifier (nil until allocated)
	trackingNumber *kernel.TrackingNumber

	// quantity is the number of items in the batch (must be positive)
	quantity int

	// washType is the wash program for the batch
	washType WashType

	// processTypes are the additional finishing steps (pressing, folding, ...)
	processTypes []string

	// washingMachine and dryingMachine are machine codes once assigned
	washingMachine string
	dryingMachine  string

	// deliveredQuantity is the count of items handed back at completion
	deliveredQuantity int

	// status represents the current state in the record lifecycle
	status RecordStatus

	// isConstructed ensures the record was created via a constructor
	isConstructed bool
}

// NewRecord creates a new production record with an allocated tracking number.
// The record starts in RecordPending status with no machines assigned.
//
// Parameters:
//   - id: Unique identifier for the record (must be valid UUID)
//   - trackingNumber: The tracking number allocated for this record
//   - quantity: Number of items in the batch (must be positive)
//   - washType: The wash program for the batch
//
// Returns:
//   - *Record: The created record if all validations pass
//   - error: Validation error if any parameter is invalid
func NewRecord(id kernel.UUID, trackingNumber kernel.TrackingNumber, quantity int, washType WashType) (*Record, error) {
	record := &Record{
		status:        RecordPending,
		isConstructed: true,
	}

	if err := errors.Join(
		record.setID(id),
		record.setTrackingNumber(trackingNumber),
		record.setQuantity(quantity),
		record.setWashType(washType),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreRecord reconstructs a record from persistence, preserving its
// status, machine assignment and counted quantities. The tracking number is
// optional here because legacy rows may predate allocation.
func RestoreRecord(
	id kernel.UUID,
	trackingNumber *kernel.TrackingNumber,
	quantity int,
	washType WashType,
	processTypes []string,
	washingMachine string,
	dryingMachine string,
	deliveredQuantity int,
	status RecordStatus,
) (*Record, error) {
	record := &Record{
		processTypes:   processTypes,
		washingMachine: washingMachine,
		dryingMachine:  dryingMachine,
		isConstructed:  true,
	}

	if err := errors.Join(
		record.setID(id),
		record.setQuantity(quantity),
		record.setWashType(washType),
		record.setStatus(status),
		record.setDeliveredQuantity(deliveredQuantity),
	); err != nil {
		return nil, err
	}

	if trackingNumber != nil {
		if err := record.setTrackingNumber(*trackingNumber); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// Validate ensures the Record instance was properly constructed.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}

	return nil
}

// IsEqual compares two records by their unique identifiers.
func (r *Record) IsEqual(other *Record) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// TrackingNumber returns the record's tracking number.
// Returns nil if no tracking number has been allocated.
func (r *Record) TrackingNumber() *kernel.TrackingNumber {
	return r.trackingNumber
}

// Quantity returns the number of items in the batch.
func (r *Record) Quantity() int {
	return r.quantity
}

// WashType returns the wash program for the batch.
func (r *Record) WashType() WashType {
	return r.washType
}

// ProcessTypes returns the additional finishing steps assigned to the record.
func (r *Record) ProcessTypes() []string {
	return r.processTypes
}

// WashingMachine returns the assigned washing machine code.
// Empty until processing is assigned.
func (r *Record) WashingMachine() string {
	return r.washingMachine
}

// DryingMachine returns the assigned drying machine code.
// Empty until processing is assigned.
func (r *Record) DryingMachine() string {
	return r.dryingMachine
}

// DeliveredQuantity returns the count of items handed back at completion.
func (r *Record) DeliveredQuantity() int {
	return r.deliveredQuantity
}

// ReturnQuantity returns the derived count of items still held: the
// difference between the batch quantity and the delivered quantity.
func (r *Record) ReturnQuantity() int {
	return r.quantity - r.deliveredQuantity
}

// Status returns the current status of the record.
func (r *Record) Status() RecordStatus {
	return r.status
}

// AssignProcessing assigns finishing steps and machines to the record and
// moves it to RecordInProcess.
//
// Business rules:
//   - The record must be in RecordPending status
//   - A washing machine code is required; the drying machine is optional
//     (dry-clean batches skip the dryer)
func (r *Record) AssignProcessing(processTypes []string, washingMachine string, dryingMachine string) error {
	if washingMachine == "" {
		return errs.NewValueIsRequiredError("washingMachine")
	}

	newStatus, err := r.status.StartProcessing()
	if err != nil {
		return err
	}

	r.processTypes = processTypes
	r.washingMachine = washingMachine
	r.dryingMachine = dryingMachine
	r.status = newStatus
	return nil
}

// Complete marks the record as processed and counts the delivered quantity.
// The return quantity is derived, not stored: ReturnQuantity() reports the
// remainder still held.
//
// Business rules:
//   - The record must be in RecordInProcess status
//   - deliveredQuantity must be within [0..Quantity()]
func (r *Record) Complete(deliveredQuantity int) error {
	if deliveredQuantity < 0 || deliveredQuantity > r.quantity {
		return errs.NewValueIsOutOfRangeError("deliveredQuantity", deliveredQuantity, 0, r.quantity)
	}

	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	r.deliveredQuantity = deliveredQuantity
	r.status = newStatus
	return nil
}

// Deliver marks the record's items as returned to the customer.
// The record must be in RecordCompleted status.
func (r *Record) Deliver() error {
	newStatus, err := r.status.Deliver()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// setID validates and sets the record's unique identifier.
func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// setTrackingNumber validates and sets the tracking number once.
func (r *Record) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	r.trackingNumber = &trackingNumber
	return nil
}

// setQuantity validates and sets the batch quantity.
func (r *Record) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	r.quantity = quantity
	return nil
}

// setWashType validates and sets the wash program.
func (r *Record) setWashType(washType WashType) error {
	if err := washType.Validate(); err != nil {
		return err
	}
	r.washType = washType
	return nil
}

// setStatus validates and sets the record status during restoration.
func (r *Record) setStatus(status RecordStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

// setDeliveredQuantity validates and sets the delivered count during restoration.
func (r *Record) setDeliveredQuantity(deliveredQuantity int) error {
	if deliveredQuantity < 0 || deliveredQuantity > r.quantity {
		return errs.NewValueIsOutOfRangeError("deliveredQuantity", deliveredQuantity, 0, r.quantity)
	}
	r.deliveredQuantity = deliveredQuantity
	return nil
}
