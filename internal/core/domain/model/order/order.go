package order

import (
	"errors"
	"fmt"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")

	// ErrOrderIDAlreadyAssigned is returned when attempting to assign a sequence
	// id to an order that already has one.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")

	// ErrRecordNotFound is returned when the order holds no record with the
	// requested identifier.
	ErrRecordNotFound = errors.New("record not found in order")
)

// Order represents a customer's laundry job. It is the aggregate root that
// manages the order lifecycle from intake through processing and delivery to
// billing, and owns the production records that move through the wash room.
//
// Order follows these invariants:
//   - Must reference a valid customer
//   - The integer id is assigned exactly once by the storage sequence
//   - Every record's tracking number belongs to this order and is unique
//     within it
//   - Status transitions follow the defined workflow
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the sequential order number; 0 until assigned by storage
	id int64

	// customerID references the customer who owns the job
	customerID kernel.UUID

	// reference is the free-text intake note shown to operators
	reference string

	// status represents the current state in the order workflow
	status Status

	// records are the production sub-records of the order
	records []*Record

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder opens a new order for a customer. The order starts in Pending
// status with no records; the integer id is assigned by the storage layer
// when the order is first persisted.
//
// Parameters:
//   - customerID: The owning customer (must be a valid UUID)
//   - reference: Free-text intake note (must not be empty)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(customerID kernel.UUID, reference string) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setReference(reference),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence with its records.
// This is used by repositories when loading aggregates and validates all
// invariants to ensure data integrity.
func RestoreOrder(
	id int64,
	customerID kernel.UUID,
	reference string,
	status Status,
	records []*Record,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setReference(reference),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id is invalid",
			fmt.Errorf("%d is not a positive integer", id))
	}
	order.id = id

	for _, record := range records {
		if err := record.Validate(); err != nil {
			return nil, err
		}
	}
	order.records = records

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their ids.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the sequential order number, or 0 if the order has not been
// persisted yet.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Reference returns the free-text intake note.
func (o *Order) Reference() string {
	return o.reference
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Records returns the production records belonging to the order.
// Callers must not mutate the returned slice.
func (o *Order) Records() []*Record {
	return o.records
}

// Quantity returns the total item count across all records.
func (o *Order) Quantity() int {
	total := 0
	for _, record := range o.records {
		total += record.Quantity()
	}
	return total
}

// AssignID sets the sequence id after the order is first persisted.
// The id can be assigned exactly once.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid",
			fmt.Errorf("%d is not a positive integer", id))
	}

	o.id = id
	return nil
}

// AddRecord appends a production record to the order.
//
// Business rules:
//   - The order must be persisted (id assigned) so tracking numbers can
//     reference it
//   - The order must still accept records (Pending or Processing)
//   - The record's tracking number must belong to this order
//   - The tracking number must not already be in use within this order
//
// Returns an errs.ObjectAlreadyExistsError when the tracking number is
// already taken; callers re-allocate and retry on that error.
func (o *Order) AddRecord(record *Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	if o.id == 0 {
		return errs.NewValueIsRequiredError("order id")
	}

	if err := o.status.ValidateAddRecord(); err != nil {
		return err
	}

	trackingNumber := record.TrackingNumber()
	if trackingNumber == nil {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	if trackingNumber.OrderID() != o.id {
		return errs.NewValueIsInvalidErrorWithCause("trackingNumber",
			fmt.Errorf("%s does not belong to order %d", trackingNumber, o.id))
	}

	for _, existing := range o.records {
		if tn := existing.TrackingNumber(); tn != nil && tn.String() == trackingNumber.String() {
			return errs.NewObjectAlreadyExistsError("trackingNumber", trackingNumber.String())
		}
	}

	o.records = append(o.records, record)
	return nil
}

// RecordByID returns the record with the given identifier.
// Returns ErrRecordNotFound when the order holds no such record.
func (o *Order) RecordByID(recordID kernel.UUID) (*Record, error) {
	if err := recordID.Validate(); err != nil {
		return nil, err
	}

	for _, record := range o.records {
		if record.ID().IsEqual(recordID) {
			return record, nil
		}
	}

	return nil, ErrRecordNotFound
}

// AssignRecordProcessing assigns finishing steps and machines to one of the
// order's records and moves the order into Processing.
func (o *Order) AssignRecordProcessing(
	recordID kernel.UUID,
	processTypes []string,
	washingMachine string,
	dryingMachine string,
) error {
	record, err := o.RecordByID(recordID)
	if err != nil {
		return err
	}

	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}

	if err = record.AssignProcessing(processTypes, washingMachine, dryingMachine); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CompleteRecord finishes processing for one record and counts its delivered
// quantity. When every record of the order is completed the order itself
// transitions to Completed.
func (o *Order) CompleteRecord(recordID kernel.UUID, deliveredQuantity int) error {
	record, err := o.RecordByID(recordID)
	if err != nil {
		return err
	}

	if err = record.Complete(deliveredQuantity); err != nil {
		return err
	}

	if o.allRecordsCompleted() {
		newStatus, statusErr := o.status.Complete()
		if statusErr != nil {
			return statusErr
		}
		o.status = newStatus
	}

	return nil
}

// Deliver marks the order and all of its records as returned to the customer.
// The order must be in Completed status.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	for _, record := range o.records {
		if err = record.Deliver(); err != nil {
			return err
		}
	}

	o.status = newStatus
	return nil
}

// Invoice marks the order as billed. The order must be in Delivered status.
func (o *Order) Invoice() error {
	newStatus, err := o.status.Invoice()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// allRecordsCompleted reports whether every record finished processing.
// An order with no records is never considered completed.
func (o *Order) allRecordsCompleted() bool {
	if len(o.records) == 0 {
		return false
	}

	for _, record := range o.records {
		if record.Status() != RecordCompleted {
			return false
		}
	}
	return true
}

// setCustomerID validates and sets the owning customer.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setReference validates and sets the intake note.
func (o *Order) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	o.reference = reference
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
