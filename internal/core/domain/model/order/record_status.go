package order

import (
	"fmt"

	"amsral/internal/pkg/errs"
)

// RecordStatus represents the lifecycle state of a single production record.
//
// State transitions:
//
//	RecordPending ──> RecordInProcess ──> RecordCompleted ──> RecordDelivered
type RecordStatus int

const (
	// RecordUnknown represents an invalid or undefined record status.
	RecordUnknown RecordStatus = iota

	// RecordPending is the initial status of a newly created record.
	RecordPending

	// RecordInProcess indicates the record has washing and machines assigned.
	RecordInProcess

	// RecordCompleted indicates processing finished and quantities were counted.
	RecordCompleted

	// RecordDelivered indicates the record's items were returned to the customer.
	RecordDelivered
)

func getRecordStatusStrings() map[RecordStatus]string {
	return map[RecordStatus]string{
		RecordUnknown:   "Unknown",
		RecordPending:   "Pending",
		RecordInProcess: "InProcess",
		RecordCompleted: "Completed",
		RecordDelivered: "Delivered",
	}
}

// Validate checks if the RecordStatus value is valid.
// RecordUnknown (0) and any other values are invalid.
func (s RecordStatus) Validate() error {
	switch s {
	case RecordPending, RecordInProcess, RecordCompleted, RecordDelivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("record status is invalid",
			fmt.Errorf("%d is not a valid record status", s))
	}
}

// String returns the human-readable name of the record status.
// Implements the fmt.Stringer interface; safe on any value.
func (s RecordStatus) String() string {
	if str, ok := getRecordStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StartProcessing transitions the record status to RecordInProcess.
// Only pending records can be assigned to processing.
func (s RecordStatus) StartProcessing() (RecordStatus, error) {
	if s != RecordPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"record status is invalid",
			fmt.Errorf("%s is not a valid record status to start processing", s.String()),
		)
	}

	return RecordInProcess, nil
}

// Complete transitions the record status to RecordCompleted.
// Only in-process records can be completed.
func (s RecordStatus) Complete() (RecordStatus, error) {
	if s != RecordInProcess {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"record status is invalid",
			fmt.Errorf("%s is not a valid record status to complete", s.String()),
		)
	}

	return RecordCompleted, nil
}

// Deliver transitions the record status to RecordDelivered.
// Only completed records can be delivered.
func (s RecordStatus) Deliver() (RecordStatus, error) {
	if s != RecordCompleted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"record status is invalid",
			fmt.Errorf("%s is not a valid record status to deliver", s.String()),
		)
	}

	return RecordDelivered, nil
}
