package commands

import (
	"errors"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/pkg/guard"
)

var (
	ErrAssignRecordProcessingCommandIsNotConstructed = errors.New(
		"AssignRecordProcessingCommand must be created via NewAssignRecordProcessingCommand constructor",
	)
	ErrWashingMachineIsRequired = errors.New("washing machine is required")
)

// AssignRecordProcessingCommand represents a request to route one production
// record to the wash room: finishing steps plus machine codes.
type AssignRecordProcessingCommand struct { //nolint:recvcheck //using for validation
	orderID        int64
	recordID       kernel.UUID
	processTypes   []string
	washingMachine string
	dryingMachine  string

	guard guard.ConstructorGuard
}

// NewAssignRecordProcessingCommand creates a command to assign processing.
// The drying machine is optional; dry-clean batches skip the dryer.
func NewAssignRecordProcessingCommand(
	orderID int64,
	recordID kernel.UUID,
	processTypes []string,
	washingMachine string,
	dryingMachine string,
) (AssignRecordProcessingCommand, error) {
	assignCommand := AssignRecordProcessingCommand{
		processTypes:  processTypes,
		dryingMachine: dryingMachine,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setRecordID(recordID),
		assignCommand.setWashingMachine(washingMachine),
	); err != nil {
		return AssignRecordProcessingCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRecordProcessingCommand) Validate() error {
	return c.guard.Validate(ErrAssignRecordProcessingCommandIsNotConstructed)
}

// OrderID returns the target order's sequence number.
func (c AssignRecordProcessingCommand) OrderID() int64 {
	return c.orderID
}

// RecordID returns the target record's identifier.
func (c AssignRecordProcessingCommand) RecordID() kernel.UUID {
	return c.recordID
}

// ProcessTypes returns the finishing steps for the record.
func (c AssignRecordProcessingCommand) ProcessTypes() []string {
	return c.processTypes
}

// WashingMachine returns the washing machine code.
func (c AssignRecordProcessingCommand) WashingMachine() string {
	return c.washingMachine
}

// DryingMachine returns the optional drying machine code.
func (c AssignRecordProcessingCommand) DryingMachine() string {
	return c.dryingMachine
}

func (c *AssignRecordProcessingCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRecordProcessingCommand) setRecordID(recordID kernel.UUID) error {
	if err := recordID.Validate(); err != nil {
		return err
	}

	c.recordID = recordID
	return nil
}

func (c *AssignRecordProcessingCommand) setWashingMachine(washingMachine string) error {
	if washingMachine == "" {
		return ErrWashingMachineIsRequired
	}

	c.washingMachine = washingMachine
	return nil
}
