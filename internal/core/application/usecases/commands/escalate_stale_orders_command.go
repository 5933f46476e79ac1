package commands

import (
	"errors"
	"time"

	"amsral/internal/pkg/guard"
)

var (
	ErrEscalateStaleOrdersCommandIsNotConstructed = errors.New(
		"EscalateStaleOrdersCommand must be created via NewEscalateStaleOrdersCommand constructor",
	)
	ErrAgingThresholdIsInvalid = errors.New("aging threshold must be greater than 0")
)

// EscalateStaleOrdersCommand represents a sweep over intake orders that sat
// in Pending status past the aging threshold.
type EscalateStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewEscalateStaleOrdersCommand creates a command to flag stale orders.
func NewEscalateStaleOrdersCommand(olderThan time.Duration) (EscalateStaleOrdersCommand, error) {
	escalateCommand := EscalateStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := escalateCommand.setOlderThan(olderThan); err != nil {
		return EscalateStaleOrdersCommand{}, err
	}

	return escalateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c EscalateStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrEscalateStaleOrdersCommandIsNotConstructed)
}

// OlderThan returns the aging threshold.
func (c EscalateStaleOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *EscalateStaleOrdersCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return ErrAgingThresholdIsInvalid
	}

	c.olderThan = olderThan
	return nil
}
