package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"amsral/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderAgingJob   *OrderAgingJob
	billingSweepJob *BillingSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	escalateHandler commands.EscalateStaleOrdersCommandHandler,
	billingHandler commands.BillDeliveredOrdersCommandHandler,
	agingThreshold time.Duration,
	unitPriceCents int64,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderAgingJob:   NewOrderAgingJob(escalateHandler, agingThreshold, logger),
		billingSweepJob: NewBillingSweepJob(billingHandler, unitPriceCents, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderAgingJob.Start(); err != nil {
		return fmt.Errorf("failed to start order aging job: %w", err)
	}

	if err := jm.billingSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderAgingJob.Stop()
		return fmt.Errorf("failed to start billing sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.billingSweepJob.Stop()
	jm.orderAgingJob.Stop()
}
