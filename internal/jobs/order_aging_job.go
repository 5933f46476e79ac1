package jobs

import (
	"context"
	"log/slog"
	"time"

	"amsral/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderAgingJob periodically flags orders that sat in intake too long.
// Runs every minute and publishes an escalation event per stale order.
type OrderAgingJob struct {
	handler   commands.EscalateStaleOrdersCommandHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderAgingJob creates a job that escalates pending orders older than the
// given threshold.
func NewOrderAgingJob(
	handler commands.EscalateStaleOrdersCommandHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *OrderAgingJob {
	return &OrderAgingJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "order_aging_job"),
	}
}

// Start begins the aging sweep, running every minute.
func (j *OrderAgingJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewEscalateStaleOrdersCommand(j.threshold)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order aging job misconfigured", "error", cmdErr)
			return
		}

		escalated, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order aging job failed", "error", handleErr)
			return
		}

		if escalated > 0 {
			j.logger.InfoContext(ctx, "Escalated stale orders", "count", escalated)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order aging job started (running every minute)")
	return nil
}

// Stop stops the aging sweep.
func (j *OrderAgingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order aging job stopped")
}
