package jobs

import (
	"context"
	"log/slog"

	"amsral/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BillingSweepJob periodically bills delivered orders that have no invoice yet.
// Runs hourly; each order is billed in its own transaction so one failure does
// not block the rest of the sweep.
type BillingSweepJob struct {
	handler        commands.BillDeliveredOrdersCommandHandler
	unitPriceCents int64
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewBillingSweepJob creates a job that invoices delivered orders at the
// configured unit price.
func NewBillingSweepJob(
	handler commands.BillDeliveredOrdersCommandHandler,
	unitPriceCents int64,
	logger *slog.Logger,
) *BillingSweepJob {
	return &BillingSweepJob{
		handler:        handler,
		unitPriceCents: unitPriceCents,
		cron:           cron.New(),
		logger:         logger.With("component", "billing_sweep_job"),
	}
}

// Start begins the billing sweep, running at the top of every hour.
func (j *BillingSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewBillDeliveredOrdersCommand(j.unitPriceCents)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Billing sweep job misconfigured", "error", cmdErr)
			return
		}

		billed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Billing sweep job failed", "error", handleErr)
			return
		}

		if billed > 0 {
			j.logger.InfoContext(ctx, "Billed delivered orders", "count", billed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Billing sweep job started (running hourly)")
	return nil
}

// Stop stops the billing sweep.
func (j *BillingSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Billing sweep job stopped")
}
