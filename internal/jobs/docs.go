// Package jobs provides scheduled background tasks for the laundry service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations of the order workflow.
//
// # Available Jobs
//
// 1. OrderAgingJob - Runs every minute to escalate orders that sat in intake past the aging threshold
// 2. BillingSweepJob - Runs hourly to invoice delivered orders that have no invoice yet
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(escalateHandler, billingHandler, threshold, unitPrice, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log failures and keep their schedule; a failed run is retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
