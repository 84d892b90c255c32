// Package jobs provides scheduled background tasks for the packaging service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the packaging service.
//
// # Available Jobs
//
// 1. PackerAssignmentJob - Runs every second to dispatch pending orders to nearby packers
// 2. LowStockAlertJob - Runs every minute to report packers whose inventory fell below the restock threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignPackerHandler, lowStockHandler, threshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The assignment job uses the cron expression "* * * * * *" and runs every
// second so orders are matched with packers in near real time. The low stock
// alert job runs once a minute, which is frequent enough for restocking.
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no orders, no packers)
// - Low stock job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
