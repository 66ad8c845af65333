// Package jobs provides scheduled background tasks for the fulfillment
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the service needs.
//
// # Available Jobs
//
// 1. RunCompletionJob - Runs every minute to close out dispatched delivery
// runs whose scheduled date has passed, marking the loaded orders delivered
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(completeDueRunsHandler, logger)
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
// - The completion sweep is idempotent; a failed tick is retried on the next
// one, so errors are logged and otherwise ignored
// - Failed job starts report the error to the caller
package jobs
