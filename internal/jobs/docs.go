// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CallbackDispatchJob - Runs every 30 seconds to deliver order status
// callbacks that have not yet reached their registered URL.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchCallbacksHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed callback delivery leaves the order's callback pending, so the
// next run retries it. Job-level errors are logged, never fatal.
package jobs
