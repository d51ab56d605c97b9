// Package jobs provides scheduled background tasks for the production system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the back office needs.
//
// # Available Jobs
//
// 1. DailyManifestJob - Runs every morning to generate the day's delivery manifest for each active route
// 2. SlaSweepJob - Runs hourly to flag orders whose promise deadline has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(generateManifestHandler, routeProvider, flagOverdueHandler, logger)
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
// The manifest job runs at 05:00 so drivers find their manifests ready before
// the first departure. The SLA sweep runs at the top of every hour; the flag
// command is idempotent, so a rerun never duplicates overdue alerts.
//
// # Error Handling
//
// Both jobs log failures and keep running: a failed tick is retried on the
// next schedule, and a conflict on one route's manifest does not block the
// others.
package jobs
