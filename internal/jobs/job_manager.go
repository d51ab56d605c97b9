package jobs

import (
	"fmt"
	"log/slog"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dailyManifestJob *DailyManifestJob
	slaSweepJob      *SlaSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	generateManifestHandler commands.GenerateManifestCommandHandler,
	routes ports.RouteProvider,
	flagOverdueHandler commands.FlagOverdueOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dailyManifestJob: NewDailyManifestJob(generateManifestHandler, routes, logger),
		slaSweepJob:      NewSlaSweepJob(flagOverdueHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dailyManifestJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily manifest job: %w", err)
	}

	if err := jm.slaSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dailyManifestJob.Stop()
		return fmt.Errorf("failed to start SLA sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.slaSweepJob.Stop()
	jm.dailyManifestJob.Stop()
}
