package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundryops/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SlaSweepJob flags orders whose promise deadline has passed. Runs hourly;
// the flag command skips orders that already carry an overdue alert, so the
// sweep never duplicates ledger entries.
type SlaSweepJob struct {
	handler commands.FlagOverdueOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSlaSweepJob creates a job that sweeps for overdue orders every hour.
func NewSlaSweepJob(handler commands.FlagOverdueOrdersCommandHandler, logger *slog.Logger) *SlaSweepJob {
	return &SlaSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "sla_sweep_job"),
	}
}

// Start begins the hourly overdue sweep.
func (j *SlaSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewFlagOverdueOrdersCommand(time.Now().UTC())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "SLA sweep built an invalid command", "error", cmdErr)
			return
		}

		flagged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "SLA sweep failed", "error", handleErr)
			return
		}

		if flagged > 0 {
			j.logger.InfoContext(ctx, "SLA sweep flagged overdue orders", "flagged", flagged)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "SLA sweep job started (running hourly)")
	return nil
}

// Stop stops the hourly overdue sweep.
func (j *SlaSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "SLA sweep job stopped")
}
