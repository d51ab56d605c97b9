package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DailyManifestJob generates the day's delivery manifest for every active
// route each morning. Generation is idempotent: a manifest that already
// exists for the route and date is topped up with missing stops instead of
// duplicated, so a rerun after a crash is safe.
type DailyManifestJob struct {
	handler commands.GenerateManifestCommandHandler
	routes  ports.RouteProvider
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailyManifestJob creates a job that generates manifests for all active
// routes at 05:00 every day.
func NewDailyManifestJob(
	handler commands.GenerateManifestCommandHandler,
	routes ports.RouteProvider,
	logger *slog.Logger,
) *DailyManifestJob {
	return &DailyManifestJob{
		handler: handler,
		routes:  routes,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "daily_manifest_job"),
	}
}

// Start begins the daily manifest generation schedule.
func (j *DailyManifestJob) Start() error {
	_, err := j.cron.AddFunc("0 0 5 * * *", func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily manifest job started (running at 05:00)")
	return nil
}

// Stop stops the daily manifest generation schedule.
func (j *DailyManifestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily manifest job stopped")
}

// run generates today's manifest for each active route. A failure on one
// route is logged and does not block the remaining routes.
func (j *DailyManifestJob) run(ctx context.Context) {
	routes, err := j.routes.GetActiveRoutes(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily manifest job failed to list routes", "error", err)
		return
	}

	today := time.Now().UTC()
	generated := 0
	for _, route := range routes {
		cmd, cmdErr := commands.NewGenerateManifestCommand(route.UnitID, route.ID, today)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Daily manifest job built an invalid command",
				"routeId", route.ID.String(), "error", cmdErr)
			continue
		}

		if _, handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Daily manifest generation failed",
				"routeId", route.ID.String(), "error", handleErr)
			continue
		}
		generated++
	}

	j.logger.InfoContext(ctx, "Daily manifest generation finished",
		"routes", len(routes), "generated", generated)
}
