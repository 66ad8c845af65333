package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RunCompletionJob sweeps dispatched delivery runs whose scheduled date has
// passed and moves them to Completed. Runs once a minute; the sweep is
// idempotent so overlapping with manual completion is harmless.
type RunCompletionJob struct {
	handler commands.CompleteDueRunsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRunCompletionJob creates the run completion sweep job.
func NewRunCompletionJob(handler commands.CompleteDueRunsCommandHandler, logger *slog.Logger) *RunCompletionJob {
	return &RunCompletionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "run_completion_job"),
	}
}

// Start schedules the sweep at the top of every minute.
func (j *RunCompletionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		// Runs scheduled before today are overdue; today's runs stay
		// in transit until the day rolls over.
		now := time.Now()
		cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		cmd, cmdErr := commands.NewCompleteDueRunsCommand(cutoff)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Run completion sweep misconfigured", "error", cmdErr)
			return
		}

		completed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Run completion sweep failed", "error", handleErr)
			return
		}
		if completed > 0 {
			j.logger.InfoContext(ctx, "Completed overdue delivery runs", "count", completed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Run completion job started (running every minute)")
	return nil
}

// Stop stops the run completion job.
func (j *RunCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Run completion job stopped")
}
