package jobs

import (
	"context"
	"log/slog"

	"beerorders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CallbackDispatchJob periodically delivers pending order status callbacks.
// Runs every 30 seconds; a delivery that fails stays pending and is retried
// on the next run.
type CallbackDispatchJob struct {
	handler commands.DispatchCallbacksCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCallbackDispatchJob creates a new job for callback dispatch.
func NewCallbackDispatchJob(handler commands.DispatchCallbacksCommandHandler, logger *slog.Logger) *CallbackDispatchJob {
	return &CallbackDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "callback_dispatch_job"),
	}
}

// Start begins the callback dispatch job on a 30-second schedule.
func (j *CallbackDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewDispatchCallbacksCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Callback dispatch command construction failed", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Callback dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Callback dispatch job started (running every 30 seconds)")
	return nil
}

// Stop stops the callback dispatch job.
func (j *CallbackDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Callback dispatch job stopped")
}
