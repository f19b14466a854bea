package jobs

import (
	"context"
	"log/slog"

	"ridetrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ScheduledOrderActivationJob promotes scheduled orders whose pickup time has
// arrived. Runs every minute and moves due pending orders to searching.
type ScheduledOrderActivationJob struct {
	handler commands.ActivateScheduledOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewScheduledOrderActivationJob creates the activation job.
// Uses ActivateScheduledOrdersCommandHandler to promote due orders every minute.
func NewScheduledOrderActivationJob(
	handler commands.ActivateScheduledOrdersCommandHandler,
	logger *slog.Logger,
) *ScheduledOrderActivationJob {
	return &ScheduledOrderActivationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "scheduled_order_activation_job"),
	}
}

// Start begins the activation job to run every minute.
func (j *ScheduledOrderActivationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewActivateScheduledOrdersCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build activation command", "error", cmdErr)
			return
		}

		activated, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Scheduled order activation job failed", "error", handleErr)
			return
		}
		if activated > 0 {
			j.logger.InfoContext(ctx, "Activated scheduled orders", "count", activated)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Scheduled order activation job started (running every minute)")
	return nil
}

// Stop stops the activation job.
func (j *ScheduledOrderActivationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Scheduled order activation job stopped")
}
