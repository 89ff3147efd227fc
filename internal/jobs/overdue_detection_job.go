package jobs

import (
	"context"
	"log/slog"
	"time"

	"fleetadmin/internal/core/application/usecases/commands"
	"fleetadmin/internal/pkg/auth"

	"github.com/robfig/cron/v3"
)

// OverdueDetectionJob runs the scheduled overdue pass: Active contracts whose
// rental period has ended are moved to Overdue.
type OverdueDetectionJob struct {
	handler  commands.MarkOverdueContractsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueDetectionJob creates the overdue detection job with the given
// cron schedule (six-field expression with seconds).
func NewOverdueDetectionJob(
	handler commands.MarkOverdueContractsCommandHandler, schedule string, logger *slog.Logger,
) *OverdueDetectionJob {
	return &OverdueDetectionJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_detection_job"),
	}
}

// Start schedules the overdue pass.
func (j *OverdueDetectionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewMarkOverdueContractsCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue detection job failed to build command", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, auth.SystemContext(), cmd); err != nil {
			j.logger.ErrorContext(ctx, "Overdue detection job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue detection job started", "schedule", j.schedule)
	return nil
}

// Stop stops the overdue detection job.
func (j *OverdueDetectionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue detection job stopped")
}
