package jobs

import (
	"context"
	"log/slog"

	"fleetadmin/internal/core/application/usecases/queries"
	"fleetadmin/internal/pkg/auth"

	"github.com/robfig/cron/v3"
)

// StatusSummaryJob periodically logs the number of contracts per lifecycle
// status across all tenants. Gives operators a daily fleet-wide picture
// without touching the write model.
type StatusSummaryJob struct {
	handler  queries.GetStatusSummaryQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusSummaryJob creates the summary job with the given cron schedule
// (six-field expression with seconds).
func NewStatusSummaryJob(
	handler queries.GetStatusSummaryQueryHandler, schedule string, logger *slog.Logger,
) *StatusSummaryJob {
	return &StatusSummaryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "status_summary_job"),
	}
}

// Start schedules the summary sweep.
func (j *StatusSummaryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		query := queries.NewGetStatusSummaryQueryAllTenants()
		summary, err := j.handler.Handle(ctx, auth.SystemContext(), query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Status summary job failed", "error", err)
			return
		}

		attrs := make([]any, 0, len(summary)*2)
		for _, row := range summary {
			attrs = append(attrs, slog.Int64(row.Status, row.Count))
		}
		j.logger.InfoContext(ctx, "Contract status summary", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status summary job started", "schedule", j.schedule)
	return nil
}

// Stop stops the summary job.
func (j *StatusSummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status summary job stopped")
}
