package jobs

import (
	"fmt"
	"log/slog"

	"fleetadmin/internal/core/application/usecases/commands"
	"fleetadmin/internal/core/application/usecases/queries"
)

// Schedules carries the cron expressions for the background passes.
// All expressions use the six-field form with a seconds column.
type Schedules struct {
	Activation string
	Overdue    string
	Summary    string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	contractActivationJob *ContractActivationJob
	overdueDetectionJob   *OverdueDetectionJob
	statusSummaryJob      *StatusSummaryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up job execution.
func NewJobManager(
	activateHandler commands.ActivateContractsCommandHandler,
	overdueHandler commands.MarkOverdueContractsCommandHandler,
	summaryHandler queries.GetStatusSummaryQueryHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		contractActivationJob: NewContractActivationJob(activateHandler, schedules.Activation, logger),
		overdueDetectionJob:   NewOverdueDetectionJob(overdueHandler, schedules.Overdue, logger),
		statusSummaryJob:      NewStatusSummaryJob(summaryHandler, schedules.Summary, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start, stopping already started jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.contractActivationJob.Start(); err != nil {
		return fmt.Errorf("failed to start contract activation job: %w", err)
	}

	if err := jm.overdueDetectionJob.Start(); err != nil {
		jm.contractActivationJob.Stop()
		return fmt.Errorf("failed to start overdue detection job: %w", err)
	}

	if err := jm.statusSummaryJob.Start(); err != nil {
		jm.overdueDetectionJob.Stop()
		jm.contractActivationJob.Stop()
		return fmt.Errorf("failed to start status summary job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusSummaryJob.Stop()
	jm.overdueDetectionJob.Stop()
	jm.contractActivationJob.Stop()
}
