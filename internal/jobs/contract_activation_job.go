package jobs

import (
	"context"
	"log/slog"
	"time"

	"fleetadmin/internal/core/application/usecases/commands"
	"fleetadmin/internal/pkg/auth"

	"github.com/robfig/cron/v3"
)

// ContractActivationJob runs the scheduled activation pass: Pending contracts
// whose rental period has begun are moved to Active.
type ContractActivationJob struct {
	handler  commands.ActivateContractsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewContractActivationJob creates the activation job with the given cron
// schedule (six-field expression with seconds).
func NewContractActivationJob(
	handler commands.ActivateContractsCommandHandler, schedule string, logger *slog.Logger,
) *ContractActivationJob {
	return &ContractActivationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "contract_activation_job"),
	}
}

// Start schedules the activation pass.
func (j *ContractActivationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewActivateContractsCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Contract activation job failed to build command", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, auth.SystemContext(), cmd); err != nil {
			j.logger.ErrorContext(ctx, "Contract activation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Contract activation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the activation job.
func (j *ContractActivationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Contract activation job stopped")
}
