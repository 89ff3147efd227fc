package commands

import (
	"context"
	"log/slog"

	"fleetadmin/internal/core/domain/model/contract"
	"fleetadmin/internal/pkg/auth"
)

// ActivateContractsCommandHandler runs the scheduler's activation pass.
// Candidates are fetched across all tenants; each candidate transitions
// Pending -> Active independently. A failing candidate (including a stale
// version lost to a concurrent writer) is logged and skipped so one bad
// contract cannot stall the sweep; the next tick picks it up again. The pass
// is idempotent: a second run over the same date finds no candidates.
type ActivateContractsCommandHandler struct {
	uowFactory ContractUoWFactory
	logger     *slog.Logger
}

// NewActivateContractsCommandHandler creates a handler for the activation pass.
func NewActivateContractsCommandHandler(
	uowFactory ContractUoWFactory, logger *slog.Logger,
) ActivateContractsCommandHandler {
	return ActivateContractsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With(slog.String("pass", "contract_activation")),
	}
}

// Handle processes one activation pass. A candidate query failure aborts the
// pass; per-candidate failures do not.
func (h ActivateContractsCommandHandler) Handle(
	ctx context.Context, ac auth.Context, cmd ActivateContractsCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := auth.RequirePermission(ac, auth.PermManageContracts); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	contractRepo := uow.ContractRepository()

	candidates, err := contractRepo.GetAllPendingStartingBy(ctx, cmd.OccurredOn())
	if err != nil {
		return err
	}

	activated := 0
	for _, aggregate := range candidates {
		if err = aggregate.TransitionTo(contract.Active, cmd.OccurredOn()); err != nil {
			h.logger.WarnContext(ctx, "skipping contract",
				slog.String("contract_id", aggregate.ID().String()),
				slog.Any("error", err))
			continue
		}
		if err = contractRepo.Update(ctx, aggregate); err != nil {
			h.logger.WarnContext(ctx, "skipping contract",
				slog.String("contract_id", aggregate.ID().String()),
				slog.Any("error", err))
			continue
		}
		activated++
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "activation pass finished",
		slog.Int("candidates", len(candidates)),
		slog.Int("activated", activated))
	return nil
}
