package commands

import (
	"context"
	"log/slog"

	"fleetadmin/internal/core/domain/model/contract"
	"fleetadmin/internal/pkg/auth"
)

// MarkOverdueContractsCommandHandler runs the scheduler's overdue-detection
// pass. Same error policy as the activation pass: a failing candidate is
// logged and skipped, a failing candidate query aborts the pass.
type MarkOverdueContractsCommandHandler struct {
	uowFactory ContractUoWFactory
	logger     *slog.Logger
}

// NewMarkOverdueContractsCommandHandler creates a handler for the overdue pass.
func NewMarkOverdueContractsCommandHandler(
	uowFactory ContractUoWFactory, logger *slog.Logger,
) MarkOverdueContractsCommandHandler {
	return MarkOverdueContractsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With(slog.String("pass", "overdue_detection")),
	}
}

// Handle processes one overdue-detection pass.
func (h MarkOverdueContractsCommandHandler) Handle(
	ctx context.Context, ac auth.Context, cmd MarkOverdueContractsCommand,
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

	candidates, err := contractRepo.GetAllActiveEndedBy(ctx, cmd.OccurredOn())
	if err != nil {
		return err
	}

	marked := 0
	for _, aggregate := range candidates {
		if err = aggregate.TransitionTo(contract.Overdue, cmd.OccurredOn()); err != nil {
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
		marked++
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "overdue pass finished",
		slog.Int("candidates", len(candidates)),
		slog.Int("marked_overdue", marked))
	return nil
}
