package commands

import (
	"context"

	"fleetadmin/internal/core/domain/model/contract"
	"fleetadmin/internal/pkg/auth"
)

// reasonContractCancelled ends ledger rows when their contract is cancelled.
const reasonContractCancelled = "contract cancelled"

// TransitionContractCommandHandler moves a contract through its lifecycle.
// A transition to Cancelled additionally soft-deletes the contract and ends
// any active assignment rows, all in one transaction.
type TransitionContractCommandHandler struct {
	uowFactory UoWFactory
}

// NewTransitionContractCommandHandler creates a handler for contract transitions.
func NewTransitionContractCommandHandler(uowFactory UoWFactory) TransitionContractCommandHandler {
	return TransitionContractCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Fails with InvalidStateTransitionError when the transition table forbids
// the move, and with ConcurrencyConflictError when the contract changed
// underneath the caller.
func (h TransitionContractCommandHandler) Handle(
	ctx context.Context, ac auth.Context, cmd TransitionContractCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := auth.RequirePermission(ac, auth.PermManageContracts); err != nil {
		return err
	}
	if err := auth.RequireTenant(ac, cmd.TenantID()); err != nil {
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

	aggregate, err := contractRepo.Get(ctx, cmd.TenantID(), cmd.ContractID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(cmd.Target(), cmd.OccurredOn()); err != nil {
		return err
	}

	if err = contractRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.Target() == contract.Cancelled {
		if err = h.cancelActiveAssignments(ctx, uow, cmd); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h TransitionContractCommandHandler) cancelActiveAssignments(
	ctx context.Context, uow UoW, cmd TransitionContractCommand,
) error {
	assignmentRepo := uow.AssignmentRepository()

	active, err := assignmentRepo.GetActiveByContract(ctx, cmd.TenantID(), cmd.ContractID())
	if err != nil {
		return err
	}

	for _, row := range active {
		if err = row.Cancel(reasonContractCancelled, cmd.OccurredOn()); err != nil {
			return err
		}
		if err = assignmentRepo.Update(ctx, row); err != nil {
			return err
		}
	}

	return nil
}
