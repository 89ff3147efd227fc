package commands

import (
	"context"
	"errors"

	"fleetadmin/internal/core/domain/model/contract"
	"fleetadmin/internal/pkg/auth"
)

var ErrNoActiveAssignmentFound = errors.New("no active assignment found")

// UnassignDriverCommandHandler detaches the drivers currently assigned to a
// contract. Each active ledger row is ended with the command's reason. While
// the contract is still Pending the vehicle slots are cleared as well; once
// the contract is Active the slots stay frozen and only the ledger changes.
type UnassignDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewUnassignDriverCommandHandler creates a handler for driver unassignment.
func NewUnassignDriverCommandHandler(uowFactory UoWFactory) UnassignDriverCommandHandler {
	return UnassignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver unassignment command.
// Returns ErrNoActiveAssignmentFound when the contract has no active drivers.
func (h UnassignDriverCommandHandler) Handle(
	ctx context.Context, ac auth.Context, cmd UnassignDriverCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := auth.RequirePermission(ac, auth.PermAssignDrivers); err != nil {
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
	assignmentRepo := uow.AssignmentRepository()

	aggregate, err := contractRepo.Get(ctx, cmd.TenantID(), cmd.ContractID())
	if err != nil {
		return err
	}

	active, err := assignmentRepo.GetActiveByContract(ctx, cmd.TenantID(), cmd.ContractID())
	if err != nil {
		return err
	}
	if len(active) == 0 {
		return ErrNoActiveAssignmentFound
	}

	for _, row := range active {
		if err = row.Unassign(cmd.Reason(), cmd.OccurredOn()); err != nil {
			return err
		}
		if err = assignmentRepo.Update(ctx, row); err != nil {
			return err
		}

		if aggregate.Status() == contract.Pending {
			if err = aggregate.DetachDriver(row.DriverID(), cmd.OccurredOn()); err != nil {
				return err
			}
		}
	}

	if aggregate.Status() == contract.Pending {
		if err = contractRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
