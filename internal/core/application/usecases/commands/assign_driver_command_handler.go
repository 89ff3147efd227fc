package commands

import (
	"context"

	"fleetadmin/internal/core/domain/model/assignment"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/services"
	"fleetadmin/internal/pkg/auth"
)

// AssignDriverCommandHandler orchestrates attaching a driver to a contract.
// Loads the contract and driver, runs the assignment validator against the
// driver's active ledger rows, attaches the driver to a vehicle slot, and
// appends the ledger row. The overlap check and the ledger insert share one
// transaction so concurrent assignments cannot both pass the check. The
// driver row is also written with a version check, so this transaction and
// a concurrent suspension serialize on the driver's version counter.
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory UoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver assignment command.
// Requires the assign-drivers permission within the command's tenant.
// Fails with DriverIneligibleError or AssignmentConflictError when the
// validator rejects the assignment.
func (h AssignDriverCommandHandler) Handle(
	ctx context.Context, ac auth.Context, cmd AssignDriverCommand,
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
	driverRepo := uow.DriverRepository()
	assignmentRepo := uow.AssignmentRepository()

	aggregate, err := contractRepo.Get(ctx, cmd.TenantID(), cmd.ContractID())
	if err != nil {
		return err
	}

	drv, err := driverRepo.Get(ctx, cmd.TenantID(), cmd.DriverID())
	if err != nil {
		return err
	}

	active, err := assignmentRepo.GetActiveByDriver(ctx, cmd.TenantID(), cmd.DriverID())
	if err != nil {
		return err
	}

	validator := services.NewAssignmentValidator()
	if err = validator.ValidateForAssignment(drv, aggregate.Period(), cmd.OccurredOn(), active); err != nil {
		return err
	}

	if err = aggregate.AttachDriver(cmd.DriverID(), cmd.OccurredOn()); err != nil {
		return err
	}

	if err = drv.TakeAssignment(cmd.OccurredOn()); err != nil {
		return err
	}

	ledgerRow, err := assignment.NewAssignment(
		kernel.NewUUID(),
		cmd.TenantID(),
		cmd.DriverID(),
		cmd.ContractID(),
		aggregate.Period(),
		cmd.OccurredOn(),
	)
	if err != nil {
		return err
	}

	if err = contractRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, drv); err != nil {
		return err
	}

	if err = assignmentRepo.Add(ctx, ledgerRow); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
