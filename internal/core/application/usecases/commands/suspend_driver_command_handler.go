package commands

import (
	"context"

	"fleetadmin/internal/pkg/auth"
	"fleetadmin/internal/pkg/errs"
)

// SuspendDriverCommandHandler takes a driver out of rotation.
// The active-assignment check and the driver write share one transaction,
// and the assignment path also writes the driver row with a version check,
// so an assignment committed concurrently cannot slip past the suspension:
// one of the two transactions fails its version match and rolls back.
type SuspendDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSuspendDriverCommandHandler creates a handler for driver suspension.
func NewSuspendDriverCommandHandler(uowFactory DriverUoWFactory) SuspendDriverCommandHandler {
	return SuspendDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver suspension command.
// Fails with SuspensionBlockedError while the driver holds active assignments.
func (h SuspendDriverCommandHandler) Handle(
	ctx context.Context, ac auth.Context, cmd SuspendDriverCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := auth.RequirePermission(ac, auth.PermManageDrivers); err != nil {
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

	driverRepo := uow.DriverRepository()

	drv, err := driverRepo.Get(ctx, cmd.TenantID(), cmd.DriverID())
	if err != nil {
		return err
	}

	active, err := uow.AssignmentRepository().GetActiveByDriver(ctx, cmd.TenantID(), cmd.DriverID())
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return errs.NewSuspensionBlockedError(cmd.DriverID().String(), len(active))
	}

	if err = drv.Suspend(cmd.Reason(), cmd.OccurredOn()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, drv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
