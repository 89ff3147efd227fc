package commands

import (
	"context"

	"fleetadmin/internal/pkg/auth"
)

// ResumeDriverCommandHandler returns a suspended driver to rotation.
type ResumeDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewResumeDriverCommandHandler creates a handler for driver resumption.
func NewResumeDriverCommandHandler(uowFactory DriverUoWFactory) ResumeDriverCommandHandler {
	return ResumeDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver resumption command.
func (h ResumeDriverCommandHandler) Handle(
	ctx context.Context, ac auth.Context, cmd ResumeDriverCommand,
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

	if err = drv.Resume(cmd.OccurredOn()); err != nil {
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
