package commands

import (
	"context"

	"fleetadmin/internal/core/domain/model/driver"
	"fleetadmin/internal/pkg/auth"
)

// RegisterDriverCommandHandler registers a new driver in a tenant's fleet.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRegisterDriverCommandHandler creates a handler for driver registration.
func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command.
func (h RegisterDriverCommandHandler) Handle(
	ctx context.Context, ac auth.Context, cmd RegisterDriverCommand,
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

	drv, err := driver.NewDriver(cmd.DriverID(), cmd.TenantID(), cmd.LicenseExpiry(), cmd.OccurredOn())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DriverRepository().Add(ctx, drv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
