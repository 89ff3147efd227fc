package commands

import (
	"errors"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
	"fleetadmin/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand represents a request to register a driver in a
// tenant's fleet. New drivers start Available.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	tenantID      kernel.UUID
	licenseExpiry time.Time
	occurredOn    time.Time

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a driver.
// Automatically generates a unique ID for the driver.
func NewRegisterDriverCommand(
	tenantID kernel.UUID, licenseExpiry, occurredOn time.Time,
) (RegisterDriverCommand, error) {
	command := RegisterDriverCommand{
		occurredOn: occurredOn,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(kernel.NewUUID()),
		command.setTenantID(tenantID),
		command.setLicenseExpiry(licenseExpiry),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the generated identifier of the driver to register.
func (c RegisterDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// TenantID returns the tenant the driver belongs to.
func (c RegisterDriverCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// LicenseExpiry returns the driver's license expiry date.
func (c RegisterDriverCommand) LicenseExpiry() time.Time {
	return c.licenseExpiry
}

// OccurredOn returns the instant the operation was requested.
func (c RegisterDriverCommand) OccurredOn() time.Time {
	return c.occurredOn
}

func (c *RegisterDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *RegisterDriverCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}

func (c *RegisterDriverCommand) setLicenseExpiry(expiry time.Time) error {
	if expiry.IsZero() {
		return errs.NewValueIsRequiredError("licenseExpiry")
	}
	c.licenseExpiry = expiry
	return nil
}
