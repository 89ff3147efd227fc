package commands

import (
	"errors"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/guard"
)

var ErrSuspendDriverCommandIsNotConstructed = errors.New(
	"SuspendDriverCommand must be created via NewSuspendDriverCommand constructor",
)

// SuspendDriverCommand represents a request to take a driver out of rotation.
// Suspension is refused while the driver holds active assignments.
type SuspendDriverCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.UUID
	driverID   kernel.UUID
	reason     string
	occurredOn time.Time

	guard guard.ConstructorGuard
}

// NewSuspendDriverCommand creates a command to suspend a driver.
func NewSuspendDriverCommand(
	tenantID, driverID kernel.UUID, reason string, occurredOn time.Time,
) (SuspendDriverCommand, error) {
	command := SuspendDriverCommand{
		occurredOn: occurredOn,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTenantID(tenantID),
		command.setDriverID(driverID),
		command.setReason(reason),
	); err != nil {
		return SuspendDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SuspendDriverCommand) Validate() error {
	return c.guard.Validate(ErrSuspendDriverCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c SuspendDriverCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// DriverID returns the driver to suspend.
func (c SuspendDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Reason returns why the driver is suspended.
func (c SuspendDriverCommand) Reason() string {
	return c.reason
}

// OccurredOn returns the instant the operation was requested.
func (c SuspendDriverCommand) OccurredOn() time.Time {
	return c.occurredOn
}

func (c *SuspendDriverCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}

func (c *SuspendDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *SuspendDriverCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}
	c.reason = reason
	return nil
}
