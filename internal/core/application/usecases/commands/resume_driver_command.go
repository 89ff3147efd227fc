package commands

import (
	"errors"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/guard"
)

var ErrResumeDriverCommandIsNotConstructed = errors.New(
	"ResumeDriverCommand must be created via NewResumeDriverCommand constructor",
)

// ResumeDriverCommand represents a request to return a suspended driver to
// rotation.
type ResumeDriverCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.UUID
	driverID   kernel.UUID
	occurredOn time.Time

	guard guard.ConstructorGuard
}

// NewResumeDriverCommand creates a command to resume a suspended driver.
func NewResumeDriverCommand(
	tenantID, driverID kernel.UUID, occurredOn time.Time,
) (ResumeDriverCommand, error) {
	command := ResumeDriverCommand{
		occurredOn: occurredOn,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTenantID(tenantID),
		command.setDriverID(driverID),
	); err != nil {
		return ResumeDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeDriverCommand) Validate() error {
	return c.guard.Validate(ErrResumeDriverCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c ResumeDriverCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// DriverID returns the driver to resume.
func (c ResumeDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// OccurredOn returns the instant the operation was requested.
func (c ResumeDriverCommand) OccurredOn() time.Time {
	return c.occurredOn
}

func (c *ResumeDriverCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}

func (c *ResumeDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
