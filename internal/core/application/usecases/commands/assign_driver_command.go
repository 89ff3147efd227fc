package commands

import (
	"errors"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to attach a driver to a pending
// rental contract. The assignment is recorded in the driver-assignment
// history ledger and checked against the driver's other active assignments.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.UUID
	contractID kernel.UUID
	driverID   kernel.UUID
	occurredOn time.Time

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to attach a driver to a contract.
func NewAssignDriverCommand(
	tenantID, contractID, driverID kernel.UUID, occurredOn time.Time,
) (AssignDriverCommand, error) {
	command := AssignDriverCommand{
		occurredOn: occurredOn,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTenantID(tenantID),
		command.setContractID(contractID),
		command.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c AssignDriverCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// ContractID returns the contract the driver is attached to.
func (c AssignDriverCommand) ContractID() kernel.UUID {
	return c.contractID
}

// DriverID returns the driver to attach.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// OccurredOn returns the instant the operation was requested.
func (c AssignDriverCommand) OccurredOn() time.Time {
	return c.occurredOn
}

func (c *AssignDriverCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}

func (c *AssignDriverCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return err
	}
	c.contractID = contractID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
