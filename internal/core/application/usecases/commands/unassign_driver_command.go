package commands

import (
	"errors"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/guard"
)

var (
	ErrUnassignDriverCommandIsNotConstructed = errors.New(
		"UnassignDriverCommand must be created via NewUnassignDriverCommand constructor",
	)
	ErrReasonIsRequired = errors.New("reason is required")
)

// UnassignDriverCommand represents a request to detach the drivers currently
// assigned to a contract. The ledger rows are ended, never deleted.
type UnassignDriverCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.UUID
	contractID kernel.UUID
	reason     string
	occurredOn time.Time

	guard guard.ConstructorGuard
}

// NewUnassignDriverCommand creates a command to detach a contract's drivers.
func NewUnassignDriverCommand(
	tenantID, contractID kernel.UUID, reason string, occurredOn time.Time,
) (UnassignDriverCommand, error) {
	command := UnassignDriverCommand{
		occurredOn: occurredOn,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTenantID(tenantID),
		command.setContractID(contractID),
		command.setReason(reason),
	); err != nil {
		return UnassignDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignDriverCommand) Validate() error {
	return c.guard.Validate(ErrUnassignDriverCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c UnassignDriverCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// ContractID returns the contract whose drivers are detached.
func (c UnassignDriverCommand) ContractID() kernel.UUID {
	return c.contractID
}

// Reason returns why the drivers are detached.
func (c UnassignDriverCommand) Reason() string {
	return c.reason
}

// OccurredOn returns the instant the operation was requested.
func (c UnassignDriverCommand) OccurredOn() time.Time {
	return c.occurredOn
}

func (c *UnassignDriverCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}

func (c *UnassignDriverCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return err
	}
	c.contractID = contractID
	return nil
}

func (c *UnassignDriverCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}
	c.reason = reason
	return nil
}
