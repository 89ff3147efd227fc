package commands

import (
	"errors"
	"time"

	"fleetadmin/internal/core/domain/model/contract"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/guard"
)

var ErrTransitionContractCommandIsNotConstructed = errors.New(
	"TransitionContractCommand must be created via NewTransitionContractCommand constructor",
)

// TransitionContractCommand represents a request to move a contract to a new
// lifecycle status. The target must be reachable from the contract's current
// status per the transition table.
type TransitionContractCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.UUID
	contractID kernel.UUID
	target     contract.Status
	occurredOn time.Time

	guard guard.ConstructorGuard
}

// NewTransitionContractCommand creates a command to change a contract's status.
func NewTransitionContractCommand(
	tenantID, contractID kernel.UUID, target contract.Status, occurredOn time.Time,
) (TransitionContractCommand, error) {
	command := TransitionContractCommand{
		occurredOn: occurredOn,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTenantID(tenantID),
		command.setContractID(contractID),
		command.setTarget(target),
	); err != nil {
		return TransitionContractCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionContractCommand) Validate() error {
	return c.guard.Validate(ErrTransitionContractCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c TransitionContractCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// ContractID returns the contract to transition.
func (c TransitionContractCommand) ContractID() kernel.UUID {
	return c.contractID
}

// Target returns the requested status.
func (c TransitionContractCommand) Target() contract.Status {
	return c.target
}

// OccurredOn returns the instant the operation was requested.
func (c TransitionContractCommand) OccurredOn() time.Time {
	return c.occurredOn
}

func (c *TransitionContractCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}

func (c *TransitionContractCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return err
	}
	c.contractID = contractID
	return nil
}

func (c *TransitionContractCommand) setTarget(target contract.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
