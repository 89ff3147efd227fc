package commands

import (
	"errors"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
	"fleetadmin/internal/pkg/guard"
)

var ErrActivateContractsCommandIsNotConstructed = errors.New(
	"ActivateContractsCommand must be created via NewActivateContractsCommand constructor",
)

// ActivateContractsCommand represents one activation pass of the scheduler:
// every Pending contract whose period has started by the evaluation date is
// moved to Active. The evaluation date is supplied by the caller; the pass
// never reads the wall clock, which makes runs reproducible.
type ActivateContractsCommand struct { //nolint:recvcheck //using for validation
	occurredOn time.Time

	guard guard.ConstructorGuard
}

// NewActivateContractsCommand creates an activation pass command for the
// given evaluation date. The date is truncated to UTC midnight.
func NewActivateContractsCommand(occurredOn time.Time) (ActivateContractsCommand, error) {
	if occurredOn.IsZero() {
		return ActivateContractsCommand{}, errs.NewValueIsRequiredError("occurredOn")
	}

	return ActivateContractsCommand{
		occurredOn: kernel.DateOf(occurredOn),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ActivateContractsCommand) Validate() error {
	return c.guard.Validate(ErrActivateContractsCommandIsNotConstructed)
}

// OccurredOn returns the pass evaluation date (UTC midnight).
func (c ActivateContractsCommand) OccurredOn() time.Time {
	return c.occurredOn
}
