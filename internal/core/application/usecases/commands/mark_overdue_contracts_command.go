package commands

import (
	"errors"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
	"fleetadmin/internal/pkg/guard"
)

var ErrMarkOverdueContractsCommandIsNotConstructed = errors.New(
	"MarkOverdueContractsCommand must be created via NewMarkOverdueContractsCommand constructor",
)

// MarkOverdueContractsCommand represents one overdue-detection pass of the
// scheduler: every Active contract whose period ended before the evaluation
// date is moved to Overdue.
type MarkOverdueContractsCommand struct { //nolint:recvcheck //using for validation
	occurredOn time.Time

	guard guard.ConstructorGuard
}

// NewMarkOverdueContractsCommand creates an overdue pass command for the
// given evaluation date. The date is truncated to UTC midnight.
func NewMarkOverdueContractsCommand(occurredOn time.Time) (MarkOverdueContractsCommand, error) {
	if occurredOn.IsZero() {
		return MarkOverdueContractsCommand{}, errs.NewValueIsRequiredError("occurredOn")
	}

	return MarkOverdueContractsCommand{
		occurredOn: kernel.DateOf(occurredOn),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOverdueContractsCommand) Validate() error {
	return c.guard.Validate(ErrMarkOverdueContractsCommandIsNotConstructed)
}

// OccurredOn returns the pass evaluation date (UTC midnight).
func (c MarkOverdueContractsCommand) OccurredOn() time.Time {
	return c.occurredOn
}
