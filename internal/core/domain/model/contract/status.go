package contract

import (
	"fmt"

	"fleetadmin/internal/pkg/errs"
)

// Status represents the lifecycle state of a rental contract.
// It implements a state machine with defined transitions to ensure
// contracts follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Active ──┬──> Completed
//	          │             ├──> Overdue
//	          │             └──> Cancelled
//	          └──> Cancelled
//
// Completed, Overdue and Cancelled are terminal: no transition out of them
// is permitted other than the identity transition, which is always a no-op.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a contract is first created.
	// Contracts in this status wait for their start date or an explicit activation.
	Pending

	// Active indicates the rental period is under way.
	Active

	// Completed indicates the rental finished normally. Terminal.
	Completed

	// Overdue indicates the rental ran past its end date without completion. Terminal.
	Overdue

	// Cancelled indicates the contract was cancelled and soft-deleted. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Active:    "Active",
		Completed: "Completed",
		Overdue:   "Overdue",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Active:    "Active",
		Completed: "Completed",
		Overdue:   "Overdue",
		Cancelled: "Cancelled",
	}
}

// transitionTable maps each status to the set of statuses it may move to.
// The identity transition is handled separately and is always allowed.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Active, Cancelled},
		Active:    {Completed, Overdue, Cancelled},
		Completed: {},
		Overdue:   {},
		Cancelled: {},
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Active, Completed, Overdue, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Invalid values render as "Unknown". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus converts a status name into a Status value.
// Returns an error for unrecognized names, including "Unknown".
func ParseStatus(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// IsTerminal reports whether the status permits no further transitions.
// Completed, Overdue and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Overdue || s == Cancelled
}

// CanTransition reports whether the transition table permits moving from this
// status to the target. The identity transition is always permitted for valid
// statuses. This is a pure check without side effects.
//
// Example:
//
//	if !current.CanTransition(contract.Active) {
//	    return fmt.Errorf("contract cannot be activated from %s", current)
//	}
func (s Status) CanTransition(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	if s == target {
		return true
	}
	for _, allowed := range transitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the status after applying a transition to target.
//
// Returns:
//   - (target, nil) when the transition table permits the move
//   - (target, nil) for the identity transition, which is always permitted
//   - (0, InvalidStateTransitionError) otherwise; the request is never
//     silently clamped or ignored
//
// This method is used by Contract.TransitionTo to enforce state transitions.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransition(target) {
		return 0, errs.NewInvalidStateTransitionError(s.String(), target.String())
	}
	return target, nil
}
