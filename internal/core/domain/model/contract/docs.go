// Package contract implements the rental contract aggregate.
//
// The aggregate root is Contract, which owns its RentalVehicle entries and
// guards the contract lifecycle. The lifecycle is a finite state machine
// implemented by Status: contracts start Pending, become Active when the
// rental begins, and end in exactly one of the terminal statuses Completed,
// Overdue or Cancelled. Cancellation always soft-deletes the contract;
// nothing in this system physically removes contract rows.
//
// All state changes go through validated methods on the aggregate. The
// transition table lives in Status and is consulted by CanTransition (pure)
// and TransitionTo (applies or fails with InvalidStateTransitionError).
//
// Time is always passed in by the caller; the aggregate never reads a clock,
// which keeps the scheduler passes that drive it deterministic in tests.
package contract
