// Package services provides domain services that implement business rules
// spanning more than one aggregate.
//
// AssignmentValidator checks driver eligibility and assignment overlap before
// a driver is attached to a contract. It operates on in-memory aggregates;
// fetching the driver and their active assignments, and keeping the
// read-then-insert sequence atomic, is the caller's job.
package services
