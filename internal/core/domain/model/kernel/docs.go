// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides the building blocks that aggregates are composed of:
//
//   - UUID: validated entity identifier wrapping github.com/google/uuid
//   - DateRange: inclusive calendar-day interval with overlap semantics
//
// All kernel types are immutable value objects. They validate themselves at
// construction and expose a Validate method for use when reconstructing
// domain objects from persistence.
package kernel
