package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is. Every concrete error
// type in this package unwraps to exactly one of these.
var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrValueIsRequired        = errors.New("value is required")
	ErrVersionIsInvalid       = errors.New("version is invalid")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrDriverIneligible       = errors.New("driver is ineligible")
	ErrAssignmentConflict     = errors.New("assignment conflict")
	ErrConcurrencyConflict    = errors.New("concurrency conflict")
	ErrSuspensionBlocked      = errors.New("suspension blocked")
)

// sanitize strips newlines from values before they are embedded in error
// messages, keeping log lines single-line.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that an object could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value fell outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that an entity's optimistic version counter is malformed.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// InvalidStateTransitionError indicates that a requested contract status change
// violates the transition table.
type InvalidStateTransitionError struct {
	From string
	To   string
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError for
// the rejected from -> to pair.
func NewInvalidStateTransitionError(from, to string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{From: from, To: to}
}

func (e *InvalidStateTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidStateTransition, e.From, e.To))
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// DriverIneligibleError indicates that a driver cannot take an assignment
// because of their status or an expired license.
type DriverIneligibleError struct {
	DriverID string
	Reason   string
}

// NewDriverIneligibleError creates a DriverIneligibleError with the disqualifying reason.
func NewDriverIneligibleError(driverID, reason string) *DriverIneligibleError {
	return &DriverIneligibleError{DriverID: driverID, Reason: reason}
}

func (e *DriverIneligibleError) Error() string {
	return sanitize(fmt.Sprintf("%s: driver %s: %s", ErrDriverIneligible, e.DriverID, e.Reason))
}

func (e *DriverIneligibleError) Unwrap() error {
	return ErrDriverIneligible
}

// AssignmentConflictError indicates that a driver already holds an active
// assignment whose date range overlaps the requested one.
type AssignmentConflictError struct {
	DriverID  string
	Conflicts int
}

// NewAssignmentConflictError creates an AssignmentConflictError reporting how
// many active assignments overlap the requested range.
func NewAssignmentConflictError(driverID string, conflicts int) *AssignmentConflictError {
	return &AssignmentConflictError{DriverID: driverID, Conflicts: conflicts}
}

func (e *AssignmentConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: driver %s has %d overlapping active assignment(s)",
		ErrAssignmentConflict, e.DriverID, e.Conflicts))
}

func (e *AssignmentConflictError) Unwrap() error {
	return ErrAssignmentConflict
}

// ConcurrencyConflictError indicates that a write presented a stale optimistic
// version and was rejected without modifying the entity.
type ConcurrencyConflictError struct {
	ParamName string
	ID        any
	Version   int
}

// NewConcurrencyConflictError creates a ConcurrencyConflictError for the
// entity whose stored version no longer matches the presented one.
func NewConcurrencyConflictError(paramName string, id any, version int) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{ParamName: paramName, ID: id, Version: version}
}

func (e *ConcurrencyConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %v at version %d is stale",
		ErrConcurrencyConflict, e.ParamName, e.ID, e.Version))
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}

// SuspensionBlockedError indicates that a driver cannot be suspended while
// they still hold active assignments.
type SuspensionBlockedError struct {
	DriverID    string
	ActiveCount int
}

// NewSuspensionBlockedError creates a SuspensionBlockedError reporting the
// number of active assignments blocking the suspension.
func NewSuspensionBlockedError(driverID string, activeCount int) *SuspensionBlockedError {
	return &SuspensionBlockedError{DriverID: driverID, ActiveCount: activeCount}
}

func (e *SuspensionBlockedError) Error() string {
	return sanitize(fmt.Sprintf("%s: driver %s has %d active assignment(s)",
		ErrSuspensionBlocked, e.DriverID, e.ActiveCount))
}

func (e *SuspensionBlockedError) Unwrap() error {
	return ErrSuspensionBlocked
}
