// Package guard provides a defensive construction check for command and value
// objects. Embedding a ConstructorGuard lets a type detect whether it was
// created through its designated constructor or as a zero value, so that
// validation can reject improperly initialized instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// constructor function. The zero value fails validation.
//
// Example:
//
//	type CreateContractCommand struct {
//	    tenantID kernel.UUID
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewCreateContractCommand(tenantID kernel.UUID) (CreateContractCommand, error) {
//	    return CreateContractCommand{tenantID: tenantID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateContractCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateContractCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the embedding object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
