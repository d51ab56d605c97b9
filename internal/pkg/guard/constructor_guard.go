// Package guard provides the constructor guard used by commands and value
// objects to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and the caller did not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor. Embedding a guard in a struct makes zero-value
// instances detectable: a struct built with a literal carries a zero guard
// and fails Validate.
//
// Example:
//
//	type CompleteSectorCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCompleteSectorCommand(orderID kernel.UUID) (CompleteSectorCommand, error) {
//	    return CompleteSectorCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CompleteSectorCommand) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the owning object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was properly constructed.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
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
