// Package guard provides the constructor guard used by commands and value
// objects to detect zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply its own "not constructed" error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor. Embedding a ConstructorGuard in a struct makes a
// zero-value instance detectable: the guard of a zero value is itself a zero
// value and fails Validate.
//
// Example usage:
//
//	type MarkItemShortCommand struct {
//	    itemID kernel.UUID
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewMarkItemShortCommand(itemID kernel.UUID) (MarkItemShortCommand, error) {
//	    if err := itemID.Validate(); err != nil {
//	        return MarkItemShortCommand{}, err
//	    }
//	    return MarkItemShortCommand{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c MarkItemShortCommand) Validate() error {
//	    return c.guard.Validate(ErrMarkItemShortCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as properly
// constructed. Call it only from the holder's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was built through its constructor.
// For a zero-value holder it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}

	if validationError == nil {
		return ErrDefaultConstructorGuard
	}

	return validationError
}
