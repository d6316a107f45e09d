// Package guard provides a small defensive-programming helper that ensures
// value objects and commands are only created through their designated
// constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and the caller supplied no specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its
// constructor or as a zero value. Embed it in a command or value object, set
// it with NewConstructorGuard inside the constructor, and check it from the
// object's Validate method.
//
// Example:
//
//	type RecordPaymentCommand struct {
//	    documentID kernel.UUID
//	    amount     decimal.Decimal
//
//	    guard guard.ConstructorGuard
//	}
//
//	func (c RecordPaymentCommand) Validate() error {
//	    return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
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
