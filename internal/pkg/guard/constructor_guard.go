// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a value object or entity makes zero-value
// instances detectable, so invariants enforced by constructors cannot be
// bypassed by direct struct initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error. Validation always fails with a meaningful
// message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value of the guard is "not constructed" and fails
// validation, which is exactly what makes the pattern work.
//
// Example:
//
//	type TrackingNumber struct {
//	    orderID int64
//	    suffix  byte
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewTrackingNumber(orderID int64, suffix byte) (TrackingNumber, error) {
//	    // validate inputs...
//	    return TrackingNumber{orderID: orderID, suffix: suffix, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t TrackingNumber) Validate() error {
//	    return t.guard.Validate(ErrTrackingNumberIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the enclosing object as
// properly constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the enclosing object was created through its
// constructor. For zero-value objects it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
