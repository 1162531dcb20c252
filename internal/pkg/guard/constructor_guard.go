// Package guard detects zero-value structs that skipped their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and value objects whose
// invariants are only established by a constructor. The zero value is
// "not constructed", so a literal like SetItemOrderCommand{} fails Validate.
//
//	type ListItemsQuery struct {
//	    kind  gallery.Kind
//	    guard guard.ConstructorGuard
//	}
//
//	func (q ListItemsQuery) Validate() error {
//	    return q.guard.Validate(ErrListItemsQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
