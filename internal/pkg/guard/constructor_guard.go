// Package guard provides the constructor-guard pattern used by value objects,
// commands, and queries to detect zero-value instances that bypassed their
// constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific validation error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor. Embedding a guard in a struct lets Validate
// distinguish properly constructed instances from zero values, so invariants
// established by the constructor cannot be bypassed by direct initialization.
//
// Example usage:
//
//	type PlaceOrderCommand struct {
//	    itemID kernel.UUID
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewPlaceOrderCommand(itemID kernel.UUID) (PlaceOrderCommand, error) {
//	    if err := itemID.Validate(); err != nil {
//	        return PlaceOrderCommand{}, err
//	    }
//	    return PlaceOrderCommand{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its holder as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was created through its constructor.
// For a zero-value guard it returns validationError, or
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
