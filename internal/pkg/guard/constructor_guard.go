// Package guard provides ConstructorGuard, a marker that lets value objects and
// commands tell an instance built by their constructor apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as an unexported field in types whose invariants are
// established by a constructor. The zero value reports "not constructed".
//
// Example:
//
//	var ErrSKUIsNotConstructed = errors.New("SKU must be created via NewSKU")
//
//	type SKU struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSKU(v string) (SKU, error) {
//	    if v == "" {
//	        return SKU{}, errs.NewValueIsRequiredError("sku")
//	    }
//	    return SKU{value: v, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s SKU) Validate() error {
//	    return s.guard.Validate(ErrSKUIsNotConstructed)
//	}
//
// ConstructorGuard holds a single immutable flag, so copies are safe to share between goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
