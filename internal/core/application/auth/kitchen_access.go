// Package auth provides the KitchenAccess capability required by kitchen-side
// mutating operations. The capability replaces a global "admin" session flag:
// handlers demand it as an explicit argument, and only the request layer's
// credential gate grants it, so the core stays decoupled from any particular
// session mechanism.
package auth

import (
	"errors"

	"canteen/internal/pkg/guard"
)

// ErrKitchenAccessIsNotGranted is returned when a zero-value KitchenAccess is
// presented, i.e. the caller bypassed the credential gate.
var ErrKitchenAccessIsNotGranted = errors.New("kitchen access must be granted via GrantKitchenAccess")

// KitchenAccess is a capability marker authorizing kitchen-side operations
// (queue inspection, status transitions). A zero value fails validation, so a
// handler can tell a granted capability from a fabricated struct.
type KitchenAccess struct {
	guard guard.ConstructorGuard
}

// GrantKitchenAccess issues the capability. It must only be called after the
// caller's identity has been verified (the admin session middleware is the
// single call site in this application).
func GrantKitchenAccess() KitchenAccess {
	return KitchenAccess{guard: guard.NewConstructorGuard()}
}

// Validate returns ErrKitchenAccessIsNotGranted for a zero-value capability.
func (a KitchenAccess) Validate() error {
	return a.guard.Validate(ErrKitchenAccessIsNotGranted)
}
