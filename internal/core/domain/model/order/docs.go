// Package order provides the Order aggregate and its lifecycle state machine
// for the canteen ordering system.
//
// The package includes:
//   - Order: the aggregate root owning quantity, timestamps, and lifecycle
//   - Status: a state machine value object enforcing legal status transitions
//   - InvalidTransitionError: the rejection carrying the current status
//
// Key business rules:
//   - Orders are created in Pending with a positive quantity
//   - Status follows Pending -> Preparing -> Ready -> Delivered, with
//     cancellation allowed from any non-terminal status
//   - Delivered and Cancelled are terminal: no further transitions
//   - actualReadyTime is stamped on the first arrival into Ready or
//     Delivered and never overwritten afterwards
//
// The aggregate holds no authority over persistence: every mutation is a
// read-modify-write against the store, so callers must run transitions inside
// a transaction that locks the order row.
package order
