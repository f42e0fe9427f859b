// Package kernel contains shared value objects used across the canteen
// domain model. It currently provides UUID, the identifier type for all
// aggregates (students, menu items, orders).
//
// Value objects in this package are immutable and safe for concurrent use.
// Their zero values are invalid; instances must be obtained through the
// provided constructor functions.
package kernel
