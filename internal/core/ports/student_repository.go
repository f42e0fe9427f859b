// Package ports defines repository and unit-of-work interfaces for the
// canteen domain. These interfaces establish contracts between the core and
// the persistence adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/student"
)

// StudentRepository defines the persistence contract for student identity
// records. Students are deduplicated by registration id: the store enforces
// a uniqueness constraint on the natural key so that concurrent first-time
// orders for the same registration id cannot create duplicate rows.
type StudentRepository interface {
	// Add persists a new student. When another transaction has already
	// created a student with the same registration id, Add returns an
	// error matching errs.ErrObjectAlreadyExists; the caller is expected
	// to restart and re-fetch the surviving row.
	Add(ctx context.Context, aggregate *student.Student) error

	// Get retrieves a student by surrogate identifier.
	// Returns an error matching errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*student.Student, error)

	// GetByRegistrationID retrieves a student by the natural key.
	// Returns an error matching errs.ErrObjectNotFound when absent.
	GetByRegistrationID(ctx context.Context, registrationID string) (*student.Student, error)
}
