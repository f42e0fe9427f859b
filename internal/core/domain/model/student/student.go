// Package student provides the Student identity aggregate. Students are
// created lazily on their first order, deduplicated by registration id, and
// never mutated or deleted by this core.
package student

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// ErrStudentIsNotConstructed is returned when a Student instance was not
// created through NewStudent or RestoreStudent.
var ErrStudentIsNotConstructed = errors.New("Student must be created via NewStudent or RestoreStudent")

// Student is the identity record for a person placing orders. The
// registration id is the natural key: at most one student may ever exist per
// registration id, which the persistence layer enforces with a uniqueness
// constraint.
type Student struct {
	// id is the surrogate key assigned on creation
	id kernel.UUID

	// name is the display name supplied with the first order
	name string

	// registrationID is the external natural key, unique across students
	registrationID string

	// isConstructed ensures the student was created via a constructor
	isConstructed bool
}

// NewStudent creates a Student with a validated name and registration id.
//
// Returns a validation error when the id is invalid or either string is
// empty.
func NewStudent(id kernel.UUID, name, registrationID string) (*Student, error) {
	s := &Student{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setRegistrationID(registrationID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStudent reconstructs a Student from persisted state. It applies the
// same validation as NewStudent.
func RestoreStudent(id kernel.UUID, name, registrationID string) (*Student, error) {
	return NewStudent(id, name, registrationID)
}

// Validate ensures the Student instance was properly constructed.
func (s *Student) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStudentIsNotConstructed
	}
	return nil
}

// IsEqual compares two students by identifier.
func (s *Student) IsEqual(other *Student) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the student's surrogate identifier.
func (s *Student) ID() kernel.UUID {
	return s.id
}

// Name returns the student's display name.
func (s *Student) Name() string {
	return s.name
}

// RegistrationID returns the external natural key.
func (s *Student) RegistrationID() string {
	return s.registrationID
}

func (s *Student) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Student) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Student) setRegistrationID(registrationID string) error {
	if registrationID == "" {
		return errs.NewValueIsRequiredError("registrationID")
	}
	s.registrationID = registrationID
	return nil
}
