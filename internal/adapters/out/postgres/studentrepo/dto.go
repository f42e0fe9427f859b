// Package studentrepo provides data transfer objects and mapping functions for
// student persistence. It implements the repository pattern for the student
// aggregate, converting between domain entities and database rows.
package studentrepo

import (
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/student"

	"github.com/google/uuid"
)

// StudentDTO represents the database structure for persisting student aggregates.
// RegistrationID carries a unique index: it is the natural key students identify
// themselves with, and the database enforces at most one row per registration
// even under concurrent first orders.
type StudentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"not null"`
	RegistrationID string    `gorm:"uniqueIndex;not null"`
}

// TableName specifies the database table name for student entities.
func (StudentDTO) TableName() string {
	return "students"
}

// fromDomain converts a student domain aggregate to its database representation.
func fromDomain(aggregate *student.Student) StudentDTO {
	return StudentDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		RegistrationID: aggregate.RegistrationID(),
	}
}

// toDomain converts a database DTO to a student domain aggregate.
func toDomain(dto StudentDTO) (*student.Student, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return student.RestoreStudent(id, dto.Name, dto.RegistrationID)
}
