package studentrepo

import (
	"context"
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/student"
	"canteen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStudentRepository implements StudentRepository using GORM.
type GormStudentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStudentRepository creates a new GORM student repository.
func NewGormStudentRepository(db *gorm.DB, tracker aggregateTracker) *GormStudentRepository {
	return &GormStudentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new student to the database. A duplicate registration ID is
// reported as errs.ErrObjectAlreadyExists so callers can recover when two
// first orders race; relies on TranslateError being enabled on the
// connection.
func (r *GormStudentRepository) Add(ctx context.Context, aggregate *student.Student) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"student", aggregate.RegistrationID(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a student by ID.
func (r *GormStudentRepository) Get(ctx context.Context, id kernel.UUID) (*student.Student, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StudentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("student", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByRegistrationID retrieves a student by the registration ID they
// identify themselves with when ordering.
func (r *GormStudentRepository) GetByRegistrationID(
	ctx context.Context,
	registrationID string,
) (*student.Student, error) {
	if registrationID == "" {
		return nil, errs.NewValueIsRequiredError("registrationID")
	}

	var dto StudentDTO
	err := r.db.WithContext(ctx).First(&dto, "registration_id = ?", registrationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("student", registrationID)
		}
		return nil, err
	}

	return toDomain(dto)
}
