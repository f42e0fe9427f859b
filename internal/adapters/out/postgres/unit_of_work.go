// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business operation: it opens a single
// database transaction, hands out repositories bound to that transaction, and
// tracks every aggregate those repositories touch.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation gets a fresh instance from the factory; instances
// are not safe for concurrent use. Rollback after a successful Commit is a
// harmless no-op error, which makes the defer pattern above safe.
package postgres

import (
	"context"

	"canteen/internal/adapters/out/postgres/menurepo"
	"canteen/internal/adapters/out/postgres/orderrepo"
	"canteen/internal/adapters/out/postgres/studentrepo"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. The factory exists so command handlers can demand a fresh,
// isolated unit of work per operation without knowing about GORM.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the student, order
// and menu item repositories. Repositories obtained before Begin run against
// the main connection; after Begin they run inside the transaction.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin with a transaction already open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// StudentRepository provides student persistence bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) StudentRepository() ports.StudentRepository {
	return studentrepo.NewGormStudentRepository(uow.conn(), uow)
}

// OrderRepository provides order persistence bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// MenuItemRepository provides menu item reads bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) MenuItemRepository() ports.MenuItemRepository {
	return menurepo.NewGormMenuItemRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repositories call it on every Add and Update; the collected list
// is the hook point for post-commit processing such as an outbox.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
