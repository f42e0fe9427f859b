package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and repositories bound to the transaction, so a
// mutating operation commits as a single atomic unit or not at all.
// Client code must explicitly manage the transaction lifecycle and must
// release it on every exit path (typically `defer uow.Rollback(ctx)`).
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Calling Rollback after
	// a successful Commit is a no-op error and safe to defer.
	Rollback(ctx context.Context) error

	// StudentRepository returns a StudentRepository bound to the current
	// transaction started by Begin().
	StudentRepository() StudentRepository

	// OrderRepository returns an OrderRepository bound to the current
	// transaction started by Begin().
	OrderRepository() OrderRepository

	// MenuItemRepository returns a MenuItemRepository bound to the current
	// transaction started by Begin().
	MenuItemRepository() MenuItemRepository
}
