// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: validation, transaction
// management, and persistence through a unit of work.
package commands

import (
	"context"

	"canteen/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler declares the narrowest unit of work it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// StudentRepoFactory provides access to the student repository within a transaction.
	StudentRepoFactory interface {
		StudentRepository() ports.StudentRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuItemRepoFactory provides access to the menu item repository within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the status transition command.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlacementUoW manages transactions spanning student resolution, menu
	// validation, and order insertion. Used by the place order command.
	PlacementUoW interface {
		TxManager
		StudentRepoFactory
		OrderRepoFactory
		MenuItemRepoFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}
)
