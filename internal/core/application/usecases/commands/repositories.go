// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ridetrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// TrackingHistoryRepoFactory provides access to the history ledger within a transaction.
	TrackingHistoryRepoFactory interface {
		TrackingHistoryRepository() ports.TrackingHistoryRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TrackingUoW manages transactions for tracking operations. Tracking
	// mutations and their history events commit in the same transaction.
	TrackingUoW interface {
		TxManager
		TrackingRepoFactory
		TrackingHistoryRepoFactory
	}

	// TrackingUoWFactory creates new tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// CreateTrackingUoW manages transactions for tracking creation, which also
	// checks the parent order's existence.
	CreateTrackingUoW interface {
		TxManager
		OrderRepoFactory
		TrackingRepoFactory
		TrackingHistoryRepoFactory
	}

	// CreateTrackingUoWFactory creates unit of work instances for tracking creation.
	CreateTrackingUoWFactory interface {
		Create() CreateTrackingUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)

// maxIdentifierAttempts bounds the regenerate-and-retry loop for generated
// order and tracking numbers. Collisions are rare; the unique constraint in
// the store is the correctness backstop.
const maxIdentifierAttempts = 3
