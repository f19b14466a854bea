// Package ports defines repository interfaces for the ride-order domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// A collision on the generated order number surfaces as a
	// duplicate-identifier error; callers may regenerate and retry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order from storage. The caller is responsible for
	// checking the aggregate's deletability rule first.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllDueScheduled retrieves pending orders whose scheduled time is
	// at or before the given instant. Used by the scheduled-order
	// activation job.
	GetAllDueScheduled(ctx context.Context, now time.Time) ([]*order.Order, error)
}
