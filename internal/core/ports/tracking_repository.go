package ports

import (
	"context"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for tracking aggregates.
// Each order has at most one tracking record.
type TrackingRepository interface {
	// Add persists a new tracking aggregate. A collision on the generated
	// tracking number surfaces as a duplicate-identifier error.
	Add(ctx context.Context, aggregate *tracking.Tracking) error

	// Update persists changes to an existing tracking aggregate.
	Update(ctx context.Context, aggregate *tracking.Tracking) error

	// Get retrieves a tracking aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*tracking.Tracking, error)

	// GetByOrderID retrieves the tracking record that belongs to an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*tracking.Tracking, error)

	// GetByNumber retrieves a tracking record by its public tracking number.
	GetByNumber(ctx context.Context, number tracking.Number) (*tracking.Tracking, error)
}

// TrackingHistoryRepository is the append-only ledger of tracking events.
// Events are never updated or deleted.
type TrackingHistoryRepository interface {
	// Append stores a new history event.
	Append(ctx context.Context, event *tracking.HistoryEvent) error

	// ListFor returns all events for a tracking record, newest first.
	ListFor(ctx context.Context, trackingID kernel.UUID) ([]*tracking.HistoryEvent, error)
}
