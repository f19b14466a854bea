// Package trackingrepo provides persistence for tracking aggregates and their
// append-only history ledger.
package trackingrepo

import (
	"time"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackingDTO represents the database structure for persisting tracking
// aggregates. OrderID carries a unique index: each order has at most one
// tracking record, which is what makes creation idempotent. The tracking
// number's unique index backstops the probabilistic number generator.
type TrackingDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number           string    `gorm:"uniqueIndex;size:16"`
	OrderID          uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Status           string    `gorm:"index;size:32"`
	CurrentLocation  string
	EstimatedArrival *time.Time
	Notes            string
	CreatedAt        time.Time
}

// TableName overrides GORM's default naming convention.
func (TrackingDTO) TableName() string {
	return "trackings"
}

// HistoryEventDTO represents one row of the append-only tracking history
// ledger. Rows are inserted, never updated or deleted.
type HistoryEventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID  uuid.UUID `gorm:"type:uuid;index"`
	Status      string    `gorm:"size:32"`
	Location    string
	Description string
	Timestamp   time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (HistoryEventDTO) TableName() string {
	return "tracking_history"
}

func fromDomain(aggregate *tracking.Tracking) TrackingDTO {
	return TrackingDTO{
		ID:               aggregate.ID().Bytes(),
		Number:           aggregate.Number().String(),
		OrderID:          aggregate.OrderID().Bytes(),
		Status:           aggregate.Status().String(),
		CurrentLocation:  aggregate.CurrentLocation(),
		EstimatedArrival: aggregate.EstimatedArrival(),
		Notes:            aggregate.Notes(),
		CreatedAt:        aggregate.CreatedAt(),
	}
}

func toDomain(dto TrackingDTO) (*tracking.Tracking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	number, err := tracking.NumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	return tracking.RestoreTracking(
		id,
		number,
		orderID,
		tracking.Status(dto.Status),
		dto.CurrentLocation,
		dto.EstimatedArrival,
		dto.Notes,
		dto.CreatedAt,
	)
}

func eventFromDomain(event *tracking.HistoryEvent) HistoryEventDTO {
	return HistoryEventDTO{
		ID:          event.ID().Bytes(),
		TrackingID:  event.TrackingID().Bytes(),
		Status:      event.Status().String(),
		Location:    event.Location(),
		Description: event.Description(),
		Timestamp:   event.Timestamp(),
	}
}

func eventToDomain(dto HistoryEventDTO) (*tracking.HistoryEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingID, err := kernel.UUIDFromBytes(dto.TrackingID[:])
	if err != nil {
		return nil, err
	}

	return tracking.RestoreHistoryEvent(
		id,
		trackingID,
		tracking.Status(dto.Status),
		dto.Location,
		dto.Description,
		dto.Timestamp,
	)
}
