package tracking

import (
	"errors"
	"time"

	"ridetrack/internal/core/domain/model/kernel"
)

// ErrHistoryEventIsNotConstructed is returned when a HistoryEvent was not
// created through NewHistoryEvent or RestoreHistoryEvent.
var ErrHistoryEventIsNotConstructed = errors.New("HistoryEvent must be created via NewHistoryEvent or RestoreHistoryEvent")

// HistoryEvent is one immutable entry in a tracking record's history ledger:
// a status snapshot, an optional location, a human-readable description, and
// the write-time timestamp. Events are only ever appended — there is no
// update or delete path — and insertion order is the causal order.
type HistoryEvent struct {
	id          kernel.UUID
	trackingID  kernel.UUID
	status      Status
	location    string
	description string
	timestamp   time.Time

	isConstructed bool
}

// NewHistoryEvent creates a history event stamped with the given time.
// The owning tracking ID and the status snapshot are required.
func NewHistoryEvent(
	id kernel.UUID,
	trackingID kernel.UUID,
	status Status,
	location string,
	description string,
	timestamp time.Time,
) (*HistoryEvent, error) {
	if err := errors.Join(id.Validate(), trackingID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &HistoryEvent{
		id:            id,
		trackingID:    trackingID,
		status:        status,
		location:      location,
		description:   description,
		timestamp:     timestamp,
		isConstructed: true,
	}, nil
}

// RestoreHistoryEvent reconstructs a history event from persistence.
func RestoreHistoryEvent(
	id kernel.UUID,
	trackingID kernel.UUID,
	status Status,
	location string,
	description string,
	timestamp time.Time,
) (*HistoryEvent, error) {
	return NewHistoryEvent(id, trackingID, status, location, description, timestamp)
}

// Validate ensures the event was properly constructed.
func (e *HistoryEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrHistoryEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *HistoryEvent) ID() kernel.UUID {
	return e.id
}

// TrackingID returns the identifier of the owning tracking record.
func (e *HistoryEvent) TrackingID() kernel.UUID {
	return e.trackingID
}

// Status returns the status snapshot recorded by the event.
func (e *HistoryEvent) Status() Status {
	return e.status
}

// Location returns the location recorded by the event, if any.
func (e *HistoryEvent) Location() string {
	return e.location
}

// Description returns the human-readable description of the change.
func (e *HistoryEvent) Description() string {
	return e.description
}

// Timestamp returns the write time of the event.
func (e *HistoryEvent) Timestamp() time.Time {
	return e.timestamp
}
