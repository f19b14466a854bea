package tracking

import (
	"errors"
	"fmt"
	"time"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/pkg/errs"
)

// ErrTrackingIsNotConstructed is returned when a Tracking instance was not
// created through NewTracking or RestoreTracking.
var ErrTrackingIsNotConstructed = errors.New("Tracking must be created via NewTracking or RestoreTracking")

// Tracking is the live-state companion of an Order (one-to-one). It owns the
// tracking status lifecycle and produces the history events that record it.
//
// Tracking maintains these invariants:
//   - Bound to exactly one order, fixed at creation
//   - Once the status is completed or cancelled, no further status, location,
//     or notes updates are permitted
//   - Every mutation that changes status or location yields exactly one
//     history event; any other mutation yields none (see Apply)
type Tracking struct {
	id               kernel.UUID
	number           Number
	orderID          kernel.UUID
	status           Status
	currentLocation  string
	estimatedArrival *time.Time
	notes            string
	createdAt        time.Time

	isConstructed bool
}

// NewTracking creates a tracking record for an order. The initial status
// defaults to pending when empty; a supplied status must be in vocabulary.
func NewTracking(
	id kernel.UUID,
	number Number,
	orderID kernel.UUID,
	status Status,
	currentLocation string,
	estimatedArrival *time.Time,
	notes string,
	createdAt time.Time,
) (*Tracking, error) {
	if status == "" {
		status = StatusPending
	}

	if err := errors.Join(
		id.Validate(),
		number.Validate(),
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	t := &Tracking{
		id:              id,
		number:          number,
		orderID:         orderID,
		status:          status,
		currentLocation: currentLocation,
		notes:           notes,
		createdAt:       createdAt,
		isConstructed:   true,
	}
	if estimatedArrival != nil {
		eta := *estimatedArrival
		t.estimatedArrival = &eta
	}

	return t, nil
}

// RestoreTracking reconstructs a Tracking from persistence.
func RestoreTracking(
	id kernel.UUID,
	number Number,
	orderID kernel.UUID,
	status Status,
	currentLocation string,
	estimatedArrival *time.Time,
	notes string,
	createdAt time.Time,
) (*Tracking, error) {
	return NewTracking(id, number, orderID, status, currentLocation, estimatedArrival, notes, createdAt)
}

// Validate ensures the Tracking instance was properly constructed.
func (t *Tracking) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTrackingIsNotConstructed
	}
	return nil
}

// IsEqual compares two tracking records by their unique identifiers.
func (t *Tracking) IsEqual(other *Tracking) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the tracking record's unique identifier.
func (t *Tracking) ID() kernel.UUID {
	return t.id
}

// Number returns the human-readable tracking number.
func (t *Tracking) Number() Number {
	return t.number
}

// OrderID returns the identifier of the tracked order.
func (t *Tracking) OrderID() kernel.UUID {
	return t.orderID
}

// Status returns the current tracking status.
func (t *Tracking) Status() Status {
	return t.status
}

// CurrentLocation returns the last reported location, if any.
func (t *Tracking) CurrentLocation() string {
	return t.currentLocation
}

// EstimatedArrival returns the estimated arrival time, or nil if unknown.
func (t *Tracking) EstimatedArrival() *time.Time {
	return t.estimatedArrival
}

// Notes returns free-form notes attached to the tracking record.
func (t *Tracking) Notes() string {
	return t.notes
}

// CreatedAt returns the tracking record's creation time.
func (t *Tracking) CreatedAt() time.Time {
	return t.createdAt
}

// InitialHistoryEvent produces the single event recorded when tracking is
// first created for an order.
func (t *Tracking) InitialHistoryEvent(now time.Time) (*HistoryEvent, error) {
	return NewHistoryEvent(
		kernel.NewUUID(),
		t.id,
		t.status,
		t.currentLocation,
		fmt.Sprintf("Order tracking initialized with status: %s", t.status),
		now,
	)
}

// Patch carries a partial update for a tracking record. Only the non-nil
// fields are applied; this is the full set of mutable attributes.
type Patch struct {
	Status           *Status
	CurrentLocation  *string
	EstimatedArrival *time.Time
	Notes            *string
}

// IsEmpty reports whether the patch carries no fields.
func (p Patch) IsEmpty() bool {
	return p.Status == nil && p.CurrentLocation == nil && p.EstimatedArrival == nil && p.Notes == nil
}

// Apply applies the patch and returns the history event the change produced,
// or nil when the change is not history-worthy. Per update call at most one
// event is ever produced:
//
//   - status supplied: one "status updated" event, stamped with the new
//     location when one was supplied in the same patch, the prior location
//     otherwise (the status branch wins even when both fields change);
//   - no status, but the location changed: one "location updated" event with
//     the unchanged status;
//   - anything else (notes/ETA only, or a location equal to the prior one):
//     no event.
//
// Apply fails with a state-conflict error when the tracking is already in a
// terminal status, and with a validation error for an unknown status value.
// On error the tracking record is left unchanged and no event is produced.
func (t *Tracking) Apply(p Patch, now time.Time) (*HistoryEvent, error) {
	if t.status.IsTerminal() {
		return nil, errs.NewStateConflictError(fmt.Sprintf("cannot update tracking with status: %s", t.status))
	}
	if p.Status != nil {
		if err := p.Status.Validate(); err != nil {
			return nil, err
		}
	}

	priorLocation := t.currentLocation

	if p.CurrentLocation != nil {
		t.currentLocation = *p.CurrentLocation
	}
	if p.EstimatedArrival != nil {
		eta := *p.EstimatedArrival
		t.estimatedArrival = &eta
	}
	if p.Notes != nil {
		t.notes = *p.Notes
	}

	if p.Status != nil {
		t.status = *p.Status
		return NewHistoryEvent(
			kernel.NewUUID(),
			t.id,
			t.status,
			t.currentLocation,
			fmt.Sprintf("Status updated to: %s", t.status),
			now,
		)
	}

	if p.CurrentLocation != nil && *p.CurrentLocation != priorLocation {
		return NewHistoryEvent(
			kernel.NewUUID(),
			t.id,
			t.status,
			t.currentLocation,
			fmt.Sprintf("Location updated to: %s", t.currentLocation),
			now,
		)
	}

	return nil, nil
}
