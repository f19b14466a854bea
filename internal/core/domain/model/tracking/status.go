package tracking

import (
	"fmt"

	"ridetrack/internal/pkg/errs"
)

// Status represents the physical-progress state of a tracking record.
// completed and cancelled are terminal: once reached, the tracking record
// accepts no further status, location, or notes updates.
type Status string

const (
	// StatusPending is the initial status of every tracking record.
	StatusPending Status = "pending"

	// StatusInTransit indicates the trip/delivery is moving.
	StatusInTransit Status = "in_transit"

	// StatusOutForDelivery indicates final approach to the dropoff.
	StatusOutForDelivery Status = "out_for_delivery"

	// StatusCompleted is a terminal status: the delivery finished.
	StatusCompleted Status = "completed"

	// StatusCancelled is a terminal status: the tracking was called off.
	StatusCancelled Status = "cancelled"
)

// Validate checks that the status is one of the known vocabulary values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusInTransit, StatusOutForDelivery, StatusCompleted, StatusCancelled:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid tracking status", string(s)))
}

// IsTerminal reports whether the status permits no further mutation.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
