package order

import (
	"fmt"

	"ridetrack/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The vocabulary is fixed for API compatibility:
//
//	pending -> searching -> accepted -> in_progress -> completed
//	                                                -> cancelled
//
// Beyond the terminal lock (completed and cancelled accept no further
// transitions), any non-terminal status may be set to any other status. The
// dispatch flow is expected to move forward through the states above, but the
// lifecycle manager deliberately does not enforce a forward-only graph.
type Status string

const (
	// StatusPending is the initial status of every order.
	StatusPending Status = "pending"

	// StatusSearching indicates the order is waiting for a driver match.
	StatusSearching Status = "searching"

	// StatusAccepted indicates a driver accepted the order.
	StatusAccepted Status = "accepted"

	// StatusInProgress indicates the trip is underway.
	StatusInProgress Status = "in_progress"

	// StatusCompleted is a terminal status: the trip finished successfully.
	StatusCompleted Status = "completed"

	// StatusCancelled is a terminal status: the order was called off.
	StatusCancelled Status = "cancelled"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:    {},
		StatusSearching:  {},
		StatusAccepted:   {},
		StatusInProgress: {},
		StatusCompleted:  {},
		StatusCancelled:  {},
	}
}

// Validate checks that the status is one of the known vocabulary values.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// IsTerminal reports whether the status permits no further mutation.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
