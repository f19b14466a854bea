package commands

import (
	"errors"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/tracking"
	"ridetrack/internal/pkg/errs"
	"ridetrack/internal/pkg/guard"
)

var ErrAddTrackingHistoryCommandIsNotConstructed = errors.New(
	"AddTrackingHistoryCommand must be created via NewAddTrackingHistoryCommand constructor",
)

// AddTrackingHistoryCommand appends a manual event to a tracking record's
// ledger without changing the record itself. Used by operators to note
// milestones the automatic branches do not cover.
type AddTrackingHistoryCommand struct { //nolint:recvcheck //using for validation
	trackingID  kernel.UUID
	status      tracking.Status
	location    string
	description string

	guard guard.ConstructorGuard
}

// NewAddTrackingHistoryCommand creates a command to append a history event.
// An empty status means the event snapshots the record's current status.
func NewAddTrackingHistoryCommand(
	trackingID kernel.UUID,
	status tracking.Status,
	location string,
	description string,
) (AddTrackingHistoryCommand, error) {
	if err := trackingID.Validate(); err != nil {
		return AddTrackingHistoryCommand{}, errs.NewValueIsRequiredErrorWithCause("trackingId", err)
	}
	if status != "" {
		if err := status.Validate(); err != nil {
			return AddTrackingHistoryCommand{}, err
		}
	}
	if description == "" {
		return AddTrackingHistoryCommand{}, errs.NewValueIsRequiredError("description")
	}

	return AddTrackingHistoryCommand{
		trackingID:  trackingID,
		status:      status,
		location:    location,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddTrackingHistoryCommand) Validate() error {
	return c.guard.Validate(ErrAddTrackingHistoryCommandIsNotConstructed)
}

func (c AddTrackingHistoryCommand) TrackingID() kernel.UUID { return c.trackingID }
func (c AddTrackingHistoryCommand) Status() tracking.Status { return c.status }
func (c AddTrackingHistoryCommand) Location() string { return c.location }
func (c AddTrackingHistoryCommand) Description() string { return c.description }
