package commands

import (
	"errors"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/tracking"
	"ridetrack/internal/pkg/errs"
	"ridetrack/internal/pkg/guard"
)

var ErrUpdateTrackingCommandIsNotConstructed = errors.New(
	"UpdateTrackingCommand must be created via NewUpdateTrackingCommand constructor",
)

// UpdateTrackingCommand represents a partial update to a tracking record.
type UpdateTrackingCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.UUID
	patch      tracking.Patch

	guard guard.ConstructorGuard
}

// NewUpdateTrackingCommand creates a command to patch a tracking record.
// An empty patch is rejected.
func NewUpdateTrackingCommand(trackingID kernel.UUID, patch tracking.Patch) (UpdateTrackingCommand, error) {
	if err := trackingID.Validate(); err != nil {
		return UpdateTrackingCommand{}, errs.NewValueIsRequiredErrorWithCause("trackingId", err)
	}
	if patch.IsEmpty() {
		return UpdateTrackingCommand{}, errs.NewValueIsRequiredError("patch")
	}

	return UpdateTrackingCommand{
		trackingID: trackingID,
		patch:      patch,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTrackingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTrackingCommandIsNotConstructed)
}

// TrackingID returns the identifier of the tracking record to update.
func (c UpdateTrackingCommand) TrackingID() kernel.UUID {
	return c.trackingID
}

// Patch returns the typed set of changes to apply.
func (c UpdateTrackingCommand) Patch() tracking.Patch {
	return c.patch
}
