package commands

import (
	"context"
	"time"

	"ridetrack/internal/core/domain/model/tracking"
)

// UpdateTrackingCommandHandler applies a patch to a tracking record and
// appends the history event the change produced, in the same transaction.
// The aggregate decides whether an event is produced: at most one per update,
// a status change taking precedence over a location change.
type UpdateTrackingCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewUpdateTrackingCommandHandler creates a handler for tracking updates.
func NewUpdateTrackingCommandHandler(uowFactory TrackingUoWFactory) UpdateTrackingCommandHandler {
	return UpdateTrackingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fetches the tracking record, applies the patch, persists it and
// appends the resulting history event if there is one. Returns the updated record.
func (h *UpdateTrackingCommandHandler) Handle(ctx context.Context, cmd UpdateTrackingCommand) (*tracking.Tracking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trackingRepo := uow.TrackingRepository()
	aggregate, err := trackingRepo.Get(ctx, cmd.TrackingID())
	if err != nil {
		return nil, err
	}

	event, err := aggregate.Apply(cmd.Patch(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = trackingRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if event != nil {
		if err = uow.TrackingHistoryRepository().Append(ctx, event); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
