package commands

import (
	"context"
	"time"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/tracking"
)

// AddTrackingHistoryCommandHandler appends a manual event to the ledger.
// The tracking record itself is not modified.
type AddTrackingHistoryCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewAddTrackingHistoryCommandHandler creates a handler for manual history appends.
func NewAddTrackingHistoryCommandHandler(uowFactory TrackingUoWFactory) AddTrackingHistoryCommandHandler {
	return AddTrackingHistoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the tracking record exists and appends the event.
// Returns the appended event.
func (h *AddTrackingHistoryCommandHandler) Handle(ctx context.Context, cmd AddTrackingHistoryCommand) (*tracking.HistoryEvent, error) {
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

	aggregate, err := uow.TrackingRepository().Get(ctx, cmd.TrackingID())
	if err != nil {
		return nil, err
	}

	status := cmd.Status()
	if status == "" {
		status = aggregate.Status()
	}
	location := cmd.Location()
	if location == "" {
		location = aggregate.CurrentLocation()
	}

	event, err := tracking.NewHistoryEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		status,
		location,
		cmd.Description(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.TrackingHistoryRepository().Append(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return event, nil
}
