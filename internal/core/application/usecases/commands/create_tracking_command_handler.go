package commands

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/tracking"
	"ridetrack/internal/pkg/errs"
)

// CreateTrackingResult is the outcome of a tracking creation request.
// AlreadyExisted distinguishes the idempotent path: the order was tracked
// before this request, and Tracking is the pre-existing record.
type CreateTrackingResult struct {
	Tracking       *tracking.Tracking
	AlreadyExisted bool
}

// CreateTrackingCommandHandler starts tracking an order. The order must
// exist; its tracking record, number generation retry and the initial
// history event all commit in one transaction.
type CreateTrackingCommandHandler struct {
	uowFactory CreateTrackingUoWFactory
	rnd        *rand.Rand
}

// NewCreateTrackingCommandHandler creates a handler for tracking creation.
func NewCreateTrackingCommandHandler(uowFactory CreateTrackingUoWFactory) CreateTrackingCommandHandler {
	return CreateTrackingCommandHandler{
		uowFactory: uowFactory,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Handle processes the tracking creation command.
//
// A duplicate-identifier error from the insert is ambiguous: it is either a
// tracking-number collision (regenerate and retry) or a concurrent request
// that tracked the same order first (return the winner). The handler
// re-checks the order's tracking record to tell the two apart.
func (h *CreateTrackingCommandHandler) Handle(ctx context.Context, cmd CreateTrackingCommand) (CreateTrackingResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateTrackingResult{}, err
	}

	var lastErr error
	for attempt := 0; attempt < maxIdentifierAttempts; attempt++ {
		result, err := h.tryCreate(ctx, cmd)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, errs.ErrDuplicateIdentifier) {
			return CreateTrackingResult{}, err
		}
		lastErr = err

		if existing, found := h.findExisting(ctx, cmd.OrderID()); found {
			return CreateTrackingResult{Tracking: existing, AlreadyExisted: true}, nil
		}
	}

	return CreateTrackingResult{}, lastErr
}

func (h *CreateTrackingCommandHandler) tryCreate(ctx context.Context, cmd CreateTrackingCommand) (CreateTrackingResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateTrackingResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return CreateTrackingResult{}, err
	}

	trackingRepo := uow.TrackingRepository()
	existing, err := trackingRepo.GetByOrderID(ctx, cmd.OrderID())
	if err == nil {
		return CreateTrackingResult{Tracking: existing, AlreadyExisted: true}, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return CreateTrackingResult{}, err
	}

	now := time.Now().UTC()
	aggregate, err := tracking.NewTracking(
		kernel.NewUUID(),
		tracking.GenerateNumber(now, h.rnd),
		cmd.OrderID(),
		cmd.Status(),
		cmd.CurrentLocation(),
		cmd.EstimatedArrival(),
		cmd.Notes(),
		now,
	)
	if err != nil {
		return CreateTrackingResult{}, err
	}

	if err = trackingRepo.Add(ctx, aggregate); err != nil {
		return CreateTrackingResult{}, err
	}

	initial, err := aggregate.InitialHistoryEvent(now)
	if err != nil {
		return CreateTrackingResult{}, err
	}
	if err = uow.TrackingHistoryRepository().Append(ctx, initial); err != nil {
		return CreateTrackingResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateTrackingResult{}, err
	}

	return CreateTrackingResult{Tracking: aggregate}, nil
}

func (h *CreateTrackingCommandHandler) findExisting(ctx context.Context, orderID kernel.UUID) (*tracking.Tracking, bool) {
	uow := h.uowFactory.Create()
	existing, err := uow.TrackingRepository().GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, false
	}
	return existing, true
}
