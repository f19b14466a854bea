package commands

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/order"
	"ridetrack/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Generates the order number and retries on the rare unique-key collision;
// the store's unique constraint is the correctness backstop.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	rnd        *rand.Rand
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Handle processes the order creation command and returns the created order.
// Each attempt runs in its own transaction so a failed insert leaves nothing behind.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < maxIdentifierAttempts; attempt++ {
		created, err := h.tryCreate(ctx, cmd)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, errs.ErrDuplicateIdentifier) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (h *CreateOrderCommandHandler) tryCreate(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	now := time.Now().UTC()

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		order.GenerateNumber(now, h.rnd),
		cmd.RiderID(),
		cmd.PickupLocation(),
		cmd.DropoffLocation(),
		cmd.Distance(),
		cmd.Duration(),
		cmd.Fare(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if cmd.PaymentMethod() != "" || cmd.Notes() != "" || cmd.ScheduledTime() != nil {
		patch := order.Patch{ScheduledTime: cmd.ScheduledTime()}
		if m := cmd.PaymentMethod(); m != "" {
			patch.PaymentMethod = &m
		}
		if n := cmd.Notes(); n != "" {
			patch.Notes = &n
		}
		if err = aggregate.ApplyPatch(patch); err != nil {
			return nil, err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
