package commands

import (
	"context"
	"time"

	"ridetrack/internal/core/domain/model/order"
)

// ActivateScheduledOrdersCommandHandler moves due scheduled orders from
// pending to searching in one transaction.
type ActivateScheduledOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewActivateScheduledOrdersCommandHandler creates a handler for scheduled-order activation.
func NewActivateScheduledOrdersCommandHandler(uowFactory OrderUoWFactory) ActivateScheduledOrdersCommandHandler {
	return ActivateScheduledOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle promotes every due order and returns how many were activated.
func (h *ActivateScheduledOrdersCommandHandler) Handle(ctx context.Context, cmd ActivateScheduledOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	dueOrders, err := orderRepo.GetAllDueScheduled(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	for _, aggregate := range dueOrders {
		if err = aggregate.ChangeStatus(order.StatusSearching); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(dueOrders), nil
}
