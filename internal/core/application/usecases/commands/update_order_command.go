package commands

import (
	"errors"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/order"
	"ridetrack/internal/pkg/errs"
	"ridetrack/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update to an existing order.
// The patch is typed: only the listed mutable attributes can change.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	patch   order.Patch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to patch an order.
// An empty patch is rejected: the request would be a no-op.
func NewUpdateOrderCommand(orderID kernel.UUID, patch order.Patch) (UpdateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if patch.IsEmpty() {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("patch")
	}

	return UpdateOrderCommand{
		orderID: orderID,
		patch:   patch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Patch returns the typed set of changes to apply.
func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}
