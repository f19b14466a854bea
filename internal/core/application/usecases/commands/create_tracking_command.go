package commands

import (
	"errors"
	"time"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/tracking"
	"ridetrack/internal/pkg/errs"
	"ridetrack/internal/pkg/guard"
)

var ErrCreateTrackingCommandIsNotConstructed = errors.New(
	"CreateTrackingCommand must be created via NewCreateTrackingCommand constructor",
)

// CreateTrackingCommand represents a request to start tracking an order.
// Creation is idempotent: if the order is already tracked the handler returns
// the existing record instead of failing.
type CreateTrackingCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	status           tracking.Status
	currentLocation  string
	estimatedArrival *time.Time
	notes            string

	guard guard.ConstructorGuard
}

// NewCreateTrackingCommand creates a command to start tracking an order.
// An empty status defaults to pending at the aggregate level.
func NewCreateTrackingCommand(
	orderID kernel.UUID,
	status tracking.Status,
	currentLocation string,
	estimatedArrival *time.Time,
	notes string,
) (CreateTrackingCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateTrackingCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if status != "" {
		if err := status.Validate(); err != nil {
			return CreateTrackingCommand{}, err
		}
	}

	return CreateTrackingCommand{
		orderID:          orderID,
		status:           status,
		currentLocation:  currentLocation,
		estimatedArrival: estimatedArrival,
		notes:            notes,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTrackingCommand) Validate() error {
	return c.guard.Validate(ErrCreateTrackingCommandIsNotConstructed)
}

func (c CreateTrackingCommand) OrderID() kernel.UUID { return c.orderID }
func (c CreateTrackingCommand) Status() tracking.Status { return c.status }
func (c CreateTrackingCommand) CurrentLocation() string { return c.currentLocation }
func (c CreateTrackingCommand) EstimatedArrival() *time.Time { return c.estimatedArrival }
func (c CreateTrackingCommand) Notes() string { return c.notes }
