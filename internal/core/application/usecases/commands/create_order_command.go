package commands

import (
	"errors"
	"time"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/pkg/errs"
	"ridetrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new ride order.
// The order number is not part of the command: it is generated by the
// handler, which retries on the rare collision.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(riderID, "Central Station", "Airport",
//	    12.5, 24, decimal.NewFromFloat(18.40), "card", "", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	riderID         kernel.UUID
	pickupLocation  string
	dropoffLocation string
	distance        float64
	duration        float64
	fare            decimal.Decimal
	paymentMethod   string
	notes           string
	scheduledTime   *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new ride order.
// Validates rider, locations, distance, duration and fare.
func NewCreateOrderCommand(
	riderID kernel.UUID,
	pickupLocation string,
	dropoffLocation string,
	distance float64,
	duration float64,
	fare decimal.Decimal,
	paymentMethod string,
	notes string,
	scheduledTime *time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		paymentMethod: paymentMethod,
		notes:         notes,
		scheduledTime: scheduledTime,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setPickupLocation(pickupLocation),
		cmd.setDropoffLocation(dropoffLocation),
		cmd.setDistance(distance),
		cmd.setDuration(duration),
		cmd.setFare(fare),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) RiderID() kernel.UUID { return c.riderID }
func (c CreateOrderCommand) PickupLocation() string { return c.pickupLocation }
func (c CreateOrderCommand) DropoffLocation() string { return c.dropoffLocation }
func (c CreateOrderCommand) Distance() float64 { return c.distance }
func (c CreateOrderCommand) Duration() float64 { return c.duration }
func (c CreateOrderCommand) Fare() decimal.Decimal { return c.fare }
func (c CreateOrderCommand) PaymentMethod() string { return c.paymentMethod }
func (c CreateOrderCommand) Notes() string { return c.notes }
func (c CreateOrderCommand) ScheduledTime() *time.Time { return c.scheduledTime }

func (c *CreateOrderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("riderId", err)
	}
	c.riderID = riderID
	return nil
}

func (c *CreateOrderCommand) setPickupLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("pickupLocation")
	}
	c.pickupLocation = location
	return nil
}

func (c *CreateOrderCommand) setDropoffLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("dropoffLocation")
	}
	c.dropoffLocation = location
	return nil
}

func (c *CreateOrderCommand) setDistance(distance float64) error {
	if distance <= 0 {
		return errs.NewValueIsInvalidError("distance")
	}
	c.distance = distance
	return nil
}

func (c *CreateOrderCommand) setDuration(duration float64) error {
	if duration <= 0 {
		return errs.NewValueIsInvalidError("duration")
	}
	c.duration = duration
	return nil
}

func (c *CreateOrderCommand) setFare(fare decimal.Decimal) error {
	if fare.IsNegative() {
		return errs.NewValueIsInvalidError("fare")
	}
	c.fare = fare
	return nil
}
