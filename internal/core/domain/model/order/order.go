package order

import (
	"errors"
	"fmt"
	"time"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents one trip/delivery request. It is the aggregate root that
// owns the order's status and payment-status lifecycle.
//
// Order maintains these invariants:
//   - Order number, rider, pickup and dropoff locations are assigned at
//     creation and validated by the constructor
//   - Distance and duration are positive; fare is a non-negative fixed-point
//     amount
//   - Once the status is completed or cancelled the order is immutable: every
//     mutator returns a state-conflict error
//   - Deletion is permitted only while the status is pending (EnsureDeletable)
//
// Private fields force all mutation through validated methods.
type Order struct {
	id              kernel.UUID
	number          Number
	riderID         kernel.UUID
	driverID        *kernel.UUID
	pickupLocation  string
	dropoffLocation string
	distance        float64
	duration        float64
	fare            decimal.Decimal
	status          Status
	paymentStatus   PaymentStatus
	paymentMethod   string
	notes           string
	scheduledTime   *time.Time
	createdAt       time.Time

	isConstructed bool
}

// NewOrder creates a new Order in status pending with payment status pending.
// All required attributes are validated; a validation failure means nothing
// should be persisted.
func NewOrder(
	id kernel.UUID,
	number Number,
	riderID kernel.UUID,
	pickupLocation string,
	dropoffLocation string,
	distance float64,
	duration float64,
	fare decimal.Decimal,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		paymentStatus: PaymentPending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setRiderID(riderID),
		o.setPickupLocation(pickupLocation),
		o.setDropoffLocation(dropoffLocation),
		o.setDistance(distance),
		o.setDuration(duration),
		o.setFare(fare),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any stored status and optional attributes, but still rejects data
// that violates the aggregate's invariants.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	riderID kernel.UUID,
	driverID *kernel.UUID,
	pickupLocation string,
	dropoffLocation string,
	distance float64,
	duration float64,
	fare decimal.Decimal,
	status Status,
	paymentStatus PaymentStatus,
	paymentMethod string,
	notes string,
	scheduledTime *time.Time,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, number, riderID, pickupLocation, dropoffLocation, distance, duration, fare, createdAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), paymentStatus.Validate()); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
		d := *driverID
		o.driverID = &d
	}

	o.status = status
	o.paymentStatus = paymentStatus
	o.paymentMethod = paymentMethod
	o.notes = notes
	if scheduledTime != nil {
		t := *scheduledTime
		o.scheduledTime = &t
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the order's human-readable order number.
func (o *Order) Number() Number {
	return o.number
}

// RiderID returns the identifier of the rider who requested the trip.
func (o *Order) RiderID() kernel.UUID {
	return o.riderID
}

// DriverID returns the assigned driver's identifier, or nil if unassigned.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// PickupLocation returns the trip's pickup location.
func (o *Order) PickupLocation() string {
	return o.pickupLocation
}

// DropoffLocation returns the trip's dropoff location.
func (o *Order) DropoffLocation() string {
	return o.dropoffLocation
}

// Distance returns the trip distance.
func (o *Order) Distance() float64 {
	return o.distance
}

// Duration returns the estimated trip duration in minutes.
func (o *Order) Duration() float64 {
	return o.duration
}

// Fare returns the trip fare as a fixed-point amount.
func (o *Order) Fare() decimal.Decimal {
	return o.fare
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentMethod returns the payment method, if any.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Notes returns free-form notes attached to the order.
func (o *Order) Notes() string {
	return o.notes
}

// ScheduledTime returns the requested pickup time, or nil for immediate orders.
func (o *Order) ScheduledTime() *time.Time {
	return o.scheduledTime
}

// CreatedAt returns the order's creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Patch carries a partial update for an order. Only the non-nil fields are
// applied; this is the full set of mutable attributes — everything else is
// fixed at creation.
type Patch struct {
	DriverID      *kernel.UUID
	Status        *Status
	PaymentMethod *string
	PaymentStatus *PaymentStatus
	Notes         *string
	ScheduledTime *time.Time
}

// IsEmpty reports whether the patch carries no fields.
func (p Patch) IsEmpty() bool {
	return p.DriverID == nil && p.Status == nil && p.PaymentMethod == nil &&
		p.PaymentStatus == nil && p.Notes == nil && p.ScheduledTime == nil
}

// ApplyPatch applies the present fields of the patch to the order.
// It fails with a state-conflict error when the order is already in a
// terminal status, and with a validation error when a supplied status value
// is outside the vocabulary. On error the order is left unchanged.
func (o *Order) ApplyPatch(p Patch) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}

	if p.DriverID != nil {
		if err := p.DriverID.Validate(); err != nil {
			return err
		}
	}
	if p.Status != nil {
		if err := p.Status.Validate(); err != nil {
			return err
		}
	}
	if p.PaymentStatus != nil {
		if err := p.PaymentStatus.Validate(); err != nil {
			return err
		}
	}

	if p.DriverID != nil {
		d := *p.DriverID
		o.driverID = &d
	}
	if p.Status != nil {
		o.status = *p.Status
	}
	if p.PaymentMethod != nil {
		o.paymentMethod = *p.PaymentMethod
	}
	if p.PaymentStatus != nil {
		o.paymentStatus = *p.PaymentStatus
	}
	if p.Notes != nil {
		o.notes = *p.Notes
	}
	if p.ScheduledTime != nil {
		t := *p.ScheduledTime
		o.scheduledTime = &t
	}

	return nil
}

// ChangeStatus sets a new lifecycle status. Any non-terminal status may move
// to any other status; terminal orders reject the change.
func (o *Order) ChangeStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := o.ensureMutable(); err != nil {
		return err
	}

	o.status = s
	return nil
}

// EnsureDeletable checks that the order may be physically removed.
// Only pending orders can be deleted.
func (o *Order) EnsureDeletable() error {
	if o.status != StatusPending {
		return errs.NewStateConflictError(
			fmt.Sprintf("cannot delete an order with status: %s, only pending orders can be deleted", o.status),
		)
	}
	return nil
}

func (o *Order) ensureMutable() error {
	if o.status.IsTerminal() {
		return errs.NewStateConflictError(fmt.Sprintf("cannot update a %s order", o.status))
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("riderId", err)
	}
	o.riderID = riderID
	return nil
}

func (o *Order) setPickupLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("pickupLocation")
	}
	o.pickupLocation = location
	return nil
}

func (o *Order) setDropoffLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("dropoffLocation")
	}
	o.dropoffLocation = location
	return nil
}

func (o *Order) setDistance(distance float64) error {
	if distance <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance", fmt.Errorf("%v is not greater than 0", distance))
	}
	o.distance = distance
	return nil
}

func (o *Order) setDuration(duration float64) error {
	if duration <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("duration", fmt.Errorf("%v is not greater than 0", duration))
	}
	o.duration = duration
	return nil
}

func (o *Order) setFare(fare decimal.Decimal) error {
	if fare.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("fare", fmt.Errorf("%s is negative", fare))
	}
	o.fare = fare
	return nil
}
