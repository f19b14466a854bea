package queries

import (
	"errors"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/tracking"
	"ridetrack/internal/pkg/errs"
	"ridetrack/internal/pkg/guard"
)

var ErrGetTrackingQueryIsNotConstructed = errors.New(
	"GetTrackingQuery must be created via one of its constructors",
)

// GetTrackingQuery retrieves one tracking record with its full history
// ledger. It can address the record three ways: by tracking id, by tracking
// number, or by the tracked order's id. Exactly one key is set, depending on
// which constructor was used.
type GetTrackingQuery struct {
	trackingID *kernel.UUID
	number     string
	orderID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTrackingQueryByID creates a query addressing the record by its id.
func NewGetTrackingQueryByID(trackingID kernel.UUID) (GetTrackingQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return GetTrackingQuery{}, errs.NewValueIsRequiredErrorWithCause("trackingId", err)
	}

	return GetTrackingQuery{
		trackingID: &trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewGetTrackingQueryByNumber creates a query addressing the record by its
// tracking number. The number must match the tracking-number format.
func NewGetTrackingQueryByNumber(number string) (GetTrackingQuery, error) {
	n, err := tracking.NumberFromString(number)
	if err != nil {
		return GetTrackingQuery{}, err
	}

	return GetTrackingQuery{
		number: n.String(),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGetTrackingQueryByOrderID creates a query addressing the record by the
// id of the order it tracks.
func NewGetTrackingQueryByOrderID(orderID kernel.UUID) (GetTrackingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetTrackingQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	return GetTrackingQuery{
		orderID: &orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingQueryIsNotConstructed)
}

func (q GetTrackingQuery) TrackingID() *kernel.UUID { return q.trackingID }
func (q GetTrackingQuery) Number() string           { return q.number }
func (q GetTrackingQuery) OrderID() *kernel.UUID    { return q.orderID }
