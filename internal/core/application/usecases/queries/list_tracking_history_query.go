package queries

import (
	"errors"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/pkg/errs"
	"ridetrack/internal/pkg/guard"
)

var ErrListTrackingHistoryQueryIsNotConstructed = errors.New(
	"ListTrackingHistoryQuery must be created via NewListTrackingHistoryQuery constructor",
)

// ListTrackingHistoryQuery retrieves a tracking record's history ledger,
// newest event first.
type ListTrackingHistoryQuery struct {
	trackingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListTrackingHistoryQuery creates a query for one record's ledger.
func NewListTrackingHistoryQuery(trackingID kernel.UUID) (ListTrackingHistoryQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return ListTrackingHistoryQuery{}, errs.NewValueIsRequiredErrorWithCause("trackingId", err)
	}

	return ListTrackingHistoryQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrListTrackingHistoryQueryIsNotConstructed)
}

// TrackingID returns the identifier of the tracking record.
func (q ListTrackingHistoryQuery) TrackingID() kernel.UUID {
	return q.trackingID
}
