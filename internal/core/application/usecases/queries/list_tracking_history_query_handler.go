package queries

import (
	"context"
	"errors"

	"ridetrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListTrackingHistoryQueryHandler reads a tracking record's ledger directly
// from the database.
type ListTrackingHistoryQueryHandler struct {
	db *gorm.DB
}

// NewListTrackingHistoryQueryHandler creates a handler for ledger reads.
func NewListTrackingHistoryQueryHandler(db *gorm.DB) ListTrackingHistoryQueryHandler {
	return ListTrackingHistoryQueryHandler{db: db}
}

// Handle verifies the tracking record exists and returns its events ordered
// newest first. A record with no events yields an empty slice, not an error.
func (h ListTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query ListTrackingHistoryQuery,
) ([]HistoryEventView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var record trackingRow
	err := h.db.WithContext(ctx).First(&record, "id = ?", query.TrackingID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking", query.TrackingID().String())
		}
		return nil, err
	}

	var rows []historyRow
	err = h.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&rows, "tracking_id = ?", record.ID).Error
	if err != nil {
		return nil, err
	}

	views := make([]HistoryEventView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.toView())
	}

	return views, nil
}
