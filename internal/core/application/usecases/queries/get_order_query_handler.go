package queries

import (
	"context"
	"errors"

	"ridetrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its related projections
// directly from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle fetches the order, resolves its rider and driver identity
// projections and attaches the tracking summary when the order is tracked.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	var row orderRow
	if err := h.db.WithContext(ctx).First(&row, "id = ?", query.OrderID().Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderView{}, err
	}

	view := row.toView()

	userIDs := []uuid.UUID{row.RiderID}
	if row.DriverID != nil {
		userIDs = append(userIDs, *row.DriverID)
	}
	users, err := loadUserSummaries(ctx, h.db, userIDs)
	if err != nil {
		return OrderView{}, err
	}
	if rider, ok := users[row.RiderID]; ok {
		view.Rider = &rider
	}
	if row.DriverID != nil {
		if driver, ok := users[*row.DriverID]; ok {
			view.Driver = &driver
		}
	}

	var trackings []trackingRow
	if err = h.db.WithContext(ctx).Limit(1).Find(&trackings, "order_id = ?", row.ID).Error; err != nil {
		return OrderView{}, err
	}
	if len(trackings) > 0 {
		view.Tracking = &TrackingSummary{
			ID:             trackings[0].ID.String(),
			TrackingNumber: trackings[0].Number,
			Status:         trackings[0].Status,
		}
	}

	return view, nil
}

// loadUserSummaries fetches identity projections for a set of user ids.
// Missing ids are simply absent from the result.
func loadUserSummaries(ctx context.Context, db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]UserSummary, error) {
	summaries := make(map[uuid.UUID]UserSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	var rows []userRow
	if err := db.WithContext(ctx).Find(&rows, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		summaries[row.ID] = row.toSummary()
	}

	return summaries, nil
}
