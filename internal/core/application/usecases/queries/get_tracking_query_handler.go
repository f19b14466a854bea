package queries

import (
	"context"
	"errors"

	"ridetrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrackingQueryHandler reads one tracking record with its history ledger
// directly from the database.
type GetTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingQueryHandler creates a handler for single-tracking reads.
func NewGetTrackingQueryHandler(db *gorm.DB) GetTrackingQueryHandler {
	return GetTrackingQueryHandler{db: db}
}

// Handle fetches the tracking record by whichever key the query carries,
// loads its history newest first, and attaches the tracked order with its
// rider and driver projections.
func (h GetTrackingQueryHandler) Handle(ctx context.Context, query GetTrackingQuery) (TrackingView, error) {
	if err := query.Validate(); err != nil {
		return TrackingView{}, err
	}

	row, err := h.findRow(ctx, query)
	if err != nil {
		return TrackingView{}, err
	}

	view := row.toView()

	var events []historyRow
	err = h.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&events, "tracking_id = ?", row.ID).Error
	if err != nil {
		return TrackingView{}, err
	}
	for _, event := range events {
		view.History = append(view.History, event.toView())
	}

	orderView, err := h.loadOrder(ctx, row.OrderID)
	if err != nil {
		return TrackingView{}, err
	}
	view.Order = orderView

	return view, nil
}

func (h GetTrackingQueryHandler) findRow(ctx context.Context, query GetTrackingQuery) (trackingRow, error) {
	var (
		row       trackingRow
		tx        = h.db.WithContext(ctx)
		err       error
		keyName   string
		keyString string
	)

	switch {
	case query.TrackingID() != nil:
		keyName, keyString = "tracking", query.TrackingID().String()
		err = tx.First(&row, "id = ?", query.TrackingID().Bytes()).Error
	case query.Number() != "":
		keyName, keyString = "trackingNumber", query.Number()
		err = tx.First(&row, "number = ?", query.Number()).Error
	default:
		keyName, keyString = "orderId", query.OrderID().String()
		err = tx.First(&row, "order_id = ?", query.OrderID().Bytes()).Error
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return trackingRow{}, errs.NewObjectNotFoundError(keyName, keyString)
		}
		return trackingRow{}, err
	}

	return row, nil
}

func (h GetTrackingQueryHandler) loadOrder(ctx context.Context, orderID uuid.UUID) (*OrderView, error) {
	var orders []orderRow
	if err := h.db.WithContext(ctx).Limit(1).Find(&orders, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}

	view := orders[0].toView()

	userIDs := []uuid.UUID{orders[0].RiderID}
	if orders[0].DriverID != nil {
		userIDs = append(userIDs, *orders[0].DriverID)
	}
	users, err := loadUserSummaries(ctx, h.db, userIDs)
	if err != nil {
		return nil, err
	}
	if rider, ok := users[orders[0].RiderID]; ok {
		view.Rider = &rider
	}
	if orders[0].DriverID != nil {
		if driver, ok := users[*orders[0].DriverID]; ok {
			view.Driver = &driver
		}
	}

	return &view, nil
}
