package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads filtered order pages directly from the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle counts and fetches one page of matching orders, newest first, and
// resolves rider/driver identity projections for the page in one extra query.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersResponse{}, err
	}

	tx := h.applyFilter(h.db.WithContext(ctx).Model(&orderRow{}), query.Filter())

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return ListOrdersResponse{}, err
	}

	var rows []orderRow
	offset := (query.Page() - 1) * query.PageSize()
	err := tx.Order("created_at DESC").Limit(query.PageSize()).Offset(offset).Find(&rows).Error
	if err != nil {
		return ListOrdersResponse{}, err
	}

	userIDs := make([]uuid.UUID, 0, len(rows)*2)
	for _, row := range rows {
		userIDs = append(userIDs, row.RiderID)
		if row.DriverID != nil {
			userIDs = append(userIDs, *row.DriverID)
		}
	}
	users, err := loadUserSummaries(ctx, h.db, userIDs)
	if err != nil {
		return ListOrdersResponse{}, err
	}

	views := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		view := row.toView()
		if rider, ok := users[row.RiderID]; ok {
			view.Rider = &rider
		}
		if row.DriverID != nil {
			if driver, ok := users[*row.DriverID]; ok {
				view.Driver = &driver
			}
		}
		views = append(views, view)
	}

	pageSize := int64(query.PageSize())
	totalPages := (total + pageSize - 1) / pageSize

	return ListOrdersResponse{
		Orders:     views,
		Total:      total,
		Page:       query.Page(),
		PageSize:   query.PageSize(),
		TotalPages: totalPages,
	}, nil
}

func (h ListOrdersQueryHandler) applyFilter(tx *gorm.DB, filter OrderFilter) *gorm.DB {
	if filter.RiderID != nil {
		tx = tx.Where("rider_id = ?", filter.RiderID.Bytes())
	}
	if filter.DriverID != nil {
		tx = tx.Where("driver_id = ?", filter.DriverID.Bytes())
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		tx = tx.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.OrderNumber != "" {
		tx = tx.Where("number ILIKE ?", "%"+filter.OrderNumber+"%")
	}
	if filter.DateFrom != nil {
		tx = tx.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		// Inclusive: the range runs to the end of the named day.
		endOfDay := time.Date(
			filter.DateTo.Year(), filter.DateTo.Month(), filter.DateTo.Day(),
			23, 59, 59, int(time.Second-time.Nanosecond), filter.DateTo.Location(),
		)
		tx = tx.Where("created_at <= ?", endOfDay)
	}
	return tx
}
