package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListUsersQueryHandler reads user pages directly from the database.
type ListUsersQueryHandler struct {
	db *gorm.DB
}

// NewListUsersQueryHandler creates a handler for user listing.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle counts and fetches one page of users, newest first.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) (ListUsersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListUsersResponse{}, err
	}

	tx := h.db.WithContext(ctx).Model(&userRow{})
	if query.Role() != "" {
		tx = tx.Where("role = ?", query.Role())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return ListUsersResponse{}, err
	}

	var rows []userRow
	offset := (query.Page() - 1) * query.PageSize()
	err := tx.Order("created_at DESC").Limit(query.PageSize()).Offset(offset).Find(&rows).Error
	if err != nil {
		return ListUsersResponse{}, err
	}

	summaries := make([]UserSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, row.toSummary())
	}

	pageSize := int64(query.PageSize())
	totalPages := (total + pageSize - 1) / pageSize

	return ListUsersResponse{
		Users:      summaries,
		Total:      total,
		Page:       query.Page(),
		PageSize:   query.PageSize(),
		TotalPages: totalPages,
	}, nil
}
