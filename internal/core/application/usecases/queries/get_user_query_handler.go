package queries

import (
	"context"
	"errors"

	"ridetrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserQueryHandler reads one user projection directly from the database.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for single-user reads.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle fetches the user's identity projection. The credential never leaves
// the row type.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserSummary, error) {
	if err := query.Validate(); err != nil {
		return UserSummary{}, err
	}

	var row userRow
	err := h.db.WithContext(ctx).First(&row, "id = ?", query.UserID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserSummary{}, errs.NewObjectNotFoundError("user", query.UserID().String())
		}
		return UserSummary{}, err
	}

	return row.toSummary(), nil
}
