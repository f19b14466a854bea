package queries

import (
	"context"
	"errors"
	"time"

	"ridetrack/internal/pkg/auth"
	"ridetrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// LoginQueryHandler authenticates credentials against the user store and
// issues a signed token.
type LoginQueryHandler struct {
	db     *gorm.DB
	tokens *auth.TokenService
}

// NewLoginQueryHandler creates an authentication handler.
func NewLoginQueryHandler(db *gorm.DB, tokens *auth.TokenService) LoginQueryHandler {
	return LoginQueryHandler{db: db, tokens: tokens}
}

// Handle verifies the password against the stored hash and returns a token
// with the user's projection. Unknown email, wrong password and deactivated
// accounts all surface as the same invalid-credentials error so the response
// does not reveal which accounts exist.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginResponse{}, err
	}

	var row userRow
	err := h.db.WithContext(ctx).First(&row, "email = ?", query.Email()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, errs.NewValueIsInvalidError("credentials")
		}
		return LoginResponse{}, err
	}

	if !row.IsActive {
		return LoginResponse{}, errs.NewValueIsInvalidError("credentials")
	}
	if !auth.CheckPassword(row.PasswordHash, query.Password()) {
		return LoginResponse{}, errs.NewValueIsInvalidError("credentials")
	}

	token, err := h.tokens.Issue(row.ID.String(), row.Email, row.Role, time.Now().UTC())
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		Token: token,
		User:  row.toSummary(),
	}, nil
}
