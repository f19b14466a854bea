package queries

import (
	"errors"
	"net/mail"

	"ridetrack/internal/pkg/errs"
	"ridetrack/internal/pkg/guard"
)

var ErrLoginQueryIsNotConstructed = errors.New(
	"LoginQuery must be created via NewLoginQuery constructor",
)

// LoginQuery authenticates a user by email and password.
type LoginQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates an authentication query.
func NewLoginQuery(email, password string) (LoginQuery, error) {
	if email == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return LoginQuery{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	if password == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("password")
	}

	return LoginQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

func (q LoginQuery) Email() string    { return q.email }
func (q LoginQuery) Password() string { return q.password }

// LoginResponse carries the issued token and the authenticated user's
// identity projection.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}
