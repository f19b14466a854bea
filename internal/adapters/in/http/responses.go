package http

import (
	"errors"
	"net/http"

	"ridetrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform response shape for every endpoint.
type envelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(ctx echo.Context, code int, message string, data any) error {
	return ctx.JSON(code, envelope{Error: false, Message: message, Data: data})
}

// respondError maps the errs taxonomy onto HTTP statuses and renders the
// error envelope. Unclassified errors become an opaque 500 so internals do
// not leak to callers.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrStateConflict):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrDuplicateIdentifier):
		// A duplicate email is a caller problem; an exhausted generated-number
		// retry is ours.
		var dup *errs.DuplicateIdentifierError
		if errors.As(err, &dup) && dup.ParamName == "email" {
			code = http.StatusConflict
			message = err.Error()
		}
	}

	return ctx.JSON(code, envelope{Error: true, Message: message})
}
