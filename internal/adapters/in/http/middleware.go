package http

import (
	"net/http"
	"strings"

	"ridetrack/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// claimsContextKey is the echo context key the middleware stores verified
// token claims under.
const claimsContextKey = "authClaims"

// BearerAuth returns middleware that requires a valid "Bearer <token>"
// Authorization header and stores the verified claims on the request context.
func BearerAuth(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return ctx.JSON(http.StatusUnauthorized, envelope{
					Error:   true,
					Message: "missing bearer token",
				})
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, envelope{
					Error:   true,
					Message: "invalid or expired token",
				})
			}

			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

// ClaimsFromContext returns the verified claims stored by BearerAuth, or nil
// when the route is unauthenticated.
func ClaimsFromContext(ctx echo.Context) *auth.Claims {
	claims, _ := ctx.Get(claimsContextKey).(*auth.Claims)
	return claims
}
