package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/grandstay/hotel-api/internal/api/handler"
)

// SubjectResolver maps a bearer token to the subject it was issued for.
type SubjectResolver interface {
	CurrentSubject(ctx context.Context, token string) (string, error)
}

// Auth validates the bearer token and injects the subject into context.
func Auth(resolver SubjectResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subject, err := resolver.CurrentSubject(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials").SetInternal(err)
			}

			c.Set(handler.SubjectKey, subject)
			return next(c)
		}
	}
}
