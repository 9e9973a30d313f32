package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SubjectKey is the echo context key under which the auth middleware stores
// the authenticated subject.
const SubjectKey = "subject"

// ctxSubject returns the subject injected by the auth middleware.
func ctxSubject(c echo.Context) (string, error) {
	subject, _ := c.Get(SubjectKey).(string)
	if subject == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return subject, nil
}

const idempotencyHeader = "Idempotency-Key"
