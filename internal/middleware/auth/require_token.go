package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mkuznecov/shopify_ecom/internal/logging"
	"github.com/mkuznecov/shopify_ecom/internal/tokens"
)

const EmailContextKey = "email"

type TokenMiddleware struct {
	Tokens *tokens.Service
}

func NewTokenMiddleware(t *tokens.Service) *TokenMiddleware {
	return &TokenMiddleware{Tokens: t}
}

// RequireToken reads the token from the Authorization header (raw or with a
// Bearer prefix), verifies it and puts the embedded email claim on the
// context. Every token failure is a plain 401; the reason only goes to the log.
func (m *TokenMiddleware) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		l := logging.FromContext(c.Request().Context()).With("mw", "require_token")

		raw := c.Request().Header.Get(echo.HeaderAuthorization)
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer"))
		if raw == "" {
			l.Warn("auth_failed", "status", 401, "reason", "token missing")
			return echo.NewHTTPError(http.StatusUnauthorized, "token missing")
		}

		email, err := m.Tokens.Verify(raw)
		if err != nil {
			l.Warn("auth_failed", "status", 401, "reason", err.Error())
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set(EmailContextKey, email)
		return next(c)
	}
}

func CallerEmail(c echo.Context) string {
	if v, ok := c.Get(EmailContextKey).(string); ok {
		return v
	}
	return ""
}
