package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mercadito/catalog-api/internal/api/metrics"
	"github.com/mercadito/catalog-api/internal/core/domain"
	"github.com/mercadito/catalog-api/internal/core/ports"
)

// Context keys used by the auth middleware.
const (
	principalKey = "principal"
	rawTokenKey  = "raw_token"
)

// Auth is the authentication gate: it extracts the bearer token, verifies it
// through the token service, and attaches the resolved Principal to the
// request context. Every failure collapses to a generic 401; the failure
// kind is logged and counted but never leaked to the client.
func Auth(tokens ports.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return reject(c, "missing_header", nil, log)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return reject(c, "malformed_header", nil, log)
			}

			principal, err := tokens.Verify(c.Request().Context(), parts[1])
			if err != nil {
				return reject(c, verifyReason(err), err, log)
			}

			c.Set(principalKey, principal)
			c.Set(rawTokenKey, parts[1])
			return next(c)
		}
	}
}

// Principal returns the authenticated identity attached by Auth, if any.
func Principal(c echo.Context) (*domain.Principal, bool) {
	p, ok := c.Get(principalKey).(*domain.Principal)
	return p, ok && p != nil
}

// RawToken returns the bearer token string the caller presented. Logout needs
// it to invalidate the exact credential in use.
func RawToken(c echo.Context) string {
	t, _ := c.Get(rawTokenKey).(string)
	return t
}

func reject(c echo.Context, reason string, cause error, log zerolog.Logger) error {
	metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
	log.Debug().
		Err(cause).
		Str("reason", reason).
		Str("path", c.Path()).
		Msg("request rejected by auth gate")
	return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
}

func verifyReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenRevoked):
		return "revoked"
	default:
		return "invalid"
	}
}
