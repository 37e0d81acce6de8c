package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/catalog-api/internal/api/metrics"
	"github.com/mercadito/catalog-api/internal/core/domain"
	"github.com/mercadito/catalog-api/internal/core/ports"
)

// RequireRole is the role gate. It assumes Auth already ran: a missing
// Principal is a middleware-ordering bug and is reported as an internal
// fault, not as a normal rejection. Role comparison is exact.
func RequireRole(required domain.Role, audit ports.AuditRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := Principal(c)
			if !ok {
				return domain.ErrMissingPrincipal
			}

			if p.Role != required {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				audit.Record(domain.AuditEvent{
					Actor:     p.UserID,
					Action:    domain.AuditAccessDenied,
					Detail:    c.Request().Method + " " + c.Path(),
					Timestamp: time.Now().UTC(),
				})
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}

			return next(c)
		}
	}
}
