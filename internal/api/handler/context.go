package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/catalog-api/internal/api/middleware"
	"github.com/mercadito/catalog-api/internal/core/domain"
)

// principalFrom extracts the Principal injected by the Auth middleware.
// Handlers behind the gate should always find one; its absence means the
// route was registered without the middleware.
func principalFrom(c echo.Context) (*domain.Principal, error) {
	p, ok := middleware.Principal(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}
