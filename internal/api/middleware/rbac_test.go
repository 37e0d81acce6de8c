package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

type stubAudit struct {
	events []domain.AuditEvent
}

func (s *stubAudit) Record(event domain.AuditEvent) {
	s.events = append(s.events, event)
}

func principalContext(e *echo.Echo, p *domain.Principal) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if p != nil {
		c.Set(principalKey, p)
	}
	return c, rec
}

func TestRequireRole_Allows(t *testing.T) {
	e := echo.New()
	c, rec := principalContext(e, &domain.Principal{UserID: "u1", Role: domain.RoleAdmin})

	called := false
	handler := RequireRole(domain.RoleAdmin, &stubAudit{})(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	e := echo.New()
	c, _ := principalContext(e, &domain.Principal{UserID: "u2", Role: domain.RoleUser})

	audit := &stubAudit{}
	handler := RequireRole(domain.RoleAdmin, audit)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", he.Code)
	}
	if len(audit.events) != 1 || audit.events[0].Action != domain.AuditAccessDenied {
		t.Fatalf("denied access not audited: %+v", audit.events)
	}
}

// A missing principal means Auth never ran on this route: that is a wiring
// bug, not a client error, and must surface as an internal fault.
func TestRequireRole_MissingPrincipal(t *testing.T) {
	e := echo.New()
	c, _ := principalContext(e, nil)

	handler := RequireRole(domain.RoleAdmin, &stubAudit{})(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	if !errors.Is(err, domain.ErrMissingPrincipal) {
		t.Fatalf("expected ErrMissingPrincipal, got %v", err)
	}
}
