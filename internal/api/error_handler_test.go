package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainMappings(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrProductNotFound, http.StatusNotFound},
		{domain.ErrCategoryNotFound, http.StatusNotFound},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrProductExists, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidRole, http.StatusBadRequest},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrTokenInvalid, http.StatusUnauthorized},
		{domain.ErrTokenExpired, http.StatusUnauthorized},
		{domain.ErrTokenRevoked, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		code, _ := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestErrorHandler_TokenFailuresStayGeneric(t *testing.T) {
	for _, err := range []error{domain.ErrTokenExpired, domain.ErrTokenRevoked} {
		_, msg := renderError(t, err)
		if msg != "unauthorized" {
			t.Fatalf("token failure kind leaked: %q", msg)
		}
	}
}

func TestErrorHandler_RedactsUnexpectedErrors(t *testing.T) {
	code, msg := renderError(t, errors.New("pq: connection refused on 10.0.0.3"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if strings.Contains(msg, "10.0.0.3") {
		t.Fatalf("internal detail leaked: %q", msg)
	}
	if msg != "internal server error" {
		t.Fatalf("expected generic message, got %q", msg)
	}
}

func TestErrorHandler_MisorderedChainIsInternalFault(t *testing.T) {
	code, msg := renderError(t, domain.ErrMissingPrincipal)
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("expected generic message, got %q", msg)
	}
}

func TestErrorHandler_PassesThroughHTTPErrors(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "name is required"))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "name is required" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
