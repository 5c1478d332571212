package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/roomiefies/admin-gateway/internal/core/domain"
)

func invoke(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_SessionErrorsRedirectToLogin(t *testing.T) {
	for _, err := range []error{domain.ErrSessionNotFound, domain.ErrSessionExpired} {
		code, body := invoke(t, err)
		if code != http.StatusUnauthorized {
			t.Fatalf("%v: expected 401, got %d", err, code)
		}
		if body.Redirect != "/login" {
			t.Fatalf("%v: expected login redirect, got %q", err, body.Redirect)
		}
	}
}

func TestErrorHandler_ConfirmationRequired(t *testing.T) {
	code, body := invoke(t, domain.ErrConfirmationRequired)
	if code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", code)
	}
	if body.Error != "confirmation required" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
}

func TestErrorHandler_BackendValidationCarriesFields(t *testing.T) {
	code, body := invoke(t, &domain.BackendError{
		Kind:    domain.BackendValidation,
		Status:  422,
		Message: "validation failed",
		Fields:  map[string][]string{"email": {"taken"}},
	})
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if len(body.Fields["email"]) != 1 || body.Fields["email"][0] != "taken" {
		t.Fatalf("fields not carried: %+v", body.Fields)
	}
}

func TestErrorHandler_ConnectionErrorIsBadGateway(t *testing.T) {
	code, body := invoke(t, &domain.BackendError{Kind: domain.BackendConnection, Message: "connection error"})
	if code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", code)
	}
	if body.Error != "connection error" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
}

func TestErrorHandler_BackendNotFoundPassesThrough(t *testing.T) {
	code, _ := invoke(t, &domain.BackendError{Kind: domain.BackendServer, Status: 404, Message: "user not found"})
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestErrorHandler_UnknownErrorIsGeneric(t *testing.T) {
	code, body := invoke(t, errors.New("boom"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
}
