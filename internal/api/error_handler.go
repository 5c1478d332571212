package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/roomiefies/admin-gateway/internal/api/middleware"
	"github.com/roomiefies/admin-gateway/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error    string              `json:"error"`
	Redirect string              `json:"redirect,omitempty"`
	Fields   map[string][]string `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Surfaces backend failures with the backend's own message, so staff
//     see what the platform said instead of a generic 500.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Session lifecycle errors always send the caller back to login.
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized, errorResponse{Error: "unauthorized", Redirect: middleware.LoginPath}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "invalid credentials"}
	case errors.Is(err, domain.ErrConfirmationRequired):
		return http.StatusConflict, errorResponse{Error: "confirmation required"}
	}

	// Failed backend calls keep their classification.
	var be *domain.BackendError
	if errors.As(err, &be) {
		switch be.Kind {
		case domain.BackendAuth:
			return http.StatusUnauthorized, errorResponse{Error: be.Message, Redirect: middleware.LoginPath}
		case domain.BackendValidation:
			return http.StatusUnprocessableEntity, errorResponse{Error: be.Message, Fields: be.Fields}
		case domain.BackendConnection:
			return http.StatusBadGateway, errorResponse{Error: be.Message}
		default:
			status := http.StatusBadGateway
			if be.Status == http.StatusNotFound {
				status = http.StatusNotFound
			}
			return status, errorResponse{Error: be.Message}
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
