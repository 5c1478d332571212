package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound means no persisted token exists for the session id.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired means the persisted token was rejected by the backend.
	ErrSessionExpired = errors.New("session expired")
	// ErrConfirmationRequired guards destructive actions: no delete is
	// issued to the backend until the caller confirms.
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)

// BackendErrorKind classifies a failed backend call.
type BackendErrorKind string

const (
	// BackendConnection: no response was obtained at all.
	BackendConnection BackendErrorKind = "connection"
	// BackendServer: non-2xx status, with or without a parseable body.
	BackendServer BackendErrorKind = "server"
	// BackendAuth: 401-class failure; the local session must be cleared.
	BackendAuth BackendErrorKind = "auth"
	// BackendValidation: server error carrying a field-level errors map.
	BackendValidation BackendErrorKind = "validation"
)

// BackendError is the normalized failure shape of every backend call.
// The REST adapter never lets any other error escape its boundary.
type BackendError struct {
	Kind    BackendErrorKind
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *BackendError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d)", e.Message, e.Status)
	}
	return e.Message
}

// IsAuthFailure reports whether err is a 401-class backend failure that
// must tear down the local session.
func IsAuthFailure(err error) bool {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Kind == BackendAuth
	}
	return false
}

// ErrorMessage extracts the user-facing message from a backend error,
// falling back to err.Error() for anything else.
func ErrorMessage(err error) string {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// FieldErrors returns the field-level validation map when present.
func FieldErrors(err error) map[string][]string {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Fields
	}
	return nil
}
