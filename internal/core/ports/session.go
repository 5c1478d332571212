package ports

import (
	"context"

	"github.com/roomiefies/admin-gateway/internal/core/domain"
)

// TokenStore persists bearer tokens across gateway restarts, keyed by
// session id. Presence of a key is the sole "was previously logged in"
// signal.
type TokenStore interface {
	// Get returns the stored token or domain.ErrSessionNotFound.
	Get(ctx context.Context, sessionID string) (string, error)
	Set(ctx context.Context, sessionID, token string) error
	Delete(ctx context.Context, sessionID string) error
}

// SessionService owns the staff session lifecycle.
type SessionService interface {
	// Resolve validates a persisted session against the backend's
	// who-am-I endpoint. It always returns: a session, or
	// domain.ErrSessionNotFound / domain.ErrSessionExpired.
	Resolve(ctx context.Context, sessionID string) (*domain.Session, error)
	// Login authenticates against the backend and, on success, persists
	// the returned token under a fresh session id.
	Login(ctx context.Context, email, password string) (string, *domain.Session, error)
	// Logout tears the session down locally; the backend logout call is
	// best-effort and never blocks teardown.
	Logout(ctx context.Context, sessionID string, token string)
	// Invalidate clears a session after any backend call reported an
	// authentication failure.
	Invalidate(ctx context.Context, sessionID string)
}
