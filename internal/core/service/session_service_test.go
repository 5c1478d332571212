package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/roomiefies/admin-gateway/internal/core/domain"
	"github.com/roomiefies/admin-gateway/internal/core/ports"
)

func TestSessionService_LoginRoundTrip(t *testing.T) {
	backend := newStubBackend()
	store := newStubTokenStore()
	svc := NewSessionService(backend, store, zerolog.Nop())

	sid, sess, err := svc.Login(context.Background(), "staff@roomiefies.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sid == "" || !sess.Authenticated() {
		t.Fatalf("expected authenticated session, got sid=%q sess=%+v", sid, sess)
	}
	if !store.has(sid) {
		t.Fatalf("token not persisted")
	}

	// A fresh resolver process with the same storage stays logged in.
	svc2 := NewSessionService(backend, store, zerolog.Nop())
	resolved, err := svc2.Resolve(context.Background(), sid)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !resolved.Authenticated() || resolved.Token != "tok" {
		t.Fatalf("expected authenticated session, got %+v", resolved)
	}
}

func TestSessionService_LoginFailureStoresNothing(t *testing.T) {
	backend := newStubBackend()
	backend.loginFn = func(email, password string) (*ports.AuthResult, error) {
		return nil, &domain.BackendError{Kind: domain.BackendAuth, Status: 401, Message: "invalid credentials"}
	}
	store := newStubTokenStore()
	svc := NewSessionService(backend, store, zerolog.Nop())

	sid, _, err := svc.Login(context.Background(), "x@y", "bad")
	if err == nil {
		t.Fatalf("expected error")
	}
	// A backend 401 surfaces as the credential sentinel, not a raw
	// backend error.
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if sid != "" || len(store.tokens) != 0 {
		t.Fatalf("nothing must be stored on failed login")
	}
}

func TestSessionService_LoginConnectionErrorKeepsKind(t *testing.T) {
	backend := newStubBackend()
	backend.loginFn = func(email, password string) (*ports.AuthResult, error) {
		return nil, &domain.BackendError{Kind: domain.BackendConnection, Message: "connection error"}
	}
	svc := NewSessionService(backend, newStubTokenStore(), zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "x@y", "pw")
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("connection failures are not credential failures")
	}
	var be *domain.BackendError
	if !errors.As(err, &be) || be.Kind != domain.BackendConnection {
		t.Fatalf("expected connection error, got %v", err)
	}
}

func TestSessionService_ResolveUnknownSession(t *testing.T) {
	svc := NewSessionService(newStubBackend(), newStubTokenStore(), zerolog.Nop())

	if _, err := svc.Resolve(context.Background(), "ghost"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionService_ResolveRejectedTokenClearsSession(t *testing.T) {
	backend := newStubBackend()
	backend.meFn = func(ctx context.Context, token string) (*domain.User, error) {
		return nil, &domain.BackendError{Kind: domain.BackendAuth, Status: 401, Message: "token expired"}
	}
	store := newStubTokenStore()
	_ = store.Set(context.Background(), "sid-1", "stale-token")
	svc := NewSessionService(backend, store, zerolog.Nop())

	_, err := svc.Resolve(context.Background(), "sid-1")
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if store.has("sid-1") {
		t.Fatalf("persisted token must be cleared on auth rejection")
	}

	// Follow-up resolution finds no session at all.
	if _, err := svc.Resolve(context.Background(), "sid-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionService_LogoutBestEffort(t *testing.T) {
	backend := newStubBackend()
	backend.logoutFn = func(token string) error {
		return &domain.BackendError{Kind: domain.BackendConnection, Message: "connection error"}
	}
	store := newStubTokenStore()
	_ = store.Set(context.Background(), "sid-1", "tok")
	svc := NewSessionService(backend, store, zerolog.Nop())

	svc.Logout(context.Background(), "sid-1", "tok")

	if store.has("sid-1") {
		t.Fatalf("local teardown must happen even when backend logout fails")
	}
}

func TestSessionService_StaleResolveDoesNotResurrectSession(t *testing.T) {
	backend := newStubBackend()
	meStarted := make(chan struct{})
	meRelease := make(chan struct{})
	backend.meFn = func(ctx context.Context, token string) (*domain.User, error) {
		close(meStarted)
		<-meRelease
		return &domain.User{ID: 1}, nil
	}
	store := newStubTokenStore()
	_ = store.Set(context.Background(), "sid-1", "tok")
	svc := NewSessionService(backend, store, zerolog.Nop())

	type result struct {
		sess *domain.Session
		err  error
	}
	done := make(chan result, 1)
	go func() {
		sess, err := svc.Resolve(context.Background(), "sid-1")
		done <- result{sess, err}
	}()

	<-meStarted
	svc.Logout(context.Background(), "sid-1", "")
	close(meRelease)

	res := <-done
	if res.sess != nil {
		t.Fatalf("stale resolve must not resurrect a cleared session, got %+v", res.sess)
	}
	if !errors.Is(res.err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", res.err)
	}
	if store.has("sid-1") {
		t.Fatalf("token must stay cleared")
	}
}

func TestSessionService_InvalidateClearsStore(t *testing.T) {
	store := newStubTokenStore()
	_ = store.Set(context.Background(), "sid-1", "tok")
	svc := NewSessionService(newStubBackend(), store, zerolog.Nop())

	svc.Invalidate(context.Background(), "sid-1")

	if store.has("sid-1") {
		t.Fatalf("invalidate must clear the persisted token")
	}
}
