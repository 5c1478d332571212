package handler

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/roomiefies/admin-gateway/internal/api/middleware"
	"github.com/roomiefies/admin-gateway/internal/core/domain"
	"github.com/roomiefies/admin-gateway/internal/core/ports"
)

// stubBackend implements ports.Backend for handler tests. Every method
// falls back to an empty success unless its fn field is set.
type stubBackend struct {
	loginFn      func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	meFn         func(ctx context.Context, token string) (*domain.User, error)
	getUserFn    func(ctx context.Context, token string, id int) (*domain.User, error)
	updateUserFn func(ctx context.Context, token string, id int, fields map[string]any) (*domain.User, error)
	getListingFn func(ctx context.Context, token string, id int) (*domain.Listing, error)
	listLogsFn   func(ctx context.Context, token string, kind domain.LogKind, f domain.LogFilter) ([]domain.ActivityLog, error)

	userPagesFn    func(q domain.Query) (*domain.Page[domain.User], error)
	listingPagesFn func(status domain.ListingStatus, q domain.Query) (*domain.Page[domain.Listing], error)

	deletedUsers    []int
	deletedListings []int
	approved        []int
	rejected        []int
}

func emptyUserPage() *domain.Page[domain.User] {
	return &domain.Page[domain.User]{Data: nil, CurrentPage: 1, LastPage: 1, PerPage: domain.DefaultPerPage}
}

func emptyListingPage() *domain.Page[domain.Listing] {
	return &domain.Page[domain.Listing]{Data: nil, CurrentPage: 1, LastPage: 1, PerPage: domain.DefaultPerPage}
}

func (s *stubBackend) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (s *stubBackend) Logout(ctx context.Context, token string) error { return nil }

func (s *stubBackend) Me(ctx context.Context, token string) (*domain.User, error) {
	if s.meFn != nil {
		return s.meFn(ctx, token)
	}
	return &domain.User{ID: 1, Name: "Admin"}, nil
}

func (s *stubBackend) ListUsers(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.User], error) {
	if s.userPagesFn != nil {
		return s.userPagesFn(q)
	}
	return emptyUserPage(), nil
}

func (s *stubBackend) ListRegularUsers(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.User], error) {
	if s.userPagesFn != nil {
		return s.userPagesFn(q)
	}
	return emptyUserPage(), nil
}

func (s *stubBackend) ListAdmins(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.User], error) {
	if s.userPagesFn != nil {
		return s.userPagesFn(q)
	}
	return emptyUserPage(), nil
}

func (s *stubBackend) GetUser(ctx context.Context, token string, id int) (*domain.User, error) {
	if s.getUserFn != nil {
		return s.getUserFn(ctx, token, id)
	}
	return &domain.User{ID: id}, nil
}

func (s *stubBackend) UpdateUser(ctx context.Context, token string, id int, fields map[string]any) (*domain.User, error) {
	if s.updateUserFn != nil {
		return s.updateUserFn(ctx, token, id, fields)
	}
	return &domain.User{ID: id}, nil
}

func (s *stubBackend) DeleteUser(ctx context.Context, token string, id int) error {
	s.deletedUsers = append(s.deletedUsers, id)
	return nil
}

func (s *stubBackend) TotalUsers(ctx context.Context, token string) (int, error) { return 0, nil }

func (s *stubBackend) ListApprovedListings(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.Listing], error) {
	if s.listingPagesFn != nil {
		return s.listingPagesFn(domain.ListingApproved, q)
	}
	return emptyListingPage(), nil
}

func (s *stubBackend) ListPendingListings(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.Listing], error) {
	if s.listingPagesFn != nil {
		return s.listingPagesFn(domain.ListingPending, q)
	}
	return emptyListingPage(), nil
}

func (s *stubBackend) ListRejectedListings(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.Listing], error) {
	if s.listingPagesFn != nil {
		return s.listingPagesFn(domain.ListingRejected, q)
	}
	return emptyListingPage(), nil
}

func (s *stubBackend) GetListing(ctx context.Context, token string, id int) (*domain.Listing, error) {
	if s.getListingFn != nil {
		return s.getListingFn(ctx, token, id)
	}
	return &domain.Listing{ID: id}, nil
}

func (s *stubBackend) ApproveListing(ctx context.Context, token string, id int) error {
	s.approved = append(s.approved, id)
	return nil
}

func (s *stubBackend) RejectListing(ctx context.Context, token string, id int) error {
	s.rejected = append(s.rejected, id)
	return nil
}

func (s *stubBackend) DeleteListing(ctx context.Context, token string, id int) error {
	s.deletedListings = append(s.deletedListings, id)
	return nil
}

func (s *stubBackend) TotalListings(ctx context.Context, token string) (int, error) { return 0, nil }

func (s *stubBackend) ListLogs(ctx context.Context, token string, kind domain.LogKind, f domain.LogFilter) ([]domain.ActivityLog, error) {
	if s.listLogsFn != nil {
		return s.listLogsFn(ctx, token, kind, f)
	}
	return nil, nil
}

// stubSessions implements ports.SessionService for handler tests.
type stubSessions struct {
	loginFn       func(ctx context.Context, email, password string) (string, *domain.Session, error)
	logouts       []string
	invalidations []string
}

func (s *stubSessions) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}

func (s *stubSessions) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, email, password)
	}
	return "", nil, domain.ErrInvalidCredentials
}

func (s *stubSessions) Logout(ctx context.Context, sessionID, token string) {
	s.logouts = append(s.logouts, sessionID)
}

func (s *stubSessions) Invalidate(ctx context.Context, sessionID string) {
	s.invalidations = append(s.invalidations, sessionID)
}

// guardedContext builds an echo context carrying an authenticated
// session, the way the Guard middleware leaves it for handlers.
func guardedContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeySession, &domain.Session{User: &domain.User{ID: 1, Name: "Admin"}, Token: "tok-1"})
	c.Set(middleware.ContextKeySessionID, "sid-1")
	return c, rec
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
