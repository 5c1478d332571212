package service

import (
	"context"
	"sync"

	"github.com/roomiefies/admin-gateway/internal/core/domain"
	"github.com/roomiefies/admin-gateway/internal/core/ports"
)

// stubBackend implements ports.Backend with overridable hooks and a
// per-operation call counter.
type stubBackend struct {
	mu    sync.Mutex
	calls map[string]int

	loginFn      func(email, password string) (*ports.AuthResult, error)
	logoutFn     func(token string) error
	meFn         func(ctx context.Context, token string) (*domain.User, error)
	getUserFn    func(id int) (*domain.User, error)
	updateUserFn func(id int, fields map[string]any) (*domain.User, error)
	deleteUserFn func(id int) error
	listUsersFn  func(op string, q domain.Query) (*domain.Page[domain.User], error)

	listListingsFn func(op string, q domain.Query) (*domain.Page[domain.Listing], error)
	approveFn      func(id int) error
	rejectFn       func(id int) error
	deleteFn       func(id int) error

	totalUsersFn    func() (int, error)
	totalListingsFn func() (int, error)
	listLogsFn      func(kind domain.LogKind, f domain.LogFilter) ([]domain.ActivityLog, error)
}

func newStubBackend() *stubBackend {
	return &stubBackend{calls: make(map[string]int)}
}

func (s *stubBackend) count(op string) {
	s.mu.Lock()
	s.calls[op]++
	s.mu.Unlock()
}

func (s *stubBackend) callCount(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func emptyPage[T any](q domain.Query) *domain.Page[T] {
	return &domain.Page[T]{Data: []T{}, CurrentPage: q.Page, LastPage: 1, PerPage: q.PerPage}
}

func (s *stubBackend) Login(_ context.Context, email, password string) (*ports.AuthResult, error) {
	s.count("login")
	if s.loginFn != nil {
		return s.loginFn(email, password)
	}
	return &ports.AuthResult{User: &domain.User{ID: 1, Name: "staff", Email: email}, Token: "tok"}, nil
}

func (s *stubBackend) Logout(_ context.Context, token string) error {
	s.count("logout")
	if s.logoutFn != nil {
		return s.logoutFn(token)
	}
	return nil
}

func (s *stubBackend) Me(ctx context.Context, token string) (*domain.User, error) {
	s.count("me")
	if s.meFn != nil {
		return s.meFn(ctx, token)
	}
	return &domain.User{ID: 1, Name: "staff"}, nil
}

func (s *stubBackend) ListUsers(_ context.Context, _ string, q domain.Query) (*domain.Page[domain.User], error) {
	s.count("list_users")
	if s.listUsersFn != nil {
		return s.listUsersFn("list_users", q)
	}
	return emptyPage[domain.User](q), nil
}

func (s *stubBackend) ListRegularUsers(_ context.Context, _ string, q domain.Query) (*domain.Page[domain.User], error) {
	s.count("list_regular_users")
	if s.listUsersFn != nil {
		return s.listUsersFn("list_regular_users", q)
	}
	return emptyPage[domain.User](q), nil
}

func (s *stubBackend) ListAdmins(_ context.Context, _ string, q domain.Query) (*domain.Page[domain.User], error) {
	s.count("list_admins")
	if s.listUsersFn != nil {
		return s.listUsersFn("list_admins", q)
	}
	return emptyPage[domain.User](q), nil
}

func (s *stubBackend) GetUser(_ context.Context, _ string, id int) (*domain.User, error) {
	s.count("get_user")
	if s.getUserFn != nil {
		return s.getUserFn(id)
	}
	return &domain.User{ID: id}, nil
}

func (s *stubBackend) UpdateUser(_ context.Context, _ string, id int, fields map[string]any) (*domain.User, error) {
	s.count("update_user")
	if s.updateUserFn != nil {
		return s.updateUserFn(id, fields)
	}
	return &domain.User{ID: id}, nil
}

func (s *stubBackend) DeleteUser(_ context.Context, _ string, id int) error {
	s.count("delete_user")
	if s.deleteUserFn != nil {
		return s.deleteUserFn(id)
	}
	return nil
}

func (s *stubBackend) TotalUsers(_ context.Context, _ string) (int, error) {
	s.count("total_users")
	if s.totalUsersFn != nil {
		return s.totalUsersFn()
	}
	return 0, nil
}

func (s *stubBackend) ListApprovedListings(_ context.Context, _ string, q domain.Query) (*domain.Page[domain.Listing], error) {
	s.count("list_approved_listings")
	if s.listListingsFn != nil {
		return s.listListingsFn("list_approved_listings", q)
	}
	return emptyPage[domain.Listing](q), nil
}

func (s *stubBackend) ListPendingListings(_ context.Context, _ string, q domain.Query) (*domain.Page[domain.Listing], error) {
	s.count("list_pending_listings")
	if s.listListingsFn != nil {
		return s.listListingsFn("list_pending_listings", q)
	}
	return emptyPage[domain.Listing](q), nil
}

func (s *stubBackend) ListRejectedListings(_ context.Context, _ string, q domain.Query) (*domain.Page[domain.Listing], error) {
	s.count("list_rejected_listings")
	if s.listListingsFn != nil {
		return s.listListingsFn("list_rejected_listings", q)
	}
	return emptyPage[domain.Listing](q), nil
}

func (s *stubBackend) GetListing(_ context.Context, _ string, id int) (*domain.Listing, error) {
	s.count("get_listing")
	return &domain.Listing{ID: id}, nil
}

func (s *stubBackend) ApproveListing(_ context.Context, _ string, id int) error {
	s.count("approve_listing")
	if s.approveFn != nil {
		return s.approveFn(id)
	}
	return nil
}

func (s *stubBackend) RejectListing(_ context.Context, _ string, id int) error {
	s.count("reject_listing")
	if s.rejectFn != nil {
		return s.rejectFn(id)
	}
	return nil
}

func (s *stubBackend) DeleteListing(_ context.Context, _ string, id int) error {
	s.count("delete_listing")
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

func (s *stubBackend) TotalListings(_ context.Context, _ string) (int, error) {
	s.count("total_listings")
	if s.totalListingsFn != nil {
		return s.totalListingsFn()
	}
	return 0, nil
}

func (s *stubBackend) ListLogs(_ context.Context, _ string, kind domain.LogKind, f domain.LogFilter) ([]domain.ActivityLog, error) {
	s.count("list_logs_" + string(kind))
	if s.listLogsFn != nil {
		return s.listLogsFn(kind, f)
	}
	return nil, nil
}

// stubTokenStore is an in-memory ports.TokenStore.
type stubTokenStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{tokens: make(map[string]string)}
}

func (s *stubTokenStore) Get(_ context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.tokens[sessionID]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return token, nil
}

func (s *stubTokenStore) Set(_ context.Context, sessionID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[sessionID] = token
	return nil
}

func (s *stubTokenStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, sessionID)
	return nil
}

func (s *stubTokenStore) has(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[sessionID]
	return ok
}
