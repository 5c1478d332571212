package ports

import (
	"context"

	"github.com/roomiefies/admin-gateway/internal/core/domain"
)

// AuthResult is the backend's successful login payload.
type AuthResult struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Backend is the typed client surface over the platform's admin REST
// API. Every method resolves to data or a *domain.BackendError; no
// call is ever retried.
type Backend interface {
	// Authentication.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (*domain.User, error)

	// Users.
	ListUsers(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.User], error)
	ListRegularUsers(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.User], error)
	ListAdmins(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.User], error)
	GetUser(ctx context.Context, token string, id int) (*domain.User, error)
	UpdateUser(ctx context.Context, token string, id int, fields map[string]any) (*domain.User, error)
	DeleteUser(ctx context.Context, token string, id int) error
	TotalUsers(ctx context.Context, token string) (int, error)

	// Listings.
	ListApprovedListings(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.Listing], error)
	ListPendingListings(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.Listing], error)
	ListRejectedListings(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.Listing], error)
	GetListing(ctx context.Context, token string, id int) (*domain.Listing, error)
	ApproveListing(ctx context.Context, token string, id int) error
	RejectListing(ctx context.Context, token string, id int) error
	DeleteListing(ctx context.Context, token string, id int) error
	TotalListings(ctx context.Context, token string) (int, error)

	// Activity logs.
	ListLogs(ctx context.Context, token string, kind domain.LogKind, f domain.LogFilter) ([]domain.ActivityLog, error)
}
