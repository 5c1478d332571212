package backend

import (
	"context"
	"net/http"

	"github.com/roomiefies/admin-gateway/internal/core/domain"
	"github.com/roomiefies/admin-gateway/internal/core/ports"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token and the staff user.
func (c *Client) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	var out ports.AuthResult
	err := c.do(ctx, "login", http.MethodPost, "/login", "", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes the token server-side.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, "logout", http.MethodPost, "/logout", token, nil, nil)
}

// Me validates the token and returns the staff user it belongs to.
func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, "me", http.MethodGet, "/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
