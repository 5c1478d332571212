package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/roomiefies/admin-gateway/internal/core/domain"
)

// totalResponse is the payload of the aggregate count endpoints.
type totalResponse struct {
	Total int `json:"total"`
}

// ListUsers fetches one page of all accounts, regular and admin alike.
func (c *Client) ListUsers(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.User], error) {
	var out domain.Page[domain.User]
	if err := c.do(ctx, "list_users", http.MethodGet, listPath("/users", q), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListRegularUsers(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.User], error) {
	var out domain.Page[domain.User]
	if err := c.do(ctx, "list_regular_users", http.MethodGet, listPath("/users/regular-users", q), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListAdmins(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.User], error) {
	var out domain.Page[domain.User]
	if err := c.do(ctx, "list_admins", http.MethodGet, listPath("/users/admins", q), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUser(ctx context.Context, token string, id int) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, "get_user", http.MethodGet, fmt.Sprintf("/users/%d", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser sends a partial update; fields use backend wire names
// (onayli, is_helios, ...).
func (c *Client) UpdateUser(ctx context.Context, token string, id int, fields map[string]any) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, "update_user", http.MethodPut, fmt.Sprintf("/users/%d", id), token, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, token string, id int) error {
	return c.do(ctx, "delete_user", http.MethodDelete, fmt.Sprintf("/users/%d", id), token, nil, nil)
}

func (c *Client) TotalUsers(ctx context.Context, token string) (int, error) {
	var out totalResponse
	if err := c.do(ctx, "total_users", http.MethodGet, "/users/total-users", token, nil, &out); err != nil {
		return 0, err
	}
	return out.Total, nil
}
