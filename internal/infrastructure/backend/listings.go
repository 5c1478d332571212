package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/roomiefies/admin-gateway/internal/core/domain"
)

func (c *Client) listListings(ctx context.Context, op, bucket, token string, q domain.Query) (*domain.Page[domain.Listing], error) {
	var out domain.Page[domain.Listing]
	if err := c.do(ctx, op, http.MethodGet, listPath("/listings/"+bucket, q), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListApprovedListings(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.Listing], error) {
	return c.listListings(ctx, "list_approved_listings", "approved", token, q)
}

func (c *Client) ListPendingListings(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.Listing], error) {
	return c.listListings(ctx, "list_pending_listings", "pending", token, q)
}

func (c *Client) ListRejectedListings(ctx context.Context, token string, q domain.Query) (*domain.Page[domain.Listing], error) {
	return c.listListings(ctx, "list_rejected_listings", "rejected", token, q)
}

func (c *Client) GetListing(ctx context.Context, token string, id int) (*domain.Listing, error) {
	var out domain.Listing
	if err := c.do(ctx, "get_listing", http.MethodGet, fmt.Sprintf("/listings/%d", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ApproveListing(ctx context.Context, token string, id int) error {
	return c.do(ctx, "approve_listing", http.MethodPost, fmt.Sprintf("/listings/%d/approve", id), token, nil, nil)
}

func (c *Client) RejectListing(ctx context.Context, token string, id int) error {
	return c.do(ctx, "reject_listing", http.MethodPost, fmt.Sprintf("/listings/%d/reject", id), token, nil, nil)
}

func (c *Client) DeleteListing(ctx context.Context, token string, id int) error {
	return c.do(ctx, "delete_listing", http.MethodDelete, fmt.Sprintf("/listings/%d", id), token, nil, nil)
}

func (c *Client) TotalListings(ctx context.Context, token string) (int, error) {
	var out totalResponse
	if err := c.do(ctx, "total_listings", http.MethodGet, "/listings/total-listings", token, nil, &out); err != nil {
		return 0, err
	}
	return out.Total, nil
}
