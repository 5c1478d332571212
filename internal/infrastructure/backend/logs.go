package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/roomiefies/admin-gateway/internal/core/domain"
)

// ListLogs fetches activity-log entries of one kind. The endpoint
// answers with either a bare array or a paginated envelope depending on
// the filters; both shapes are accepted.
func (c *Client) ListLogs(ctx context.Context, token string, kind domain.LogKind, f domain.LogFilter) ([]domain.ActivityLog, error) {
	params := url.Values{}
	params.Set("type", string(kind))
	if f.UserID > 0 {
		params.Set("user_id", strconv.Itoa(f.UserID))
	}
	if kind == domain.LogKindListing && f.ListingID > 0 {
		params.Set("listing_id", strconv.Itoa(f.ListingID))
	}
	if f.Action != "" {
		params.Set("action", f.Action)
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Page > 0 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(f.PerPage))
	}

	var raw json.RawMessage
	if err := c.do(ctx, "list_logs", http.MethodGet, "/logs?"+params.Encode(), token, nil, &raw); err != nil {
		return nil, err
	}

	var logs []domain.ActivityLog
	if err := json.Unmarshal(raw, &logs); err == nil {
		return logs, nil
	}

	var page domain.Page[domain.ActivityLog]
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, &domain.BackendError{Kind: domain.BackendServer, Message: "could not decode server response"}
	}
	return page.Data, nil
}
