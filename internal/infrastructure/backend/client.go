// Package backend implements the REST client adapter over the platform's
// admin API. Every entity operation is a thin typed wrapper around one
// verb primitive; failures are normalized to *domain.BackendError and
// never retried.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/roomiefies/admin-gateway/internal/api/metrics"
	"github.com/roomiefies/admin-gateway/internal/core/domain"
)

// Client talks to baseURL + adminPrefix + path with JSON bodies and a
// bearer token header when a token is present.
type Client struct {
	baseURL string
	prefix  string
	http    *http.Client
	log     zerolog.Logger
}

// Option customises the Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client. Used by tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a Client. The default HTTP client carries no extra
// timeout; no client-side deadline is enforced beyond the caller's ctx.
func New(baseURL, adminPrefix string, log zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		prefix:  adminPrefix,
		http:    &http.Client{},
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorBody is the backend's error envelope: {error?, message?, errors?}.
type errorBody struct {
	Error   string              `json:"error"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// do performs one HTTP call and decodes the response into out (when
// non-nil). A 204 yields success with out untouched. op labels the
// call in metrics and logs.
func (c *Client) do(ctx context.Context, op, method, path, token string, body, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, method, path, token, body, out)
	metrics.BackendRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	metrics.BackendRequestsTotal.WithLabelValues(op, outcomeLabel(err)).Inc()

	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Str("method", method).Str("path", path).Msg("backend call failed")
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &domain.BackendError{Kind: domain.BackendServer, Message: "could not encode request"}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+c.prefix+path, reader)
	if err != nil {
		return &domain.BackendError{Kind: domain.BackendConnection, Message: "connection error"}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// No response obtained at all. Never retried.
		return &domain.BackendError{Kind: domain.BackendConnection, Message: "connection error"}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.BackendError{Kind: domain.BackendConnection, Message: "connection error"}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.BackendError{
			Kind:    domain.BackendServer,
			Status:  resp.StatusCode,
			Message: "could not decode server response",
		}
	}
	return nil
}

// errorFromResponse normalizes a non-2xx response. A JSON body supplies
// the message and optional field errors; anything else yields a generic
// server error carrying the status code.
func errorFromResponse(status int, raw []byte) *domain.BackendError {
	be := &domain.BackendError{Kind: domain.BackendServer, Status: status}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		switch {
		case body.Error != "":
			be.Message = body.Error
		case body.Message != "":
			be.Message = body.Message
		}
		be.Fields = body.Errors
	}
	if be.Message == "" {
		be.Message = fmt.Sprintf("server error (%d)", status)
	}

	switch {
	case status == http.StatusUnauthorized:
		be.Kind = domain.BackendAuth
	case len(be.Fields) > 0:
		be.Kind = domain.BackendValidation
	}
	return be
}

func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	if be, ok := err.(*domain.BackendError); ok {
		return string(be.Kind)
	}
	return "error"
}

// listPath appends the canonical list-query parameters (page, search,
// sort_by, sort_order, per_page) to path.
func listPath(path string, q domain.Query) string {
	params := url.Values{}
	page := q.Page
	if page < 1 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Sort.Key != "" {
		params.Set("sort_by", q.Sort.Key)
		params.Set("sort_order", q.Sort.Order())
	}
	if q.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(q.PerPage))
	}
	return path + "?" + params.Encode()
}
