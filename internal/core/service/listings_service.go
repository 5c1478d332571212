package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/roomiefies/admin-gateway/internal/api/metrics"
	"github.com/roomiefies/admin-gateway/internal/core/domain"
	"github.com/roomiefies/admin-gateway/internal/core/ports"
)

// ListingsController is the page controller for listing moderation. It
// owns three independent state groups, one per moderation bucket, and
// the approve/reject/delete actions. A successful action refreshes all
// three groups, since the moderated listing leaves one bucket and
// enters another.
type ListingsController struct {
	Approved *Collection[domain.Listing]
	Pending  *Collection[domain.Listing]
	Rejected *Collection[domain.Listing]

	backend ports.Backend
	token   string
	log     zerolog.Logger
}

func NewListingsController(backend ports.Backend, token string, log zerolog.Logger) *ListingsController {
	return &ListingsController{
		Approved: NewCollection(func(ctx context.Context, q domain.Query) (*domain.Page[domain.Listing], error) {
			return backend.ListApprovedListings(ctx, token, q)
		}),
		Pending: NewCollection(func(ctx context.Context, q domain.Query) (*domain.Page[domain.Listing], error) {
			return backend.ListPendingListings(ctx, token, q)
		}),
		Rejected: NewCollection(func(ctx context.Context, q domain.Query) (*domain.Page[domain.Listing], error) {
			return backend.ListRejectedListings(ctx, token, q)
		}),
		backend: backend,
		token:   token,
		log:     log,
	}
}

// LoadAll fetches the three buckets concurrently. Per-group errors land
// in each group's own error slot; LoadAll itself never fails.
func (lc *ListingsController) LoadAll(ctx context.Context) {
	var wg sync.WaitGroup
	for _, c := range []*Collection[domain.Listing]{lc.Approved, lc.Pending, lc.Rejected} {
		wg.Add(1)
		go func(c *Collection[domain.Listing]) {
			defer wg.Done()
			_ = c.Load(ctx)
		}(c)
	}
	wg.Wait()
}

// Get fetches one listing with its image collection.
func (lc *ListingsController) Get(ctx context.Context, id int) (*domain.Listing, error) {
	return lc.backend.GetListing(ctx, lc.token, id)
}

// Approve marks a listing approved and refreshes every bucket.
func (lc *ListingsController) Approve(ctx context.Context, id int) error {
	return lc.moderate(ctx, "approve", func() error {
		return lc.backend.ApproveListing(ctx, lc.token, id)
	})
}

// Reject marks a listing rejected and refreshes every bucket.
func (lc *ListingsController) Reject(ctx context.Context, id int) error {
	return lc.moderate(ctx, "reject", func() error {
		return lc.backend.RejectListing(ctx, lc.token, id)
	})
}

// Delete removes a listing. Without confirmation no request reaches the
// backend at all.
func (lc *ListingsController) Delete(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	return lc.moderate(ctx, "delete", func() error {
		return lc.backend.DeleteListing(ctx, lc.token, id)
	})
}

func (lc *ListingsController) moderate(ctx context.Context, action string, call func() error) error {
	if err := call(); err != nil {
		metrics.ModerationActionsTotal.WithLabelValues("listing", action, "error").Inc()
		return err
	}
	metrics.ModerationActionsTotal.WithLabelValues("listing", action, "ok").Inc()
	lc.log.Info().Str("action", action).Msg("listing moderated")
	lc.LoadAll(ctx)
	return nil
}
