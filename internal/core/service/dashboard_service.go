package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/roomiefies/admin-gateway/internal/core/domain"
	"github.com/roomiefies/admin-gateway/internal/core/ports"
)

// recentFeedLimit is how many activity entries each feed shows.
const recentFeedLimit = 5

// Stat is one scalar aggregate with its own loading/error slot.
type Stat struct {
	Value  int
	Err    error
	Loaded bool
}

// Feed is one activity-log feed with its own error slot.
type Feed struct {
	Entries []domain.ActivityLog
	Err     error
}

// DashboardController fetches the landing page's aggregates and the two
// recent-activity feeds. Each slot loads independently; one failing
// fetch never blanks the others.
type DashboardController struct {
	TotalUsers    Stat
	TotalListings Stat
	UserFeed      Feed
	ListingFeed   Feed

	backend ports.Backend
	token   string
	log     zerolog.Logger
}

func NewDashboardController(backend ports.Backend, token string, log zerolog.Logger) *DashboardController {
	return &DashboardController{backend: backend, token: token, log: log}
}

// Load fetches all four slots concurrently and waits for every one.
func (dc *DashboardController) Load(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		dc.TotalUsers.Value, dc.TotalUsers.Err = dc.backend.TotalUsers(ctx, dc.token)
		dc.TotalUsers.Loaded = true
	}()
	go func() {
		defer wg.Done()
		dc.TotalListings.Value, dc.TotalListings.Err = dc.backend.TotalListings(ctx, dc.token)
		dc.TotalListings.Loaded = true
	}()
	go func() {
		defer wg.Done()
		dc.UserFeed.Entries, dc.UserFeed.Err = dc.backend.ListLogs(ctx, dc.token, domain.LogKindUser, domain.LogFilter{Limit: recentFeedLimit, Page: 1})
	}()
	go func() {
		defer wg.Done()
		dc.ListingFeed.Entries, dc.ListingFeed.Err = dc.backend.ListLogs(ctx, dc.token, domain.LogKindListing, domain.LogFilter{Limit: recentFeedLimit, Page: 1})
	}()

	wg.Wait()
}
