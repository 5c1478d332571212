package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/roomiefies/admin-gateway/internal/core/domain"
	"github.com/roomiefies/admin-gateway/internal/core/ports"
	"github.com/roomiefies/admin-gateway/internal/core/service"
	"github.com/roomiefies/admin-gateway/internal/view"
)

// DashboardHandler serves the landing page: platform totals plus the
// two recent-activity feeds rendered as human copy.
type DashboardHandler struct {
	backend  ports.Backend
	sessions ports.SessionService
	log      zerolog.Logger

	// now is swappable for deterministic relative-time output in tests.
	now func() time.Time
}

func NewDashboardHandler(backend ports.Backend, sessions ports.SessionService, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{backend: backend, sessions: sessions, log: log, now: time.Now}
}

type statView struct {
	Value int    `json:"value"`
	Error string `json:"error,omitempty"`
}

type feedEntryView struct {
	Actor string `json:"actor"`
	Text  string `json:"text"`
	When  string `json:"when"`
}

type feedView struct {
	Entries []feedEntryView `json:"entries"`
	Error   string          `json:"error,omitempty"`
}

type dashboardResponse struct {
	TotalUsers    statView `json:"total_users"`
	TotalListings statView `json:"total_listings"`
	UserFeed      feedView `json:"user_feed"`
	ListingFeed   feedView `json:"listing_feed"`
}

// Show renders the dashboard. Each slot loads independently: a failed
// aggregate or feed carries its own error while the rest render.
//
// @Summary      Dashboard page
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]string
// @Router       /dashboard [get]
func (h *DashboardHandler) Show(c echo.Context) error {
	sess, sid, err := ctxSession(c)
	if err != nil {
		return err
	}

	dc := service.NewDashboardController(h.backend, sess.Token, h.log)
	dc.Load(c.Request().Context())

	for _, err := range []error{dc.TotalUsers.Err, dc.TotalListings.Err, dc.UserFeed.Err, dc.ListingFeed.Err} {
		if handleAuthFailure(c, h.sessions, sid, err) {
			return domain.ErrSessionExpired
		}
	}

	now := h.now()
	return c.JSON(http.StatusOK, dashboardResponse{
		TotalUsers:    statViewOf(dc.TotalUsers),
		TotalListings: statViewOf(dc.TotalListings),
		UserFeed:      feedViewOf(dc.UserFeed, domain.LogKindUser, now),
		ListingFeed:   feedViewOf(dc.ListingFeed, domain.LogKindListing, now),
	})
}

func statViewOf(s service.Stat) statView {
	v := statView{Value: s.Value}
	if s.Err != nil {
		v.Error = domain.ErrorMessage(s.Err)
	}
	return v
}

func feedViewOf(f service.Feed, kind domain.LogKind, now time.Time) feedView {
	v := feedView{Entries: make([]feedEntryView, 0, len(f.Entries))}
	if f.Err != nil {
		v.Error = domain.ErrorMessage(f.Err)
		return v
	}
	for _, e := range f.Entries {
		entry := feedEntryView{
			Text: view.ActionText(kind, e.Action),
			When: view.RelativeTime(now, e.CreatedAt),
		}
		if e.User != nil {
			entry.Actor = e.User.Name
		}
		v.Entries = append(v.Entries, entry)
	}
	return v
}
