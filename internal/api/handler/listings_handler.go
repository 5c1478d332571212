package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/roomiefies/admin-gateway/internal/core/domain"
	"github.com/roomiefies/admin-gateway/internal/core/ports"
	"github.com/roomiefies/admin-gateway/internal/core/service"
	"github.com/roomiefies/admin-gateway/internal/view/table"
)

// ListingsHandler serves the listing-moderation page: three moderation
// buckets as independent tables plus the approve/reject/delete actions.
// Table parameters are prefixed per bucket (pending_page, ...).
type ListingsHandler struct {
	backend  ports.Backend
	sessions ports.SessionService
	log      zerolog.Logger
}

func NewListingsHandler(backend ports.Backend, sessions ports.SessionService, log zerolog.Logger) *ListingsHandler {
	return &ListingsHandler{backend: backend, sessions: sessions, log: log}
}

type listingsPageResponse struct {
	Approved table.View `json:"approved"`
	Pending  table.View `json:"pending"`
	Rejected table.View `json:"rejected"`
}

func listingColumns() []table.Column[domain.Listing] {
	return []table.Column[domain.Listing]{
		{Key: "id", Title: "ID", Sortable: true},
		{Key: "title", Title: "Title", Sortable: true},
		{Key: "price", Title: "Price", Sortable: true, Render: func(l domain.Listing) string {
			return fmt.Sprintf("%.0f", l.Price)
		}},
		{Key: "status", Title: "Status"},
		{Key: "created_at", Title: "Published", Sortable: true},
	}
}

// List renders the three moderation buckets.
//
// @Summary      Listing moderation page
// @Tags         listings
// @Produce      json
// @Param        approved_page  query  int     false  "Approved bucket page"
// @Param        pending_page   query  int     false  "Pending bucket page"
// @Param        rejected_page  query  int     false  "Rejected bucket page"
// @Param        pending_search query  string  false  "Pending bucket search"
// @Success      200  {object}  listingsPageResponse
// @Failure      401  {object}  map[string]string
// @Router       /listings [get]
func (h *ListingsHandler) List(c echo.Context) error {
	sess, sid, err := ctxSession(c)
	if err != nil {
		return err
	}

	lc := service.NewListingsController(h.backend, sess.Token, h.log)
	lc.Approved.Seed(groupQuery(c, "approved_"))
	lc.Pending.Seed(groupQuery(c, "pending_"))
	lc.Rejected.Seed(groupQuery(c, "rejected_"))
	lc.LoadAll(c.Request().Context())

	for _, err := range []error{lc.Approved.Err(), lc.Pending.Err(), lc.Rejected.Err()} {
		if handleAuthFailure(c, h.sessions, sid, err) {
			return domain.ErrSessionExpired
		}
	}

	return c.JSON(http.StatusOK, listingsPageResponse{
		Approved: groupView(lc.Approved, listingColumns()),
		Pending:  groupView(lc.Pending, listingColumns()),
		Rejected: groupView(lc.Rejected, listingColumns()),
	})
}

// Get returns one listing with its image collection.
//
// @Summary      Listing detail
// @Tags         listings
// @Produce      json
// @Param        id   path      int  true  "Listing id"
// @Success      200  {object}  domain.Listing
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /listings/{id} [get]
func (h *ListingsHandler) Get(c echo.Context) error {
	sess, sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	listing, err := h.backend.GetListing(c.Request().Context(), sess.Token, id)
	if err != nil {
		if handleAuthFailure(c, h.sessions, sid, err) {
			return domain.ErrSessionExpired
		}
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// Approve moves a listing into the approved bucket. The response
// carries all three refreshed buckets, since the listing leaves one
// and enters another.
//
// @Summary      Approve a listing
// @Tags         listings
// @Produce      json
// @Param        id   path      int  true  "Listing id"
// @Success      200  {object}  listingsPageResponse
// @Failure      401  {object}  map[string]string
// @Router       /listings/{id}/approve [post]
func (h *ListingsHandler) Approve(c echo.Context) error {
	return h.mutation(c, func(lc *service.ListingsController, id int) error {
		return lc.Approve(c.Request().Context(), id)
	})
}

// Reject moves a listing into the rejected bucket. The response
// carries all three refreshed buckets.
//
// @Summary      Reject a listing
// @Tags         listings
// @Produce      json
// @Param        id   path      int  true  "Listing id"
// @Success      200  {object}  listingsPageResponse
// @Failure      401  {object}  map[string]string
// @Router       /listings/{id}/reject [post]
func (h *ListingsHandler) Reject(c echo.Context) error {
	return h.mutation(c, func(lc *service.ListingsController, id int) error {
		return lc.Reject(c.Request().Context(), id)
	})
}

// Delete removes a listing. Requires confirm=1, otherwise a 409 with a
// confirmation prompt comes back and no request reaches the backend.
//
// @Summary      Delete a listing
// @Tags         listings
// @Produce      json
// @Param        id       path   int     true   "Listing id"
// @Param        confirm  query  string  false  "Must be 1 to proceed"
// @Success      200  {object}  listingsPageResponse
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /listings/{id} [delete]
func (h *ListingsHandler) Delete(c echo.Context) error {
	return h.mutation(c, func(lc *service.ListingsController, id int) error {
		return lc.Delete(c.Request().Context(), id, confirmed(c))
	})
}

// mutation runs one moderation action and responds with all three
// refreshed buckets, seeded from the caller's current table parameters
// so the refresh lands on the page the staff member is looking at.
func (h *ListingsHandler) mutation(c echo.Context, action func(*service.ListingsController, int) error) error {
	sess, sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	lc := service.NewListingsController(h.backend, sess.Token, h.log)
	lc.Approved.Seed(groupQuery(c, "approved_"))
	lc.Pending.Seed(groupQuery(c, "pending_"))
	lc.Rejected.Seed(groupQuery(c, "rejected_"))
	if err := action(lc, id); err != nil {
		if handleAuthFailure(c, h.sessions, sid, err) {
			return domain.ErrSessionExpired
		}
		return err
	}
	return c.JSON(http.StatusOK, listingsPageResponse{
		Approved: groupView(lc.Approved, listingColumns()),
		Pending:  groupView(lc.Pending, listingColumns()),
		Rejected: groupView(lc.Rejected, listingColumns()),
	})
}
