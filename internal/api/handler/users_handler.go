package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/roomiefies/admin-gateway/internal/core/domain"
	"github.com/roomiefies/admin-gateway/internal/core/ports"
	"github.com/roomiefies/admin-gateway/internal/core/service"
	"github.com/roomiefies/admin-gateway/internal/view/table"
)

// UsersHandler serves the account-moderation page: two independent
// tables (regular users, admins) plus the approval/admin/delete
// actions. Table parameters are prefixed per group (users_page,
// admins_sort_by, ...) so both tables share one URL.
type UsersHandler struct {
	backend  ports.Backend
	sessions ports.SessionService
	log      zerolog.Logger
}

func NewUsersHandler(backend ports.Backend, sessions ports.SessionService, log zerolog.Logger) *UsersHandler {
	return &UsersHandler{backend: backend, sessions: sessions, log: log}
}

type usersPageResponse struct {
	Users  table.View `json:"users"`
	Admins table.View `json:"admins"`
}

func userColumns() []table.Column[domain.User] {
	return []table.Column[domain.User]{
		{Key: "id", Title: "ID", Sortable: true},
		{Key: "name", Title: "Name", Sortable: true},
		{Key: "email", Title: "Email", Sortable: true},
		{Key: "onayli", Title: "Approved", Render: func(u domain.User) string {
			return yesNo(u.Approved.Bool())
		}},
		{Key: "character_test_done", Title: "Test", Render: func(u domain.User) string {
			return yesNo(u.TestCompleted.Bool())
		}},
		{Key: "created_at", Title: "Registered", Sortable: true},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// List renders both account tables.
//
// @Summary      Account moderation page
// @Tags         users
// @Produce      json
// @Param        users_page    query  int     false  "Regular users page"
// @Param        users_search  query  string  false  "Regular users search"
// @Param        admins_page   query  int     false  "Admins page"
// @Success      200  {object}  usersPageResponse
// @Failure      401  {object}  map[string]string
// @Router       /users [get]
func (h *UsersHandler) List(c echo.Context) error {
	sess, sid, err := ctxSession(c)
	if err != nil {
		return err
	}

	uc := service.NewUsersController(h.backend, sess.Token, h.log)
	uc.Regular.Seed(groupQuery(c, "users_"))
	uc.Admins.Seed(groupQuery(c, "admins_"))
	uc.LoadAll(c.Request().Context())

	for _, err := range []error{uc.Regular.Err(), uc.Admins.Err()} {
		if handleAuthFailure(c, h.sessions, sid, err) {
			return domain.ErrSessionExpired
		}
	}

	return c.JSON(http.StatusOK, usersPageResponse{
		Users:  groupView(uc.Regular, userColumns()),
		Admins: groupView(uc.Admins, userColumns()),
	})
}

// Get returns one account with its profile attributes.
//
// @Summary      Account detail
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UsersHandler) Get(c echo.Context) error {
	sess, sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.backend.GetUser(c.Request().Context(), sess.Token, id)
	if err != nil {
		if handleAuthFailure(c, h.sessions, sid, err) {
			return domain.ErrSessionExpired
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ToggleApproval flips the staff-approval flag on an account. The
// response carries both refreshed tables, since the change is visible
// in either group.
//
// @Summary      Toggle account approval
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  usersPageResponse
// @Failure      401  {object}  map[string]string
// @Router       /users/{id}/approval [post]
func (h *UsersHandler) ToggleApproval(c echo.Context) error {
	return h.mutation(c, func(uc *service.UsersController, id int) error {
		return uc.ToggleApproval(c.Request().Context(), id)
	})
}

// ToggleAdmin grants or revokes the administrator flag. The account
// moves between the two groups, so the response carries both refreshed
// tables.
//
// @Summary      Toggle administrator flag
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  usersPageResponse
// @Failure      401  {object}  map[string]string
// @Router       /users/{id}/admin [post]
func (h *UsersHandler) ToggleAdmin(c echo.Context) error {
	return h.mutation(c, func(uc *service.UsersController, id int) error {
		return uc.ToggleAdmin(c.Request().Context(), id)
	})
}

// Delete removes an account. The request must carry confirm=1; without
// it a 409 with a confirmation prompt comes back and nothing is sent
// to the backend.
//
// @Summary      Delete an account
// @Tags         users
// @Produce      json
// @Param        id       path   int     true   "User id"
// @Param        confirm  query  string  false  "Must be 1 to proceed"
// @Success      200  {object}  usersPageResponse
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UsersHandler) Delete(c echo.Context) error {
	return h.mutation(c, func(uc *service.UsersController, id int) error {
		return uc.Delete(c.Request().Context(), id, confirmed(c))
	})
}

// mutation runs one moderation action and responds with both refreshed
// tables, seeded from the caller's current table parameters so the
// refresh lands on the page the staff member is looking at.
func (h *UsersHandler) mutation(c echo.Context, action func(*service.UsersController, int) error) error {
	sess, sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	uc := service.NewUsersController(h.backend, sess.Token, h.log)
	uc.Regular.Seed(groupQuery(c, "users_"))
	uc.Admins.Seed(groupQuery(c, "admins_"))
	if err := action(uc, id); err != nil {
		if handleAuthFailure(c, h.sessions, sid, err) {
			return domain.ErrSessionExpired
		}
		return err
	}
	return c.JSON(http.StatusOK, usersPageResponse{
		Users:  groupView(uc.Regular, userColumns()),
		Admins: groupView(uc.Admins, userColumns()),
	})
}

// groupView renders one state group as a table, folding the group's
// own error into the view instead of failing the whole page.
func groupView[T any](g *service.Collection[T], cols []table.Column[T]) table.View {
	q := g.Query()
	v := table.Build(g.Page(), cols, table.Options{
		Loading: g.Loading(),
		Search:  q.Search,
		Sort:    q.Sort,
	})
	if err := g.Err(); err != nil {
		v.Error = domain.ErrorMessage(err)
	}
	return v
}
