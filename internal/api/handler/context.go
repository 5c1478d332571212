package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/roomiefies/admin-gateway/internal/api/middleware"
	"github.com/roomiefies/admin-gateway/internal/core/domain"
	"github.com/roomiefies/admin-gateway/internal/core/ports"
)

// ctxSession extracts the session injected by the Guard middleware and
// performs a fast-fail check before any backend call: an authenticated
// session must be present, or the middleware did not run on this route.
func ctxSession(c echo.Context) (*domain.Session, string, error) {
	sess, _ := c.Get(middleware.ContextKeySession).(*domain.Session)
	if !sess.Authenticated() {
		return nil, "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	sid, _ := c.Get(middleware.ContextKeySessionID).(string)
	return sess, sid, nil
}

// handleAuthFailure tears the local session down when a backend call
// came back 401: the persisted token is dead, so the stored entry and
// the browser cookie both go. Returns true when it handled the error.
func handleAuthFailure(c echo.Context, sessions ports.SessionService, sid string, err error) bool {
	if !domain.IsAuthFailure(err) {
		return false
	}
	sessions.Invalidate(c.Request().Context(), sid)
	middleware.ClearSessionCookie(c)
	return true
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// confirmed reports whether the request carries the confirm flag that
// destructive actions require.
func confirmed(c echo.Context) bool {
	v := c.QueryParam("confirm")
	return v == "1" || v == "true" || v == "yes"
}

// groupQuery reads one state group's table parameters, each prefixed so
// several groups coexist on a single page URL (users_page, admins_page
// and so on). Absent or malformed values fall back to the defaults.
func groupQuery(c echo.Context, prefix string) domain.Query {
	q := domain.DefaultQuery()

	if n, err := strconv.Atoi(c.QueryParam(prefix + "page")); err == nil && n >= 1 {
		q.Page = n
	}
	if n, err := strconv.Atoi(c.QueryParam(prefix + "per_page")); err == nil {
		q.PerPage = n
	}
	q.Search = c.QueryParam(prefix + "search")
	if key := c.QueryParam(prefix + "sort_by"); key != "" {
		q.Sort.Key = key
		q.Sort.Desc = c.QueryParam(prefix+"sort_order") != "asc"
	}
	return q
}
