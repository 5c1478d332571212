package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/roomiefies/admin-gateway/internal/core/ports"
)

// Context keys set by Guard for downstream handlers.
const (
	ContextKeySession   = "session"
	ContextKeySessionID = "session_id"
)

// LoginPath is where unauthenticated browser requests are sent.
const LoginPath = "/login"

// Guard resolves the session cookie against the session service and
// blocks the request until the session is known good. Downstream
// handlers can rely on c.Get(ContextKeySession) being a valid,
// authenticated *domain.Session.
func Guard(sessions ports.SessionService, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ReadSessionID(c, secret)
			if sid == "" {
				return deny(c)
			}

			sess, err := sessions.Resolve(c.Request().Context(), sid)
			if err != nil {
				// Resolve already tore the stored token down; drop the
				// cookie so the browser stops presenting a dead id.
				ClearSessionCookie(c)
				return deny(c)
			}

			c.Set(ContextKeySession, sess)
			c.Set(ContextKeySessionID, sid)
			return next(c)
		}
	}
}

func deny(c echo.Context) error {
	if wantsHTML(c) {
		return c.Redirect(http.StatusSeeOther, LoginPath)
	}
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error":    "unauthorized",
		"redirect": LoginPath,
	})
}

func wantsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}
