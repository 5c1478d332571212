package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/roomiefies/admin-gateway/internal/api/middleware"
	"github.com/roomiefies/admin-gateway/internal/core/domain"
	"github.com/roomiefies/admin-gateway/internal/core/ports"
)

// AuthHandler owns the login and logout endpoints. On success the
// session id travels to the browser inside a signed HTTP-only cookie;
// the backend bearer token itself never leaves the gateway.
type AuthHandler struct {
	sessions ports.SessionService
	secret   string
	ttl      time.Duration
}

func NewAuthHandler(sessions ports.SessionService, secret string, ttl time.Duration) *AuthHandler {
	return &AuthHandler{sessions: sessions, secret: secret, ttl: ttl}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User *domain.User `json:"user"`
}

// Login authenticates staff credentials against the platform backend.
//
// @Summary      Staff login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Staff credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sid, sess, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	if err := middleware.WriteSessionCookie(c, h.secret, sid, h.ttl); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{User: sess.User})
}

// Logout tears the session down and expires the cookie. It succeeds
// even when no session exists, so the browser can always reach a clean
// state.
//
// @Summary      Staff logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if sid := middleware.ReadSessionID(c, h.secret); sid != "" {
		h.sessions.Logout(c.Request().Context(), sid, "")
	}
	middleware.ClearSessionCookie(c)
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
