package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/roomiefies/admin-gateway/docs"
	"github.com/roomiefies/admin-gateway/internal/api/handler"
	"github.com/roomiefies/admin-gateway/internal/api/middleware"
	"github.com/roomiefies/admin-gateway/internal/core/ports"
	"github.com/roomiefies/admin-gateway/internal/infrastructure/config"
	"github.com/roomiefies/admin-gateway/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, backend ports.Backend, sessions ports.SessionService, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("admingw"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(sessions, cfg.SessionSecret, cfg.Redis.SessionTTL)
	usersHandler := handler.NewUsersHandler(backend, sessions, logger.Get())
	listingsHandler := handler.NewListingsHandler(backend, sessions, logger.Get())
	dashboardHandler := handler.NewDashboardHandler(backend, sessions, logger.Get())
	guard := middleware.Guard(sessions, cfg.SessionSecret)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// --- Guarded pages ---
	g := e.Group("", guard)
	g.GET("/dashboard", dashboardHandler.Show)

	g.GET("/users", usersHandler.List)
	g.GET("/users/:id", usersHandler.Get)
	g.POST("/users/:id/approval", usersHandler.ToggleApproval)
	g.POST("/users/:id/admin", usersHandler.ToggleAdmin)
	g.DELETE("/users/:id", usersHandler.Delete)

	g.GET("/listings", listingsHandler.List)
	g.GET("/listings/:id", listingsHandler.Get)
	g.POST("/listings/:id/approve", listingsHandler.Approve)
	g.POST("/listings/:id/reject", listingsHandler.Reject)
	g.DELETE("/listings/:id", listingsHandler.Delete)

	// --- Operational surface (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb)

	e.GET("/healthz", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/healthz/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
