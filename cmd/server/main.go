package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/roomiefies/admin-gateway/internal/api"
	"github.com/roomiefies/admin-gateway/internal/core/service"
	"github.com/roomiefies/admin-gateway/internal/infrastructure/backend"
	"github.com/roomiefies/admin-gateway/internal/infrastructure/config"
	"github.com/roomiefies/admin-gateway/internal/infrastructure/db/redis"
	"github.com/roomiefies/admin-gateway/pkg/logger"
)

// @title        Roomiefies Admin Gateway
// @version      1.0
// @description  Staff-facing gateway composing moderation views over the platform admin API.
// @BasePath     /
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.SessionSecret == "" {
		log.Fatal().Msg("SESSION_SECRET is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	tokens := redis.NewTokenStore(rdb, cfg.Redis.SessionTTL)
	client := backend.New(cfg.Backend.BaseURL, cfg.Backend.AdminPrefix, log)
	sessions := service.NewSessionService(client, tokens, log)

	e := api.NewRouter(cfg, client, sessions, rdb)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("admin gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	log.Info().Msg("shutdown complete")
}
