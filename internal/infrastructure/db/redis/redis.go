// Package redis holds the gateway's Redis wiring: the connection
// helper and the session token store.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultPingTimeout = 5 * time.Second
	// The session workload is tiny key lookups on the request path, so
	// commands get a short deadline instead of the client default.
	defaultReadTimeout = 500 * time.Millisecond
)

// Config captures the settings for establishing the session store
// connection.
type Config struct {
	Addr string
	DB   int
	// PingTimeout bounds the startup connectivity check.
	PingTimeout time.Duration
	// ReadTimeout bounds individual commands; zero applies the
	// session-store default.
	ReadTimeout time.Duration
}

// Connect initialises a Redis client for the session store and
// validates connectivity with a ping before the gateway starts
// accepting requests.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = defaultPingTimeout
	}
	readTimeout := cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = defaultReadTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		ReadTimeout: readTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
