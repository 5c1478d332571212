package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string `env:"PORT,           default=8080"`
	Env           string `env:"ENV,            default=development"`
	LogLevel      string `env:"LOG_LEVEL,      default=info"`
	SessionSecret string `env:"SESSION_SECRET"`

	Backend BackendConfig
	Redis   RedisConfig
}

// BackendConfig locates the platform's admin REST API. The admin path
// prefix is fixed in practice; only the host varies per environment.
type BackendConfig struct {
	BaseURL     string `env:"BACKEND_BASE_URL,     default=http://localhost:8000"`
	AdminPrefix string `env:"BACKEND_ADMIN_PREFIX, default=/api/admin"`
}

type RedisConfig struct {
	Addr       string        `env:"REDIS_ADDR,  default=localhost:6379"`
	DB         int           `env:"REDIS_DB,    default=0"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=720h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
