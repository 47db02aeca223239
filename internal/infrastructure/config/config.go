package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	AuthBaseURL     string `env:"AUTH_BASE_URL,     default=http://localhost:8080"`
	CurrencyBaseURL string `env:"CURRENCY_BASE_URL, default=http://localhost:8080/api/currency"`
	CatalogBaseURL  string `env:"CATALOG_BASE_URL,  default=http://localhost:8080"`

	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=true"`

	// MetricsAddr enables the /metrics listener when set (e.g. ":9102").
	MetricsAddr string `env:"METRICS_ADDR"`

	// BannerTTL is how long transient result banners stay before the
	// deferred clear fires.
	BannerTTL time.Duration `env:"BANNER_TTL, default=5s"`

	Store StoreConfig
}

// StoreConfig selects and configures the durable session storage backend.
type StoreConfig struct {
	// Backend is "file" or "redis".
	Backend string `env:"STORE_BACKEND, default=file"`
	// Path overrides the default session file location (file backend only).
	Path string `env:"STORE_PATH"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr   string `env:"REDIS_ADDR, default=localhost:6379"`
	DB     int    `env:"REDIS_DB,   default=0"`
	Prefix string `env:"REDIS_PREFIX, default=demo-console:"`
}

// Load reads configuration from the environment using go-envconfig. A .env
// file in the working directory is applied first when present.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
