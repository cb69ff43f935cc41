package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort            = "8080"
	defaultUpstreamURL     = "https://api.inference.example.com/v1/chat/completions"
	defaultAPIVersion      = "2024-06-01"
	defaultModel           = "gpt-4o-mini"
	defaultUpstreamTimeout = "60s"
	defaultReviewsKey      = "reviews"
)

// Config is the full runtime configuration, sourced from the environment.
// Handlers receive it explicitly; there is no package-level state.
type Config struct {
	Env             string
	Port            string
	UpstreamURL     string
	UpstreamAPIKey  string
	APIVersion      string
	DefaultModel    string
	UpstreamTimeout time.Duration

	// Store selection: RedisAddr wins when set, otherwise DatabaseURL
	// (postgres:// or a sqlite path, ":memory:" included).
	RedisAddr     string
	RedisPassword string
	DatabaseURL   string

	// ReviewsKey is the single logical key the review collection lives under.
	ReviewsKey string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.Env = strings.ToLower(appEnv)

	cfg.Port = getEnv("PORT", defaultPort)
	cfg.UpstreamURL = strings.TrimSpace(getEnv("UPSTREAM_URL", defaultUpstreamURL))
	cfg.UpstreamAPIKey = strings.TrimSpace(os.Getenv("UPSTREAM_API_KEY"))
	cfg.APIVersion = strings.TrimSpace(getEnv("UPSTREAM_API_VERSION", defaultAPIVersion))
	cfg.DefaultModel = strings.TrimSpace(getEnv("DEFAULT_MODEL", defaultModel))

	var err error
	cfg.UpstreamTimeout, err = parseDurationEnv("UPSTREAM_TIMEOUT", defaultUpstreamTimeout)
	if err != nil {
		return nil, err
	}

	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", "reviewrelay.db"))
	cfg.ReviewsKey = strings.TrimSpace(getEnv("REVIEWS_KEY", defaultReviewsKey))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.UpstreamURL == "" {
		return fmt.Errorf("UPSTREAM_URL must not be empty")
	}
	if cfg.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be > 0")
	}
	if cfg.ReviewsKey == "" {
		return fmt.Errorf("REVIEWS_KEY must not be empty")
	}
	if isProdLike(cfg.Env) && cfg.UpstreamAPIKey == "" {
		return fmt.Errorf("in prod/release UPSTREAM_API_KEY must be set")
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
