package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "gpt-4o-mini", cfg.DefaultModel)
	require.Equal(t, 60*time.Second, cfg.UpstreamTimeout)
	require.Equal(t, "reviews", cfg.ReviewsKey)
	require.Empty(t, cfg.RedisAddr)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_MODEL", "claude-sonnet")
	t.Setenv("UPSTREAM_TIMEOUT", "5s")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "claude-sonnet", cfg.DefaultModel)
	require.Equal(t, 5*time.Second, cfg.UpstreamTimeout)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadProdRequiresAPIKey(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("UPSTREAM_API_KEY", "sk-test")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Env)
}
