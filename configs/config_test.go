package configs_test

import (
	"testing"
	"time"

	"github.com/gruzdev-dev/codex-employees/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("GRPC_PORT", "")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("RATE_LIMIT_BURST", "")

	cfg, err := configs.NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, ":8080", cfg.HTTPAddr())
	assert.Equal(t, 15*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "9090", cfg.GRPC.Port)
	assert.Zero(t, cfg.RateLimit.RPS)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "18080")
	t.Setenv("GRPC_PORT", "19090")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_RPS", "12.5")
	t.Setenv("RATE_LIMIT_BURST", "5")

	cfg, err := configs.NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "18080", cfg.HTTP.Port)
	assert.Equal(t, ":19090", cfg.GRPCAddr())
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.InDelta(t, 12.5, cfg.RateLimit.RPS, 0.0001)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
}

func TestNewConfig_InvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")

	cfg, err := configs.NewConfig()

	assert.Nil(t, cfg)
	assert.EqualError(t, err, `invalid HTTP_PORT value "eighty"`)
}

func TestNewConfig_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("GRPC_PORT", "9090")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "soon")

	cfg, err := configs.NewConfig()

	assert.Nil(t, cfg)
	assert.Error(t, err)
}
