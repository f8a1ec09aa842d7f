package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "file", cfg.SessionBackend)
	assert.Equal(t, 2*time.Second, cfg.BookingRedirectDelay)
	assert.Equal(t, 3*time.Second, cfg.EmergencySearchDelay)
	assert.Equal(t, 3*time.Second, cfg.EmergencyDispatchDelay)
	assert.Equal(t, "#0e95e9", cfg.StatusBarColor)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("EMERGENCY_SEARCH_DELAY", "250ms")
	t.Setenv("MAX_REQUESTS_PER_MIN", "7")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.SessionBackend)
	assert.Equal(t, 250*time.Millisecond, cfg.EmergencySearchDelay)
	assert.Equal(t, 7, cfg.MaxRequestsPerMin)
}

func TestIsProduction(t *testing.T) {
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	AppConfig.Env = "production"
	assert.True(t, IsProduction())
	AppConfig.Env = "development"
	assert.False(t, IsProduction())
}
