package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_ENV", "nonexistent")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, int64(32768), cfg.ReadLimit)
	assert.Equal(t, 54*time.Second, cfg.PingPeriod)
	assert.Equal(t, 10, cfg.MaxRoomSize)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, []string{"stun:stun.l.google.com:19302"}, cfg.StunURLs)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_ENV", "nonexistent")
	t.Setenv("HUDDLE_PORT", "9090")
	t.Setenv("HUDDLE_MAX_ROOM_SIZE", "2")
	t.Setenv("HUDDLE_MODE", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 2, cfg.MaxRoomSize, "one-to-one variant")
	assert.Equal(t, "debug", cfg.Mode)
}

func TestLoadRejectsTinyRoomCap(t *testing.T) {
	t.Setenv("CONFIG_ENV", "nonexistent")
	t.Setenv("HUDDLE_MAX_ROOM_SIZE", "1")

	_, err := Load()
	require.Error(t, err)
}
