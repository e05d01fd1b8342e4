package config_test

import (
	"testing"

	"github.com/alkime/faders/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.EnvProduction, cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.InDelta(t, 4.0, cfg.FastScrollFactor, 0)
	assert.False(t, cfg.ReleaseOnBlur)
	assert.Equal(t, 11, cfg.TickCount)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FAST_SCROLL_FACTOR", "10")
	t.Setenv("RELEASE_ON_BLUR", "true")
	t.Setenv("TICK_COUNT", "0")
	t.Setenv("LOG_FILE", "faders.log")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.InDelta(t, 10.0, cfg.FastScrollFactor, 0)
	assert.True(t, cfg.ReleaseOnBlur)
	assert.Equal(t, 0, cfg.TickCount)
	assert.Equal(t, "faders.log", cfg.LogFile)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{name: "fast factor below one", key: "FAST_SCROLL_FACTOR", value: "0.5"},
		{name: "negative ticks", key: "TICK_COUNT", value: "-1"},
		{name: "unparsable bool", key: "RELEASE_ON_BLUR", value: "sometimes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := config.LoadConfig()
			assert.Error(t, err)
		})
	}
}
