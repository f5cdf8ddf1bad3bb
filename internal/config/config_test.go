package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missing(t *testing.T) string {
	return filepath.Join(t.TempDir(), "none.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(missing(t))
	require.NoError(t, err)
	assert.Equal(t, "four", cfg.Variant)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.Workers)
	assert.False(t, cfg.Reveal)
	assert.Zero(t, cfg.SeatWindCode())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("YAKUSTAT_VARIANT", "three")
	t.Setenv("YAKUSTAT_WORKERS", "4")
	t.Setenv("YAKUSTAT_REVEAL", "true")
	t.Setenv("YAKUSTAT_SEAT_WIND", "D")
	t.Setenv("YAKUSTAT_LOG_LEVEL", "debug")

	cfg, err := Load(missing(t))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Variant:  "three",
		Workers:  4,
		Reveal:   true,
		SeatWind: "D",
		LogLevel: "debug",
	}, cfg)
	assert.Equal(t, byte('D'), cfg.SeatWindCode())
}

func TestLoadDotenvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("YAKUSTAT_DB=/tmp/from-file.db\nYAKUSTAT_WORKERS=2\n"), 0o644))
	t.Setenv("YAKUSTAT_WORKERS", "8")
	t.Cleanup(func() { os.Unsetenv("YAKUSTAT_DB") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-file.db", cfg.DB)
	assert.Equal(t, 8, cfg.Workers)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"negative workers", "YAKUSTAT_WORKERS", "-1"},
		{"non-numeric workers", "YAKUSTAT_WORKERS", "many"},
		{"long seat wind", "YAKUSTAT_SEAT_WIND", "East"},
		{"bad bool", "YAKUSTAT_REVEAL", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load(missing(t))
			assert.Error(t, err)
		})
	}
}
