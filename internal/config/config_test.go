package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Addr:            ":8080",
		LogLevel:        "info",
		ViewTTL:         30 * time.Minute,
		ShutdownTimeout: 10 * time.Second,
		HTMXSrc:         "https://unpkg.com/htmx.org@2.0.4",
		TailwindSrc:     "https://cdn.tailwindcss.com",
	}, cfg)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "landing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landing.yaml")
	doc := "addr: 127.0.0.1:9000\nlog_level: debug\nview_ttl: 5m\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	t.Setenv("LANDING_ADDR", ":7000")
	t.Setenv("LANDING_DEV", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr, "environment wins over the file")
	assert.True(t, cfg.Dev)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.ViewTTL)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("LANDING_LOG_LEVEL", "loud")
	t.Setenv("LANDING_VIEW_TTL", "0s")
	_, err := Load("")
	require.Error(t, err)
	assert.ErrorContains(t, err, "log_level")
	assert.ErrorContains(t, err, "view_ttl must be positive")
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [\n"), 0o600))
	_, err := Load(path)
	assert.ErrorContains(t, err, "reading config")
}
