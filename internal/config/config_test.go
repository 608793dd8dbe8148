package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ganot/punchcard/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Log.Level)
	require.NotEmpty(t, cfg.Store.Path)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := "store:\n  path: /tmp/tracker.db\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/tracker.db", cfg.Store.Path)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PUNCHCARD_DB_PATH", "/elsewhere/projects.db")
	t.Setenv("PUNCHCARD_LOG_LEVEL", "warn")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, "/elsewhere/projects.db", cfg.Store.Path)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	cfg.Store.Path = "/selected/projects.db"
	require.NoError(t, config.Save(path, cfg))

	reloaded, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "/selected/projects.db", reloaded.Store.Path)
}

func TestParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: [broken"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}
