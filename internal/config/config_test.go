package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ESPORTSRANKER_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, filepath.Join(home, ".local", "share", "esportsranker", "esports_ranker.db"), cfg.Database.Path)
	require.Equal(t, filepath.Join(home, ".local", "share", "esportsranker", "esportsranker.log"), cfg.Log.Path)
	require.Equal(t, "02 Jan 2006", cfg.UI.DateFormat)
	require.Equal(t, "Local", cfg.UI.Timezone)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	err := os.WriteFile(cfgPath, []byte("[database]\npath = \"/tmp/override.db\"\n\n[ui]\ndate_format = \"2006-01-02\"\n"), 0o644)
	require.NoError(t, err)
	t.Setenv("HOME", dir)
	t.Setenv("ESPORTSRANKER_CONFIG", cfgPath)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "/tmp/override.db", cfg.Database.Path)
	require.Equal(t, "2006-01-02", cfg.UI.DateFormat)
	// untouched keys keep defaults
	require.Equal(t, "Local", cfg.UI.Timezone)
}

func TestLoadEnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ESPORTSRANKER_CONFIG", "")
	t.Setenv("ESPORTSRANKER_DATABASE_PATH", "/tmp/env.db")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/env.db", cfg.Database.Path)
}

func TestLocation(t *testing.T) {
	t.Parallel()

	require.Equal(t, time.Local, Config{UI: UIConfig{Timezone: "Local"}}.Location())
	require.Equal(t, time.Local, Config{UI: UIConfig{Timezone: ""}}.Location())
	require.Equal(t, time.Local, Config{UI: UIConfig{Timezone: "Not/AZone"}}.Location())

	loc := Config{UI: UIConfig{Timezone: "Asia/Manila"}}.Location()
	require.Equal(t, "Asia/Manila", loc.String())
}
