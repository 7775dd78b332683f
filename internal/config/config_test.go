package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_CreatesDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("RORILINGO_HOME", home)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.ActiveProfile)
	assert.Equal(t, DefaultAPIBase, cfg.GetAPIBase())
	assert.Equal(t, DefaultModel, cfg.GetModel())
	assert.False(t, cfg.IsValid())
	assert.Equal(t, 10*time.Second, cfg.Settings.Timeout())
	assert.Equal(t, 600*time.Millisecond, cfg.Settings.RetryDelay())
	assert.Equal(t, 10, cfg.Settings.HistoryLimit)

	info, err := os.Stat(filepath.Join(home, ".rorilingo", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfig_ReadsProfiles(t *testing.T) {
	home := t.TempDir()
	t.Setenv("RORILINGO_HOME", home)

	dir := filepath.Join(home, ".rorilingo")
	require.NoError(t, os.MkdirAll(dir, 0755))
	data, err := json.Marshal(map[string]any{
		"profiles": map[string]any{
			"work": map[string]any{"api_base": "https://translate.example", "api_key": "sk-test", "model": "m"},
		},
		"active_profile": "missing",
		"settings":       map[string]any{"history_limit": 5},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), data, 0600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "work", cfg.ActiveProfile)
	assert.Equal(t, "https://translate.example", cfg.GetAPIBase())
	assert.True(t, cfg.IsValid())
	assert.Equal(t, 5, cfg.Settings.HistoryLimit)
	// unspecified settings keep their defaults
	assert.Equal(t, 50, cfg.Settings.InputHistoryLimit)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RORILINGO_HOME", t.TempDir())
	t.Setenv("RORILINGO_API_BASE", "http://env.example")
	t.Setenv("RORILINGO_STORE", "sqlite")
	t.Setenv("RORILINGO_TIMEOUT_MS", "2500")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://env.example", cfg.GetAPIBase())
	assert.Equal(t, "sqlite", cfg.Settings.StoreBackend)
	assert.Equal(t, 2500*time.Millisecond, cfg.Settings.Timeout())
}

func TestSave_RoundTrip(t *testing.T) {
	t.Setenv("RORILINGO_HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.Profiles["other"] = Profile{APIBase: "http://other", Model: "x"}
	cfg.ActiveProfile = "other"
	require.NoError(t, cfg.Save())

	again, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "other", again.ActiveProfile)
	assert.Equal(t, "http://other", again.GetAPIBase())
}

func TestEnsureDefaultProfile(t *testing.T) {
	cfg := &Config{Profiles: map[string]Profile{}}
	cfg.EnsureDefaultProfile()
	assert.Equal(t, "default", cfg.ActiveProfile)
	assert.Contains(t, cfg.Profiles, "default")
}

func TestProfileNames_Sorted(t *testing.T) {
	cfg := &Config{Profiles: map[string]Profile{"zeta": {}, "alpha": {}, "default": {}}}
	assert.Equal(t, []string{"alpha", "default", "zeta"}, cfg.ProfileNames(""))
	assert.Equal(t, []string{"alpha", "zeta"}, cfg.ProfileNames("default"))
}

func TestSave_KeepsEnvOverridesOutOfFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("RORILINGO_HOME", home)
	t.Setenv("RORILINGO_STORE", "memory")
	t.Setenv("RORILINGO_TIMEOUT_MS", "2500")
	t.Setenv("RORILINGO_API_BASE", "http://env.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "memory", cfg.Settings.StoreBackend)

	cfg.ActiveProfile = "default"
	require.NoError(t, cfg.Save())

	data, err := os.ReadFile(filepath.Join(home, ".rorilingo", "config.json"))
	require.NoError(t, err)
	var onDisk Config
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, "file", onDisk.Settings.StoreBackend)
	assert.Equal(t, 10000, onDisk.Settings.TimeoutMs)
	assert.NotContains(t, string(data), "env.example")

	// the in-memory config still carries the overrides
	assert.Equal(t, "memory", cfg.Settings.StoreBackend)
}
