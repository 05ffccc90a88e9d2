package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_DefaultsWhenNoFileFound(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_SearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	writeConfig(t, dir, "log_level: info\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, "nmaptable.db", cfg.History.DBPath)
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `log_level: debug
history:
  enabled: true
  db_path: /var/lib/nmaptable/history.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "/var/lib/nmaptable/history.db", cfg.History.DBPath)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "log_level: info\n")
	t.Setenv("NMAPTABLE_LOG_LEVEL", "error")
	t.Setenv("NMAPTABLE_HISTORY_ENABLED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.History.Enabled)
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `log_level: chatty
history:
  enabled: true
  db_path: ""
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
	assert.Contains(t, err.Error(), `log_level "chatty"`)
	assert.Contains(t, err.Error(), "history.db_path cannot be empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "upper case level", mutate: func(c *Config) { c.LogLevel = "DEBUG" }},
		{name: "empty level", mutate: func(c *Config) { c.LogLevel = "" }, wantErr: true},
		{name: "history without path", mutate: func(c *Config) {
			c.History.Enabled = true
			c.History.DBPath = ""
		}, wantErr: true},
		{name: "disabled history without path", mutate: func(c *Config) { c.History.DBPath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, WriteDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "log_level: warn")
	assert.Contains(t, string(data), "db_path: nmaptable.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
