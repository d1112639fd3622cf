package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_DefaultValues tests that hardcoded defaults are applied correctly.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "fortune", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, DefaultDatabaseName, cfg.Database.Name)
	assert.Empty(t, cfg.Database.Path)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.InDelta(t, 1.0, cfg.Telemetry.SamplingRate, 0.0001)
	assert.Empty(t, cfg.Metrics.Textfile)

	require.NoError(t, cfg.Validate())
}

// TestLoad_EnvVarOverrides tests that environment variables override defaults.
func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("FORTUNE_DATABASE_PATH", "/srv/quotes/fortunes")
	t.Setenv("FORTUNE_LOG_LEVEL", "debug")
	t.Setenv("FORTUNE_LOG_FILE_MAX_SIZE", "42")
	t.Setenv("FORTUNE_METRICS_TEXTFILE", "/var/lib/node_exporter/fortune.prom")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/srv/quotes/fortunes", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 42, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, "/var/lib/node_exporter/fortune.prom", cfg.Metrics.Textfile)
}

// TestLoad_UnknownEnvVarsIgnored tests that unrelated FORTUNE_ variables are skipped.
func TestLoad_UnknownEnvVarsIgnored(t *testing.T) {
	t.Setenv("FORTUNE_CONFIG", "/nowhere.yaml")
	t.Setenv("FORTUNE_NOT_A_KEY", "x")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
}

// TestLoad_BoolEnvVar tests that boolean environment variables are parsed correctly.
func TestLoad_BoolEnvVar(t *testing.T) {
	t.Setenv("FORTUNE_TELEMETRY_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Telemetry.Enabled)
}

// TestLoad_YAMLFile tests that a config file sits between defaults and env vars.
func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fortune.yaml")
	content := []byte(`
database:
  name: quotes
log:
  level: info
  format: pretty
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("FORTUNE_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "quotes", cfg.Database.Name)
	assert.Equal(t, "pretty", cfg.Log.Format)
	assert.Equal(t, "warn", cfg.Log.Level, "env should win over file")
}

// TestLoad_MissingFile tests that a missing config file falls back to defaults.
func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultDatabaseName, cfg.Database.Name)
}

// TestLoad_InvalidYAML tests that a malformed config file is an error.
func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unterminated"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

// TestLoad_LogFileDefaults tests that log file defaults are set correctly.
func TestLoad_LogFileDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.True(t, cfg.Log.File.Compress)
}

func TestEnvKeyMapper(t *testing.T) {
	mapper := envKeyMapper()

	assert.Equal(t, "log.level", mapper("FORTUNE_LOG_LEVEL"))
	assert.Equal(t, "log.file.max_backups", mapper("FORTUNE_LOG_FILE_MAX_BACKUPS"))
	assert.Equal(t, "telemetry.sampling_rate", mapper("FORTUNE_TELEMETRY_SAMPLING_RATE"))
	assert.Empty(t, mapper("FORTUNE_CONFIG"))
}
