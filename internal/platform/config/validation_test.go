package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration for testing.
func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "fortune",
			Version: "1.0.0",
		},
		Database: DatabaseConfig{
			Name: "fortunes",
		},
		Log: LogConfig{
			Level:  "error",
			Format: "text",
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_AppConfig(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Name = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.name is required")
	})

	t.Run("missing version", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Version = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.version is required")
	})
}

func TestConfig_Validate_DatabaseConfig(t *testing.T) {
	tests := []struct {
		name    string
		dbName  string
		wantErr string
	}{
		{name: "plain base name", dbName: "fortunes"},
		{name: "missing name", dbName: "", wantErr: "database.name is required"},
		{name: "name with slash", dbName: "../fortunes", wantErr: "database.name must be a base name"},
		{name: "name with backslash", dbName: `dir\fortunes`, wantErr: "database.name must be a base name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Database.Name = tt.dbName

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_LogConfig(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		t.Run("level "+level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Log.Level = level
			assert.NoError(t, cfg.Validate())
		})
	}

	t.Run("invalid level", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.Level = "verbose"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.level must be one of")
	})

	t.Run("invalid format", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.Format = "xml"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.format must be one of")
	})
}

func TestConfig_Validate_LogFileConfig(t *testing.T) {
	t.Run("enabled without path", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File.Enabled = true

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.file.path is required when")
	})

	t.Run("max size too large", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File.MaxSizeMB = 4096

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.file.maxsizemb must be at most 1024")
	})
}

func TestConfig_Validate_TelemetryConfig(t *testing.T) {
	t.Run("disabled - endpoint not required", func(t *testing.T) {
		cfg := validConfig()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("enabled - endpoint required", func(t *testing.T) {
		cfg := validConfig()
		cfg.Telemetry.Enabled = true
		cfg.Telemetry.ServiceName = "fortune"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telemetry.endpoint")
	})

	t.Run("enabled - invalid endpoint URL", func(t *testing.T) {
		cfg := validConfig()
		cfg.Telemetry.Enabled = true
		cfg.Telemetry.Endpoint = "not-a-url"
		cfg.Telemetry.ServiceName = "fortune"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telemetry.endpoint must be a valid URL")
	})

	t.Run("enabled with valid config", func(t *testing.T) {
		cfg := validConfig()
		cfg.Telemetry.Enabled = true
		cfg.Telemetry.Endpoint = "http://localhost:4317"
		cfg.Telemetry.ServiceName = "fortune"
		cfg.Telemetry.SamplingRate = 0.5

		assert.NoError(t, cfg.Validate())
	})

	t.Run("sampling rate bounds", func(t *testing.T) {
		tests := []struct {
			rate    float64
			wantErr bool
		}{
			{0.0, false},
			{1.0, false},
			{-0.1, true},
			{1.1, true},
		}

		for _, tt := range tests {
			t.Run(fmt.Sprintf("rate_%v", tt.rate), func(t *testing.T) {
				cfg := validConfig()
				cfg.Telemetry.SamplingRate = tt.rate

				err := cfg.Validate()
				if tt.wantErr {
					require.Error(t, err)
					assert.Contains(t, err.Error(), "telemetry.samplingrate")
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestConfig_Validate_MetricsConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Metrics.Textfile = "/tmp/fortune.txt"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics.textfile must end with .prom")

	cfg.Metrics.Textfile = "/tmp/fortune.prom"
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := &Config{
		App:      AppConfig{Version: "1.0.0"},
		Database: DatabaseConfig{Path: "/srv/fortunes"},
		Log:      LogConfig{Level: "loud"},
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "app.name")
	assert.Contains(t, errStr, "database.name")
	assert.Contains(t, errStr, "log.level")
}

func TestConfig_Validate_ZeroSectionsReportFields(t *testing.T) {
	err := (&Config{}).Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "app.name is required")
	assert.Contains(t, errStr, "database.name is required")
	assert.Contains(t, errStr, "log.level is required")
	assert.NotContains(t, errStr, "database is required")
}

func TestFormatFieldPath(t *testing.T) {
	tests := []struct {
		namespace string
		expected  string
	}{
		{"Config.App.Name", "app.name"},
		{"Config.Database.Name", "database.name"},
		{"Config.Log.File.Path", "log.file.path"},
		{"Config.Telemetry.SamplingRate", "telemetry.samplingrate"},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFieldPath(tt.namespace))
		})
	}
}
