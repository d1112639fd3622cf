// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override configuration.
const EnvPrefix = "FORTUNE_"

// ConfigFileEnv names the environment variable holding an optional YAML config path.
const ConfigFileEnv = EnvPrefix + "CONFIG"

// Default configuration values.
const (
	// DefaultDatabaseName is the base name of the quote database beside the executable.
	DefaultDatabaseName = "fortunes"

	// DefaultLogLevel keeps a normal run silent on standard error.
	DefaultLogLevel = "error"

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 10

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"`
	Database  DatabaseConfig  `koanf:"database"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name    string `koanf:"name"    validate:"required"`
	Version string `koanf:"version" validate:"required"`
}

// DatabaseConfig locates the quote database.
type DatabaseConfig struct {
	// Name is joined to the executable's directory when Path is empty.
	Name string `koanf:"name" validate:"required,excludesall=/\\"`

	// Path, when set, is used as-is instead of the executable-relative location.
	Path string `koanf:"path"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// MetricsConfig contains Prometheus textfile export settings.
type MetricsConfig struct {
	// Textfile is where counters are written at exit, for node_exporter's
	// textfile collector. Empty disables the export.
	Textfile string `koanf:"textfile" validate:"omitempty,endswith=.prom"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":    "fortune",
		"app.version": "dev",

		"database.name": DefaultDatabaseName,
		"database.path": "",

		"log.level":            DefaultLogLevel,
		"log.format":           "text",
		"log.file.enabled":     false,
		"log.file.path":        "",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "fortune",
		"telemetry.sampling_rate": 1.0,

		"metrics.textfile": "",
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (FORTUNE_ prefix)
//  2. YAML file at path, when path is non-empty and the file exists
//  3. Default values
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		err = loadFileIfExists(k, path)
		if err != nil {
			return nil, fmt.Errorf("loading config file %q: %w", path, err)
		}
	}

	err = k.Load(env.Provider(EnvPrefix, ".", envKeyMapper()), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKeyMapper maps FORTUNE_LOG_FILE_MAX_SIZE to log.file.max_size by
// matching against the known keys, since key segments may contain
// underscores. Unknown variables map to "" and are skipped.
func envKeyMapper() func(string) string {
	known := make(map[string]string)
	for key := range defaults() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(s string) string {
		return known[strings.ToLower(strings.TrimPrefix(s, EnvPrefix))]
	}
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
