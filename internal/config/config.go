// Package config loads and validates application configuration from
// environment variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Config keys. Each key is also read from the upper-cased environment
// variable of the same name (port → PORT, log_level → LOG_LEVEL).
const (
	keyPort         = "port"
	keyLogLevel     = "log_level"
	keyCORSOrigins  = "cors_origins"
	keyMaxBodyBytes = "max_body_bytes"
)

// Config holds all configuration values for the trip manager.
// Values are populated by Load.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps the size of HTTP request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load builds a Config from defaults, then configFile (if non-empty), then
// environment variables, later sources winning.
// Returns an error if the file cannot be read or a value is invalid.
func Load(configFile string) (Config, error) {
	v := viper.New()
	v.SetDefault(keyPort, "8080")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyCORSOrigins, "http://localhost:5173")
	v.SetDefault(keyMaxBodyBytes, int64(1<<20))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config.Load: read %s: %w", configFile, err)
		}
	}

	cfg := Config{
		Port:         v.GetString(keyPort),
		LogLevel:     strings.ToLower(v.GetString(keyLogLevel)),
		CORSOrigins:  splitCSV(v.GetStringSlice(keyCORSOrigins)),
		MaxBodyBytes: v.GetInt64(keyMaxBodyBytes),
	}

	var problems []error
	if cfg.Port == "" {
		problems = append(problems, errors.New("PORT must not be empty"))
	}
	if _, err := cfg.SlogLevel(); err != nil {
		problems = append(problems, err)
	}
	if cfg.MaxBodyBytes <= 0 {
		problems = append(problems, fmt.Errorf("MAX_BODY_BYTES must be a positive integer, got %q", v.GetString(keyMaxBodyBytes)))
	}
	if len(problems) > 0 {
		return Config{}, fmt.Errorf("config.Load: %w", errors.Join(problems...))
	}

	return cfg, nil
}

// SlogLevel parses LogLevel into a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return 0, err
		}
		return level, nil
	default:
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
}

// splitCSV flattens entries that may themselves be comma-separated (an env
// var arrives as one string, a YAML list as many) into a trimmed slice,
// ignoring empty entries.
func splitCSV(entries []string) []string {
	var out []string
	for _, entry := range entries {
		for _, part := range strings.Split(entry, ",") {
			if t := strings.TrimSpace(part); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}
