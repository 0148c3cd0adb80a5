package config

import (
	"fmt"
	"strings"
)

// ValidateConfig performs validation on the complete configuration
func ValidateConfig(config *Config) error {
	if err := config.Fixtures.Validate(); err != nil {
		return fmt.Errorf("fixtures validation failed: %w", err)
	}
	if err := config.Log.Validate(); err != nil {
		return fmt.Errorf("log validation failed: %w", err)
	}
	return nil
}

// Validate checks the fixture settings.
func (f *FixturesConfig) Validate() error {
	if f.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be positive, got %d", f.CacheSize)
	}
	if f.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", f.Workers)
	}
	switch f.Encoding {
	case "base58", "base64", "base64+zstd":
	default:
		return fmt.Errorf("invalid encoding %q (supported: base58, base64, base64+zstd)", f.Encoding)
	}
	return nil
}

// Validate checks the log settings.
func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid level %q (supported: debug, info, warn, error)", l.Level)
	}
	switch l.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid format %q (supported: console, json)", l.Format)
	}
	return nil
}
