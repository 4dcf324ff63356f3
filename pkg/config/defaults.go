package config

import (
	"strings"

	"github.com/marmos91/bufreader/internal/bytesize"
)

// DefaultMaxSize is the default cap on input size.
const DefaultMaxSize = 64 * bytesize.MiB

// ApplyDefaults fills zero-valued fields with defaults and normalizes
// case-insensitive values. Explicit values are preserved.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyInputDefaults(&cfg.Input)
	applyOutputDefaults(&cfg.Output)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	cfg.Format = strings.ToLower(cfg.Format)

	// stdout carries read results
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

func applyInputDefaults(cfg *InputConfig) {
	if cfg.MaxSize == 0 {
		cfg.MaxSize = DefaultMaxSize
	}
	if cfg.Encoding == "" {
		cfg.Encoding = "utf8"
	}
}

func applyOutputDefaults(cfg *OutputConfig) {
	if cfg.Format == "" {
		cfg.Format = "table"
	}
	cfg.Format = strings.ToLower(cfg.Format)
}

// GetDefaultConfig returns a Config with all defaults applied.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
