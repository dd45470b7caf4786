package config

import (
	"time"

	"github.com/droidgen/droidgen/internal/defs"
)

// Default value constants to avoid magic numbers and strings.
const (
	DefaultHost           = "0.0.0.0"
	DefaultPort           = 8000
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 2 * time.Minute
	DefaultMaxUploadBytes = 1 << 20
	DefaultMaxConcurrent  = 8

	DefaultFontDir = "fonts"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Environment variables that override file values.
const (
	EnvPort       = "DROIDGEN_PORT"
	EnvFontDir    = "DROIDGEN_FONT_DIR"
	EnvScratchDir = "DROIDGEN_SCRATCH_DIR"
	EnvLogLevel   = "DROIDGEN_LOG_LEVEL"
)

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server:    NewDefaultServerConfig(),
		Generator: GeneratorConfig{FontDir: DefaultFontDir},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// NewDefaultServerConfig returns the default HTTP server settings.
func NewDefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:           DefaultHost,
		Port:           DefaultPort,
		ReadTimeout:    DefaultReadTimeout,
		WriteTimeout:   DefaultWriteTimeout,
		MaxUploadBytes: DefaultMaxUploadBytes,
		AllowedOrigins: []string{"*"},
		MaxConcurrent:  DefaultMaxConcurrent,
	}
}

// DefaultPath is the settings file looked up when none is given.
const DefaultPath = defs.SettingsYAML
