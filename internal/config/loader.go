package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/droidgen/droidgen/internal/defs"
)

// Loader reads the settings file and applies environment overrides.
type Loader struct {
	logger *slog.Logger
	getenv func(string) string
	loaded bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLoaderLogger sets the logger used for fallback warnings.
func WithLoaderLogger(l *slog.Logger) LoaderOption {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithGetenv replaces os.Getenv for environment overrides.
func WithGetenv(fn func(string) string) LoaderOption {
	return func(ld *Loader) {
		if fn != nil {
			ld.getenv = fn
		}
	}
}

// NewLoader creates a new Loader instance.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		getenv: os.Getenv,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the settings file at path and returns a Config with defaults
// applied for missing fields. A missing file yields defaults with a warning.
// Invalid YAML is an error. Environment overrides are applied last.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	l.loaded = false

	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case errors.Is(err, os.ErrNotExist):
		l.logger.Warn("settings file not found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
		}
		l.loaded = true
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Loaded reports whether the last Load read a settings file.
func (l *Loader) Loaded() bool {
	return l.loaded
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have higher priority than file-based values.
func (l *Loader) applyEnvOverrides(cfg *Config) error {
	if port := l.getenv(EnvPort); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return &ValidationErrors{Errors: []ValidationError{{
				Field:   EnvPort,
				Message: "must be an integer",
				Value:   port,
				Wrapped: ErrInvalidConfig,
			}}}
		}
		cfg.Server.Port = n
	}
	if dir := l.getenv(EnvFontDir); dir != "" {
		cfg.Generator.FontDir = dir
	}
	if dir := l.getenv(EnvScratchDir); dir != "" {
		cfg.Generator.ScratchDir = dir
	}
	if level := l.getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}
	return nil
}

// Save writes cfg to path as YAML, atomically.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return atomicWrite(path, data)
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".droidgen-settings-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(defs.FilePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
