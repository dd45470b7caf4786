package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root settings aggregate.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Generator GeneratorConfig `yaml:"generator"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig configures the HTTP generation service.
type ServerConfig struct {
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	// MaxConcurrent caps simultaneous generations. Zero means no limit.
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// GeneratorConfig configures project generation.
type GeneratorConfig struct {
	// FontDir holds one subdirectory of .ttf files per font family.
	FontDir string `yaml:"font_dir"`
	// ScratchDir is the parent of per-request work directories. Empty means
	// the system temp directory.
	ScratchDir string `yaml:"scratch_dir"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
