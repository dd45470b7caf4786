package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Unexpanded variables that must not appear in path settings.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),        // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`),      // {{VAR}}
	regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`), // $VAR
}

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks the settings for correctness.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateLog(&cfg.Log)...)
	errs = append(errs, validateDynamicTokens(cfg)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateServer(s *ServerConfig) []ValidationError {
	var errs []ValidationError

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, ValidationError{
			Field:   "server.port",
			Message: "must be between 1 and 65535",
			Value:   s.Port,
			Wrapped: ErrInvalidConfig,
		})
	}
	if s.MaxUploadBytes <= 0 {
		errs = append(errs, ValidationError{
			Field:   "server.max_upload_bytes",
			Message: "must be positive",
			Value:   s.MaxUploadBytes,
			Wrapped: ErrInvalidConfig,
		})
	}
	if s.ReadTimeout < 0 {
		errs = append(errs, ValidationError{
			Field:   "server.read_timeout",
			Message: "must not be negative",
			Value:   s.ReadTimeout,
			Wrapped: ErrInvalidConfig,
		})
	}
	if s.WriteTimeout < 0 {
		errs = append(errs, ValidationError{
			Field:   "server.write_timeout",
			Message: "must not be negative",
			Value:   s.WriteTimeout,
			Wrapped: ErrInvalidConfig,
		})
	}
	if s.MaxConcurrent < 0 {
		errs = append(errs, ValidationError{
			Field:   "server.max_concurrent",
			Message: "must not be negative",
			Value:   s.MaxConcurrent,
			Wrapped: ErrInvalidConfig,
		})
	}
	for i, origin := range s.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("server.allowed_origins[%d]", i),
				Message: "must not be empty",
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	return errs
}

func validateLog(l *LogConfig) []ValidationError {
	var errs []ValidationError

	if !slices.Contains(validLogLevels, strings.ToLower(l.Level)) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: "must be one of: " + strings.Join(validLogLevels, ", "),
			Value:   l.Level,
			Wrapped: ErrInvalidLogLevel,
		})
	}
	if !slices.Contains(validLogFormats, strings.ToLower(l.Format)) {
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: "must be one of: " + strings.Join(validLogFormats, ", "),
			Value:   l.Format,
			Wrapped: ErrInvalidLogFormat,
		})
	}
	return errs
}

// validateDynamicTokens rejects path settings that still carry shell or
// template variables.
func validateDynamicTokens(cfg *Config) []ValidationError {
	fields := []struct {
		name  string
		value string
	}{
		{"generator.font_dir", cfg.Generator.FontDir},
		{"generator.scratch_dir", cfg.Generator.ScratchDir},
	}

	var errs []ValidationError
	for _, f := range fields {
		for _, pattern := range dynamicTokenPatterns {
			if m := pattern.FindString(f.value); m != "" {
				errs = append(errs, ValidationError{
					Field:   f.name,
					Message: fmt.Sprintf("contains unexpanded token %s", m),
					Value:   f.value,
					Wrapped: ErrDynamicToken,
				})
				break
			}
		}
	}
	return errs
}
