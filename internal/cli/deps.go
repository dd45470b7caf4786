// Package cli provides the Cobra command tree and dependency wiring for the
// droidgen CLI. This file defines the Dependencies struct (Composition
// Root) that wires the domain packages together.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/droidgen/droidgen/internal/config"
	"github.com/droidgen/droidgen/internal/core/generator"
	"github.com/droidgen/droidgen/internal/core/project"
	"github.com/droidgen/droidgen/internal/template"
	"github.com/droidgen/droidgen/internal/ui"
	"github.com/droidgen/droidgen/pkg/version"
)

// Dependencies holds the services used by CLI commands. It is the only
// place where concrete types are instantiated and wired together.
type Dependencies struct {
	Config     *config.Config
	ConfigPath string
	Loader     *config.Loader
	Registry   *template.Registry
	Logger     *slog.Logger
	Theme      *ui.Theme
	Headless   *ui.HeadlessManager
	Progress   ui.Progress
}

// Options controls how InitDependencies builds the dependency graph.
type Options struct {
	// ConfigPath is the service settings file. Empty means config.DefaultPath.
	ConfigPath string
	// Verbose enables logging for commands that are quiet by default.
	Verbose bool
	// Service marks long-running commands, which always log.
	Service bool
	NoColor bool
	// LogOutput receives log records. Required when logging is enabled.
	LogOutput io.Writer
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies loads the service settings and wires all domain
// dependencies. It should be called once per command invocation.
func InitDependencies(opts Options) error {
	logging := opts.Verbose || opts.Service
	out := opts.LogOutput
	if !logging || out == nil {
		out = io.Discard
	}

	// Settings decide the final handler, so loading logs through a
	// bootstrap text handler.
	bootstrap := slog.New(slog.NewTextHandler(out, nil))

	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}
	loader := config.NewLoader(config.WithLoaderLogger(bootstrap))
	cfg, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("settings %s: %w", path, err)
	}

	registry, err := template.NewDefaultRegistry()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	noColor := opts.NoColor || ui.NoColorRequested()
	theme := ui.NewTheme(noColor)
	hm := ui.NewHeadlessManager()
	if noColor {
		hm.ForceHeadless(true)
	}

	deps = &Dependencies{
		Config:     cfg,
		ConfigPath: path,
		Loader:     loader,
		Registry:   registry,
		Logger:     cfg.Log.NewLogger(out),
		Theme:      theme,
		Headless:   hm,
		Progress:   ui.NewProgress(theme, hm),
	}
	return nil
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// NewAssembler builds a project assembler from the current settings.
// Extra options are applied after the settings-derived ones.
func (d *Dependencies) NewAssembler(opts ...project.Option) project.Assembler {
	base := []project.Option{
		project.WithFontDir(d.Config.Generator.FontDir),
		project.WithLogger(d.Logger),
		project.WithContextOptions(template.WithGeneratorVersion(version.GetVersion())),
	}
	return project.NewAssembler(d.Registry, append(base, opts...)...)
}

// NewGenerator builds an archive generator from the current settings.
func (d *Dependencies) NewGenerator() *generator.Generator {
	return generator.New(d.NewAssembler(),
		generator.WithScratchDir(d.Config.Generator.ScratchDir),
		generator.WithLogger(d.Logger),
	)
}
