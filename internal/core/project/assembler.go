package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/droidgen/droidgen/internal/defs"
	"github.com/droidgen/droidgen/internal/template"
	"github.com/droidgen/droidgen/pkg/models"
)

// Result summarizes one assembled project.
type Result struct {
	ProjectDir   string   // Absolute path of the project root.
	CreatedDirs  []string // Directories created, relative to ProjectDir.
	CreatedFiles []string // Files written, relative to ProjectDir.
	FontFiles    []string // Font files copied into res/font.
	Warnings     []string // Non-fatal problems, e.g. missing fonts.
}

// Assembler writes a complete Android project for a configuration.
type Assembler interface {
	// Assemble creates projectDir and writes every planned artifact into it.
	// On failure nothing created by this call is left behind.
	Assemble(ctx context.Context, cfg *models.ProjectConfig, projectDir string) (*Result, error)
}

// Option configures an Assembler.
type Option func(*projectAssembler)

// WithFontDir sets the directory holding one subdirectory of .ttf files per
// font family.
func WithFontDir(dir string) Option {
	return func(a *projectAssembler) {
		a.fontDir = dir
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(a *projectAssembler) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithContextOptions appends options applied to every template.Context.
func WithContextOptions(opts ...template.ContextOption) Option {
	return func(a *projectAssembler) {
		a.ctxOpts = append(a.ctxOpts, opts...)
	}
}

// WithProgress registers fn to be called after each planned file is written.
func WithProgress(fn func(path string)) Option {
	return func(a *projectAssembler) {
		a.progress = fn
	}
}

// projectAssembler is the concrete implementation of Assembler.
type projectAssembler struct {
	registry *template.Registry
	fontDir  string
	ctxOpts  []template.ContextOption
	progress func(path string)
	logger   *slog.Logger
}

// NewAssembler creates an Assembler that renders through registry.
func NewAssembler(registry *template.Registry, opts ...Option) Assembler {
	a := &projectAssembler{
		registry: registry,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble creates the project tree.
func (a *projectAssembler) Assemble(ctx context.Context, cfg *models.ProjectConfig, projectDir string) (res *Result, err error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	root, err := filepath.Abs(filepath.Clean(projectDir))
	if err != nil {
		return nil, fmt.Errorf("%w: resolve %s: %w", ErrGenerationFailed, projectDir, err)
	}
	if err := ensureEmpty(root); err != nil {
		return nil, err
	}

	a.logger.Info("assembling project",
		"root", root,
		"name", cfg.Project.Name,
		"package", cfg.Project.Package,
		"toolkit", cfg.Configuration.UIToolkit,
		"language", cfg.Configuration.Language,
	)

	defer func() {
		if err != nil {
			if rmErr := os.RemoveAll(root); rmErr != nil {
				a.logger.Warn("failed to remove partial project", "root", root, "error", rmErr)
			}
			res = nil
		}
	}()

	result := &Result{ProjectDir: root}

	// Step 1: directory skeleton
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	if err := a.createDirs(root, cfg, result); err != nil {
		return nil, fmt.Errorf("%w: create directories: %w", ErrGenerationFailed, err)
	}

	// Step 2: rendered artifacts
	tmplCtx := template.NewContext(cfg, a.ctxOpts...)
	for _, entry := range Plan(cfg) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
		}
		if err := a.writeEntry(root, entry, tmplCtx); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrGenerationFailed, entry.Path, err)
		}
		result.CreatedFiles = append(result.CreatedFiles, entry.Path)
		if a.progress != nil {
			a.progress(entry.Path)
		}
	}

	// Step 3: optional fonts
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	switch {
	case cfg.Configuration.FontName == models.FontNone:
	case a.fontDir == "":
		a.logger.Debug("font directory not configured, skipping fonts", "font", cfg.Configuration.FontName)
	default:
		copied, err := copyFonts(a.fontDir, string(cfg.Configuration.FontName), filepath.Join(root, filepath.FromSlash(fontResDir)))
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("fonts: %s", err))
			a.logger.Warn("font copy failed", "font", cfg.Configuration.FontName, "error", err)
		}
		for _, name := range copied {
			result.FontFiles = append(result.FontFiles, fontResDir+"/"+name)
		}
	}

	a.logger.Info("project assembled",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
		"fonts", len(result.FontFiles),
		"warnings", len(result.Warnings),
	)
	return result, nil
}

// createDirs creates the directory skeleton.
func (a *projectAssembler) createDirs(root string, cfg *models.ProjectConfig, result *Result) error {
	for _, dir := range Directories(cfg) {
		dirPath, err := resolve(root, dir)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dirPath, defs.DirPerm); err != nil {
			return fmt.Errorf("mkdir %s: %w", dirPath, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, dir)
	}
	return nil
}

// writeEntry renders one artifact and writes it under root.
func (a *projectAssembler) writeEntry(root string, entry Entry, tmplCtx *template.Context) error {
	destPath, err := resolve(root, entry.Path)
	if err != nil {
		return err
	}

	content, err := a.registry.Render(entry.Kind, tmplCtx, entry.RenderOptions()...)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(destPath), defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(destPath), err)
	}
	if err := os.WriteFile(destPath, content, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", destPath, err)
	}
	return nil
}

// ensureEmpty accepts a missing or empty directory.
func ensureEmpty(root string) error {
	entries, err := os.ReadDir(root)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	case len(entries) > 0:
		return fmt.Errorf("%w: %s", ErrProjectExists, root)
	}
	return nil
}

// resolve joins a slash-separated relative path onto root and verifies the
// result stays inside root.
func resolve(root, relPath string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	abs := filepath.Join(root, cleaned)
	if !strings.HasPrefix(abs, root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrPathTraversal, relPath)
	}
	return abs, nil
}
