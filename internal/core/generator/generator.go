// Package generator turns a validated configuration into a downloadable
// project archive.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/droidgen/droidgen/internal/archive"
	"github.com/droidgen/droidgen/internal/core/project"
	"github.com/droidgen/droidgen/internal/defs"
	"github.com/droidgen/droidgen/pkg/models"
)

// ErrArchiveFailed wraps failures while packing the assembled project.
var ErrArchiveFailed = errors.New("generator: archive failed")

// Archive is a finished project archive on disk.
type Archive struct {
	Path     string          // Location of the ZIP file.
	Filename string          // Suggested download name, e.g. "DemoApp.zip".
	Result   *project.Result // Assembly summary. ProjectDir no longer exists.
}

// Remove deletes the archive file. It is safe to call more than once.
func (a *Archive) Remove() error {
	if err := os.Remove(a.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Generator runs one assemble-and-archive cycle per call. It is safe for
// concurrent use; each call works in its own scratch directory.
type Generator struct {
	assembler  project.Assembler
	scratchDir string
	logger     *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithScratchDir sets the parent of per-call scratch directories. The empty
// string selects os.TempDir.
func WithScratchDir(dir string) Option {
	return func(g *Generator) {
		g.scratchDir = dir
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator that builds projects with asm.
func New(asm project.Assembler, opts ...Option) *Generator {
	g := &Generator{
		assembler: asm,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate assembles cfg in a fresh scratch directory and packs it into a
// temporary ZIP file. The caller owns the returned archive and must call
// Remove when done with it.
func (g *Generator) Generate(ctx context.Context, cfg *models.ProjectConfig) (*Archive, error) {
	scratch, err := os.MkdirTemp(g.scratchDir, defs.ScratchPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: scratch dir: %w", project.ErrGenerationFailed, err)
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			g.logger.Warn("failed to remove scratch dir", "dir", scratch, "error", err)
		}
	}()

	folder := cfg.Project.FolderName()
	res, err := g.assembler.Assemble(ctx, cfg, filepath.Join(scratch, folder))
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		g.logger.Warn("generation warning", "project", cfg.Project.Name, "warning", w)
	}

	f, err := os.CreateTemp(g.scratchDir, defs.ArchivePrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchiveFailed, err)
	}
	dest := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(dest)
		return nil, fmt.Errorf("%w: %w", ErrArchiveFailed, err)
	}

	if err := archive.ZipToFile(ctx, res.ProjectDir, dest); err != nil {
		os.Remove(dest)
		return nil, fmt.Errorf("%w: %w", ErrArchiveFailed, err)
	}

	g.logger.Info("archive ready",
		"project", cfg.Project.Name,
		"archive", dest,
		"files", len(res.CreatedFiles),
	)
	return &Archive{
		Path:     dest,
		Filename: folder + defs.ZipExt,
		Result:   res,
	}, nil
}
