package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/droidgen/droidgen/internal/core/project"
	"github.com/droidgen/droidgen/internal/defs"
	"github.com/droidgen/droidgen/internal/schema"
	"github.com/droidgen/droidgen/pkg/models"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <config.json|config.yaml>",
		Short: "Generate a project archive or tree from a configuration file",
		Long: `Generate reads a project configuration and writes the project as a ZIP
archive (default <ProjectName>.zip in the current directory) or, with --dir,
as a directory tree under the given directory.

Examples:
  droidgen generate app.json
  droidgen generate app.yaml -o build/app.zip
  droidgen generate app.json --dir ./projects`,
		Args: cobra.ExactArgs(1),
		RunE: runGenerate,
	}
	cmd.Flags().StringP("output", "o", "", "Archive path (default: <ProjectName>.zip)")
	cmd.Flags().String("dir", "", "Write the project tree under this directory instead of an archive")
	cmd.Flags().String("font-dir", "", "Directory holding font families (overrides settings)")
	cmd.Flags().Bool("force", false, "Overwrite an existing archive")
	cmd.MarkFlagsMutuallyExclusive("output", "dir")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	cfg, err := loadProjectConfig(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("font-dir") {
		deps.Config.Generator.FontDir = getStringFlag(cmd, "font-dir")
	}

	var warnings []string
	if dir := getStringFlag(cmd, "dir"); dir != "" {
		warnings, err = generateTree(cmd, cfg, dir)
	} else {
		warnings, err = generateArchive(cmd, cfg, getStringFlag(cmd, "output"), getBoolFlag(cmd, "force"))
	}
	if err != nil {
		return err
	}

	for _, w := range warnings {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), deps.Theme.Warning.Render("warning: "+w))
	}
	return nil
}

// loadProjectConfig reads and decodes a project configuration file.
func loadProjectConfig(path string) (*models.ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}
	cfg, err := schema.DecodeFile(path, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// generateTree assembles the project directly under dir.
func generateTree(cmd *cobra.Command, cfg *models.ProjectConfig, dir string) ([]string, error) {
	projectDir := filepath.Join(dir, cfg.Project.FolderName())

	tr := deps.Progress.Files("Writing "+cfg.Project.FolderName(), len(project.Plan(cfg)))
	asm := deps.NewAssembler(project.WithProgress(tr.Advance))
	res, err := asm.Assemble(cmd.Context(), cfg, projectDir)
	tr.Finish()
	if err != nil {
		return nil, err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), deps.Theme.Success.Render(
		fmt.Sprintf("Created %s (%d files, %d directories)", res.ProjectDir, len(res.CreatedFiles), len(res.CreatedDirs)),
	))
	return res.Warnings, nil
}

// generateArchive builds the archive in scratch space and moves it to dest.
func generateArchive(cmd *cobra.Command, cfg *models.ProjectConfig, dest string, force bool) ([]string, error) {
	if dest == "" {
		dest = cfg.Project.FolderName() + defs.ZipExt
	}
	if !force {
		if _, err := os.Stat(dest); err == nil {
			return nil, fmt.Errorf("%s already exists (use --force to overwrite)", dest)
		}
	}

	tr := deps.Progress.Busy("Generating " + cfg.Project.FolderName())
	archive, err := deps.NewGenerator().Generate(cmd.Context(), cfg)
	tr.Finish()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := archive.Remove(); err != nil {
			deps.Logger.Warn("failed to remove archive", "path", archive.Path, "error", err)
		}
	}()

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := moveFile(archive.Path, dest); err != nil {
		return nil, fmt.Errorf("write archive: %w", err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), deps.Theme.Success.Render(
		fmt.Sprintf("Wrote %s (%d files)", dest, len(archive.Result.CreatedFiles)),
	))
	return archive.Result.Warnings, nil
}

// moveFile renames src to dst, copying when they live on different
// filesystems.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defs.FilePerm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
