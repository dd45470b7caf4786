package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/droidgen/droidgen/internal/cli/wizard"
	"github.com/droidgen/droidgen/internal/defs"
	"github.com/droidgen/droidgen/internal/schema"
	"github.com/droidgen/droidgen/internal/ui"
	"github.com/droidgen/droidgen/pkg/models"
	"github.com/droidgen/droidgen/pkg/version"
)

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a project configuration file",
		Long: `New asks for the project settings in an interactive wizard and writes the
answers as a configuration file for "droidgen generate". The file is YAML
when the output name ends in .yaml or .yml, JSON otherwise.

Without a terminal, or with --non-interactive, the defaults are written
with --name and --package applied.`,
		Args: cobra.NoArgs,
		RunE: runNew,
	}
	cmd.Flags().StringP("output", "o", defs.ConfigJSON, "Configuration file to write")
	cmd.Flags().String("name", "", "Application name")
	cmd.Flags().String("package", "", "Application package, e.g. com.example.app")
	cmd.Flags().Bool("non-interactive", false, "Skip the wizard and write defaults")
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}

func runNew(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	dest := getStringFlag(cmd, "output")
	if !getBoolFlag(cmd, "force") {
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", dest)
		}
	}

	base := schema.NewDefaultConfig()
	if name := getStringFlag(cmd, "name"); name != "" {
		base.Project.Name = name
	}
	if pkg := getStringFlag(cmd, "package"); pkg != "" {
		base.Project.Package = pkg
	}

	cfg := base
	if !getBoolFlag(cmd, "non-interactive") && ui.StdinIsTerminal() && !deps.Headless.IsHeadless() {
		answered, err := wizard.Run(wizard.DefaultQuestions(base), base)
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), deps.Theme.Muted.Render("Cancelled."))
				return nil
			}
			return err
		}
		cfg = answered
	}
	cfg.GeneratorVersion = version.GetVersion()

	data, err := encodeProjectConfig(cfg, dest)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(dest, data, defs.FilePerm); err != nil {
		return fmt.Errorf("write configuration: %w", err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), deps.Theme.Success.Render("Wrote "+dest))
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), deps.Theme.Muted.Render("Next: droidgen generate "+dest))
	return nil
}

// encodeProjectConfig serializes cfg in the format implied by dest and
// checks that the result decodes back into a valid configuration.
func encodeProjectConfig(cfg *models.ProjectConfig, dest string) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode configuration: %w", err)
	}
	if _, err := schema.Decode(data); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(dest))
	if ext == ".yaml" || ext == ".yml" {
		out, err := yaml.JSONToYAML(data)
		if err != nil {
			return nil, fmt.Errorf("encode configuration: %w", err)
		}
		return out, nil
	}
	return append(data, '\n'), nil
}
