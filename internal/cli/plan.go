package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/droidgen/droidgen/internal/core/project"
	"github.com/droidgen/droidgen/internal/permission"
	"github.com/droidgen/droidgen/internal/ui"
	"github.com/droidgen/droidgen/pkg/models"
)

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <config.json|config.yaml>",
		Short: "List what generate would write, without writing anything",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlan,
	}
}

func runPlan(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	cfg, err := loadProjectConfig(args[0])
	if err != nil {
		return err
	}

	out, err := ui.RenderMarkdown(planMarkdown(cfg), deps.Theme, deps.Headless)
	if err != nil {
		return fmt.Errorf("render plan: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// planMarkdown describes the directories, files and manifest entries of
// the project cfg would produce.
func planMarkdown(cfg *models.ProjectConfig) string {
	c := &cfg.Configuration
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", cfg.Project.FolderName())
	fmt.Fprintf(&b, "- **Package:** `%s`\n", cfg.Project.Package)
	fmt.Fprintf(&b, "- **SDK:** min %d, target %d, compile %d\n",
		cfg.Project.MinSdk, cfg.Project.TargetSdk, cfg.Project.CompileSdk)
	fmt.Fprintf(&b, "- **Stack:** %s, %s, %s build\n", c.Language, c.UIToolkit, c.BuildFormat)
	if c.FontName.IsCustom() {
		fmt.Fprintf(&b, "- **Font:** %s\n", c.FontName)
	}

	b.WriteString("\n## Directories\n\n")
	for _, d := range project.Directories(cfg) {
		fmt.Fprintf(&b, "- `%s/`\n", d)
	}

	b.WriteString("\n## Files\n\n")
	for _, e := range project.Plan(cfg) {
		fmt.Fprintf(&b, "- `%s` (%s)\n", e.Path, e.Kind)
	}

	res := permission.Resolve(c.Permissions, cfg.Project.TargetSdk)
	if len(res.Permissions) > 0 || len(res.Features) > 0 {
		b.WriteString("\n## Manifest\n\n")
		for _, p := range res.Permissions {
			if p.MaxSdkVersion > 0 {
				fmt.Fprintf(&b, "- uses-permission `%s` (maxSdk %d)\n", p.Name, p.MaxSdkVersion)
				continue
			}
			fmt.Fprintf(&b, "- uses-permission `%s`\n", p.Name)
		}
		for _, f := range res.Features {
			fmt.Fprintf(&b, "- uses-feature `%s`\n", f)
		}
	}
	return b.String()
}
