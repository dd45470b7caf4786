package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/droidgen/droidgen/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage service settings",
	}

	initCmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a settings file with the default values",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{standaloneAnnotation: ""},
		RunE:        runConfigInit,
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing settings file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings after file and environment overrides",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := getStringFlag(cmd, flagConfig)
	if path == "" {
		path = config.DefaultPath
	}
	if !getBoolFlag(cmd, "force") {
		_, err := os.Stat(path)
		if err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("check settings file: %w", err)
		}
	}
	if err := config.Save(path, config.NewDefaultConfig()); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	data, err := yaml.Marshal(deps.Config)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	source := deps.ConfigPath
	if deps.Loader == nil || !deps.Loader.Loaded() {
		source = "defaults"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", source)
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
