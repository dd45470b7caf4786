package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/droidgen/droidgen/internal/config"
	"github.com/droidgen/droidgen/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP generation service",
		Long: `Serve answers POST /generate uploads with a ZIP archive of the generated
project and GET /health with a status document.

Flags override the settings file and DROIDGEN_* environment variables.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{serviceAnnotation: ""},
		RunE:        runServe,
	}
	cmd.Flags().String("host", "", "Listen host (default from settings)")
	cmd.Flags().Int("port", 0, "Listen port (default from settings)")
	cmd.Flags().String("font-dir", "", "Directory holding font families")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	if err := applyServeFlags(cmd, deps.Config); err != nil {
		return err
	}

	srv := server.New(deps.Config.Server, deps.NewGenerator(), server.WithLogger(deps.Logger))
	deps.Logger.Info("starting server",
		"addr", deps.Config.Server.Addr(),
		"font_dir", deps.Config.Generator.FontDir,
	)
	return srv.Run(cmd.Context())
}

// applyServeFlags copies explicitly set flags into cfg and revalidates it.
func applyServeFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Server.Host = getStringFlag(cmd, "host")
	}
	if flags.Changed("port") {
		port, err := flags.GetInt("port")
		if err != nil {
			return err
		}
		cfg.Server.Port = port
	}
	if flags.Changed("font-dir") {
		cfg.Generator.FontDir = getStringFlag(cmd, "font-dir")
	}
	return config.Validate(cfg)
}
