package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/droidgen/droidgen/pkg/version"
)

// Persistent flag names.
const (
	flagConfig  = "config"
	flagVerbose = "verbose"
	flagNoColor = "no-color"
)

// Command annotations read by initDeps.
const (
	// serviceAnnotation marks commands that log even without --verbose.
	serviceAnnotation = "droidgen/service"
	// standaloneAnnotation marks commands that run without settings.
	standaloneAnnotation = "droidgen/standalone"
)

// newRootCmd builds the full command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "droidgen",
		Short: "Android project generator",
		Long: `droidgen turns a JSON or YAML project configuration into a ready-to-build
Android Studio project.

It runs as an HTTP service that answers uploads with a ZIP archive, or as a
CLI that writes the archive or the project tree locally.`,
		Version:           version.GetVersion(),
		SilenceUsage:      true,
		PersistentPreRunE: initDeps,
	}
	root.SetVersionTemplate(fmt.Sprintf("droidgen %s\n", version.GetFullVersion()))

	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "Service settings file (default: droidgen.yaml)")
	pf.BoolP(flagVerbose, "v", false, "Log to stderr")
	pf.Bool(flagNoColor, false, "Disable colors and animations")

	root.AddCommand(
		newServeCmd(),
		newGenerateCmd(),
		newPlanCmd(),
		newNewCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

// initDeps wires dependencies from the persistent flags unless a test has
// installed them already.
func initDeps(cmd *cobra.Command, _ []string) error {
	if deps != nil {
		return nil
	}
	if _, ok := cmd.Annotations[standaloneAnnotation]; ok {
		return nil
	}
	_, service := cmd.Annotations[serviceAnnotation]
	return InitDependencies(Options{
		ConfigPath: getStringFlag(cmd, flagConfig),
		Verbose:    getBoolFlag(cmd, flagVerbose),
		Service:    service,
		NoColor:    getBoolFlag(cmd, flagNoColor),
		LogOutput:  cmd.ErrOrStderr(),
	})
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
