package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/droidgen/droidgen/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{standaloneAnnotation: ""},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "droidgen %s\n", version.GetFullVersion())
			return err
		},
	}
}
