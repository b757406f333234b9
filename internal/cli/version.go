// ABOUTME: Version subcommand
// ABOUTME: Prints the module version and build metadata

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prateek/arenagc"
)

// Set via -ldflags at build time.
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gcinspect %s (commit: %s, built: %s)\n", arenagc.Version, Commit, BuildDate)
		},
	}
}
