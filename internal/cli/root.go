// ABOUTME: Root command for the gcinspect CLI
// ABOUTME: Wires subcommands and loads dumps through the heapdump registry

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prateek/arenagc/graph"
	"github.com/prateek/arenagc/heapdump"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gcinspect",
		Short:         "Inspect arena snapshots",
		Long:          "gcinspect reads JSON dumps of an arena snapshot and explains what the collector retains and why.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newVersionCmd())
	root.AddCommand(newSummaryCmd())
	root.AddCommand(newPathsCmd())
	root.AddCommand(newRetainedCmd())
	root.AddCommand(newConvertCmd())
	return root
}

// Execute runs the gcinspect command line.
func Execute() error {
	return newRootCmd().Execute()
}

func loadDump(path string) (graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := heapdump.Open(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
