// ABOUTME: Paths subcommand
// ABOUTME: Explains why an object is retained by printing paths to roots

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prateek/arenagc/graph"
)

func newPathsCmd() *cobra.Command {
	var maxPaths int
	var dominators bool

	cmd := &cobra.Command{
		Use:   "paths <dump> <id>",
		Short: "Show why an object is retained",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadDump(args[0])
			if err != nil {
				return err
			}
			id, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid object id %q: %w", args[1], err)
			}
			obj := g.GetObject(graph.ObjID(id))
			if obj == nil {
				return fmt.Errorf("object %d not in dump", id)
			}

			out := cmd.OutOrStdout()
			paths := graph.PathsToRoots(g, obj.ID, maxPaths)
			if len(paths) == 0 {
				fmt.Fprintf(out, "%d (%s) is not reachable from any root\n", obj.ID, obj.Type)
				return nil
			}
			for _, p := range paths {
				fmt.Fprintln(out, formatPath(g, p.IDs))
			}

			if dominators {
				chain := graph.DominatorPath(graph.Dominators(g), obj.ID)
				fmt.Fprintf(out, "dominators: %s\n", formatPath(g, chain[:len(chain)-1]))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxPaths, "max", 3, "maximum number of paths to print")
	cmd.Flags().BoolVar(&dominators, "dominators", false, "also print the dominator chain")
	return cmd
}

func formatPath(g graph.Graph, ids []graph.ObjID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		if obj := g.GetObject(id); obj != nil {
			parts[i] = fmt.Sprintf("%d (%s)", id, obj.Type)
		} else {
			parts[i] = strconv.FormatUint(uint64(id), 10)
		}
	}
	return strings.Join(parts, " <- ")
}
