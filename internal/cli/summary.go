// ABOUTME: Summary subcommand
// ABOUTME: Reports object, root, edge, and collectable counts for a dump

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prateek/arenagc/graph"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <dump>",
		Short: "Count objects, roots, edges, and collectable objects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadDump(args[0])
			if err != nil {
				return err
			}

			var total, pinned uint64
			g.ForEachObject(func(obj *graph.Object) {
				total += obj.Size
				if obj.Pins > 0 {
					pinned++
				}
			})
			garbage := graph.Unreachable(g)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "objects:     %d\n", g.NumObjects())
			fmt.Fprintf(out, "roots:       %d\n", len(g.GetRoots().IDs))
			fmt.Fprintf(out, "pinned:      %d\n", pinned)
			fmt.Fprintf(out, "edges:       %d\n", graph.NumEdges(g))
			fmt.Fprintf(out, "bytes:       %d\n", total)
			fmt.Fprintf(out, "collectable: %d %v\n", len(garbage), garbage)
			return nil
		},
	}
}
