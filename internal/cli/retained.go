// ABOUTME: Retained subcommand
// ABOUTME: Ranks objects by the bytes a sweep would reclaim without them

package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/prateek/arenagc/graph"
)

func newRetainedCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "retained <dump>",
		Short: "List objects by retained size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadDump(args[0])
			if err != nil {
				return err
			}

			type entry struct {
				id   graph.ObjID
				size uint64
			}
			var entries []entry
			for id, size := range graph.RetainedSize(g) {
				entries = append(entries, entry{id, size})
			}
			sort.Slice(entries, func(i, j int) bool {
				if entries[i].size != entries[j].size {
					return entries[i].size > entries[j].size
				}
				return entries[i].id < entries[j].id
			})
			if top > 0 && len(entries) > top {
				entries = entries[:top]
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(out, "%8d  %d (%s)\n", e.size, e.id, g.GetObject(e.id).Type)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "number of objects to print, 0 for all")
	return cmd
}
