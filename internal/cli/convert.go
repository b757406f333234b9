// ABOUTME: Convert subcommand
// ABOUTME: Re-encodes a dump as plain, lz4, or zstd compressed JSON

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prateek/arenagc/heapdump"
)

func newConvertCmd() *cobra.Command {
	var compression string

	cmd := &cobra.Command{
		Use:   "convert <dump> <out>",
		Short: "Rewrite a dump with a different compression",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := heapdump.ParseCompression(compression)
			if err != nil {
				return err
			}
			g, err := loadDump(args[0])
			if err != nil {
				return err
			}

			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			w, err := heapdump.NewWriter(f, c)
			if err != nil {
				f.Close()
				return err
			}
			if err := heapdump.WriteJSON(w, g); err != nil {
				w.Close()
				f.Close()
				return err
			}
			if err := w.Close(); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d objects to %s (%s)\n", g.NumObjects(), args[1], c)
			return nil
		},
	}
	cmd.Flags().StringVar(&compression, "compression", "zstd", "output compression: none, lz4, or zstd")
	return cmd
}
