// ABOUTME: Entry point for the gcinspect binary
// ABOUTME: Delegates to internal/cli and maps errors to exit codes

package main

import (
	"fmt"
	"os"

	"github.com/prateek/arenagc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gcinspect:", err)
		os.Exit(1)
	}
}
