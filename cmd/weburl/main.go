// Command weburl exposes the parser, IDNA pipeline, normalizer, and
// filesystem-path conversion over a small cobra-based CLI (SPEC_FULL.md §3):
// parse, idna, normalize, and fspath.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "weburl",
		Short:         "WHATWG URL parsing, IDNA, and normalization",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newParseCmd(), newIDNACmd(), newNormalizeCmd(), newFSPathCmd())
	return root
}
