package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/region23/weburl"
)

func newNormalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [urls...]",
		Short: "Parse and re-serialize each URL in its canonical WHATWG form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs error
			for _, raw := range args {
				u, err := weburl.Parse(raw)
				if err != nil {
					errs = multierr.Append(errs, fmt.Errorf("%s: %w", raw, err))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), u.String())
			}
			return errs
		},
	}
	return cmd
}
