package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/region23/weburl/internal/idna"
)

func newIDNACmd() *cobra.Command {
	var toUnicode bool
	cmd := &cobra.Command{
		Use:   "idna [domains...]",
		Short: "Run a domain through the IDNA/UTS#46 pipeline",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs error
			for _, domain := range args {
				var out string
				var err error
				if toUnicode {
					out, err = idna.ProfileHost.ToUnicode(domain)
				} else {
					out, err = idna.ProfileHost.ToASCII(domain)
				}
				if err != nil {
					errs = multierr.Append(errs, fmt.Errorf("%s: %w", domain, err))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return errs
		},
	}
	cmd.Flags().BoolVar(&toUnicode, "to-unicode", false, "convert to Unicode instead of ASCII/Punycode")
	return cmd
}
