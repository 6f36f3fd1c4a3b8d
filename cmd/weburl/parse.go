package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/region23/weburl"
)

func newParseCmd() *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "parse [urls...]",
		Short: "Parse one or more URLs and print their components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []weburl.ParseOption
			if base != "" {
				baseURL, err := weburl.Parse(base)
				if err != nil {
					return fmt.Errorf("parsing --base: %w", err)
				}
				opts = append(opts, weburl.WithBaseURL(baseURL))
			}

			var errs error
			for _, raw := range args {
				u, err := weburl.Parse(raw, opts...)
				if err != nil {
					errs = multierr.Append(errs, fmt.Errorf("%s: %w", raw, err))
					continue
				}
				printURL(cmd, u)
			}
			return errs
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "resolve each URL as a relative reference against this base")
	return cmd
}

func printURL(cmd *cobra.Command, u *weburl.URL) {
	fmt.Fprintln(cmd.OutOrStdout(), u.String())
	fmt.Fprintf(cmd.OutOrStdout(), "  scheme:   %s\n", u.Scheme())
	if h := u.Hostname(); h != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  host:     %s\n", h)
	}
	if p := u.Port(); p != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  port:     %s\n", p)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  path:     %s\n", u.Path())
	if q := u.Query(); q != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  query:    %s\n", q)
	}
	if f := u.Fragment(); f != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  fragment: %s\n", f)
	}
	for _, d := range u.Diagnostics() {
		fmt.Fprintf(cmd.OutOrStdout(), "  diagnostic: %s (%s)\n", d.Code, d.Detail)
	}
}
