package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/region23/weburl"
	"github.com/region23/weburl/fspath"
)

func newFSPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fspath",
		Short: "Convert between filesystem paths and file: URLs",
	}
	cmd.AddCommand(newFSPathToURLCmd(), newFSPathFromURLCmd())
	return cmd
}

func newFSPathToURLCmd() *cobra.Command {
	var windows bool
	cmd := &cobra.Command{
		Use:   "to-url [path]",
		Short: "Convert a platform filesystem path to a file: URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := fspath.POSIX
			if windows {
				format = fspath.Windows
			}
			u, err := fspath.FromFilePath(args[0], format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&windows, "windows", false, "interpret the path using Windows path grammar")
	return cmd
}

func newFSPathFromURLCmd() *cobra.Command {
	var windows bool
	cmd := &cobra.Command{
		Use:   "from-url [file-url]",
		Short: "Convert a file: URL to a platform filesystem path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := weburl.Parse(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			format := fspath.POSIX
			if windows {
				format = fspath.Windows
			}
			path, err := fspath.ToFilePath(u, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&windows, "windows", false, "interpret the path using Windows path grammar")
	return cmd
}
