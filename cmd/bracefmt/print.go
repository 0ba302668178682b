package main

import (
	"github.com/bjaus/bracefmt"
	"github.com/spf13/cobra"
)

func newPrintCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print [VALUE...]",
		Short: "Print values separated by spaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			return bracefmt.Fprintln(cmd.OutOrStdout(), opts.values(args)...)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
