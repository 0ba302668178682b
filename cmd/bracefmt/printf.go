package main

import (
	"github.com/bjaus/bracefmt"
	"github.com/spf13/cobra"
)

func newPrintfCmd(opts *options, newline bool) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "printf TEMPLATE [VALUE...]",
		Short: "Render a template without a trailing newline",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.renderer()
			if err != nil {
				return err
			}
			mode := bracefmt.Flagged
			if plain {
				mode = bracefmt.Plain
			}
			write := r.Write
			if newline {
				write = r.Writeln
			}
			res, err := write(cmd.OutOrStdout(), mode, args[0], opts.values(args[1:])...)
			if err != nil {
				return err
			}
			return opts.report(cmd.ErrOrStderr(), res)
		},
	}
	if newline {
		cmd.Use = "lprintf TEMPLATE [VALUE...]"
		cmd.Short = "Render a template followed by a newline"
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "only substitute bare {} tokens, no specifiers")
	cmd.Flags().SetInterspersed(false)
	return cmd
}
