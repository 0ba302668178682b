package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/bjaus/bracefmt"
	"github.com/spf13/cobra"
)

func newRecordsCmd(opts *options) *cobra.Command {
	var (
		delim  string
		header bool
		plain  bool
	)
	cmd := &cobra.Command{
		Use:   "records TEMPLATE [FILE]",
		Short: "Render a template once per CSV or TSV record",
		Long:  "Reads delimiter-separated records from FILE, or standard input when FILE is omitted or \"-\", and renders TEMPLATE once per record using its fields as values.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			comma, err := parseDelimiter(delim)
			if err != nil {
				return err
			}
			r, err := opts.renderer()
			if err != nil {
				return err
			}
			var src io.Reader = cmd.InOrStdin()
			if len(args) == 2 && args[1] != "-" {
				f, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			}
			mode := bracefmt.Flagged
			if plain {
				mode = bracefmt.Plain
			}
			results, err := r.WriteRecords(cmd.OutOrStdout(), mode, args[0], src, bracefmt.RecordOptions{
				Comma:      comma,
				SkipHeader: header,
				Raw:        opts.raw,
			})
			if err != nil {
				return err
			}
			var reportErr error
			for i, res := range results {
				if !res.FellBack() {
					continue
				}
				// Number records by input line so the header counts.
				row := i + 1
				if header {
					row++
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "record %d: ", row)
				if err := opts.report(cmd.ErrOrStderr(), res); err != nil {
					reportErr = err
				}
			}
			return reportErr
		},
	}
	cmd.Flags().StringVarP(&delim, "delimiter", "d", ",", `field delimiter, a single character or "tab"`)
	cmd.Flags().BoolVar(&header, "header", false, "skip the first record")
	cmd.Flags().BoolVar(&plain, "plain", false, "only substitute bare {} tokens, no specifiers")
	return cmd
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
