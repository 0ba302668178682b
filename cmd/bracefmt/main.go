package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bjaus/bracefmt"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errFellBack = errors.New("template fell back to literal output")

// options holds the persistent flags shared by every subcommand.
type options struct {
	config   string
	maxWidth int
	color    string
	strict   bool
	raw      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "bracefmt",
		Short:         "Render brace-placeholder templates",
		Long:          `bracefmt substitutes positional values into {}-style templates with inline width, fill, alignment, base and precision specifiers.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setColor()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.config, "config", "", "syntax file (.yaml, .yml or .toml)")
	cmd.PersistentFlags().IntVar(&opts.maxWidth, "max-width", bracefmt.DefaultMaxWidth, "reject widths and precisions above this")
	cmd.PersistentFlags().StringVar(&opts.color, "color", "auto", "colorize diagnostics (auto|on|off)")
	cmd.PersistentFlags().BoolVar(&opts.strict, "strict", false, "exit non-zero when a template falls back to literal output")
	cmd.PersistentFlags().BoolVar(&opts.raw, "raw", false, "pass values as strings instead of inferring numbers and booleans")

	cmd.AddCommand(newPrintfCmd(opts, false))
	cmd.AddCommand(newPrintfCmd(opts, true))
	cmd.AddCommand(newPrintCmd(opts))
	cmd.AddCommand(newExplainCmd(opts))
	cmd.AddCommand(newRecordsCmd(opts))
	return cmd
}

func (o *options) setColor() error {
	switch o.color {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stderr)
	default:
		return fmt.Errorf("invalid --color value %q (want auto, on or off)", o.color)
	}
	return nil
}

func (o *options) renderer() (*bracefmt.Renderer, error) {
	syntax := bracefmt.DefaultSyntax()
	if o.config != "" {
		s, err := bracefmt.LoadSyntax(o.config)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", o.config, err)
		}
		syntax = s
	}
	return bracefmt.NewRenderer(bracefmt.WithSyntax(syntax), bracefmt.WithMaxWidth(o.maxWidth))
}

func (o *options) values(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		if o.raw {
			out[i] = a
		} else {
			out[i] = bracefmt.Infer(a)
		}
	}
	return out
}

// main builds the command tree and exits with status 1 on any error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFellBack) {
			printError(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
