package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bjaus/bracefmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// placeholderView is the YAML shape of one placeholder.
type placeholderView struct {
	Offset    int    `yaml:"offset" json:"offset"`
	Text      string `yaml:"text" json:"text"`
	Base      string `yaml:"base,omitempty" json:"base,omitempty"`
	Align     string `yaml:"align,omitempty" json:"align,omitempty"`
	Width     int    `yaml:"width,omitempty" json:"width,omitempty"`
	Fill      string `yaml:"fill,omitempty" json:"fill,omitempty"`
	Precision *int   `yaml:"precision,omitempty" json:"precision,omitempty"`
	Error     string `yaml:"error,omitempty" json:"error,omitempty"`
}

func viewPlaceholder(p bracefmt.Placeholder) placeholderView {
	v := placeholderView{Offset: p.Offset, Text: p.Text}
	if p.Err != nil {
		v.Error = p.Err.Error()
		return v
	}
	f := p.Flags
	if f.Base != bracefmt.BaseDecimal {
		v.Base = f.Base.String()
	}
	if f.Align == bracefmt.AlignLeft {
		v.Align = f.Align.String()
	}
	if f.Width > 0 {
		v.Width = f.Width
		v.Fill = string(f.FillRune())
	}
	if f.PrecisionSet {
		prec := f.Precision
		v.Precision = &prec
	}
	return v
}

func newExplainCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "explain TEMPLATE",
		Short: "List the placeholders of a template and their flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.renderer()
			if err != nil {
				return err
			}
			views := []placeholderView{}
			for _, p := range r.Placeholders(args[0]) {
				views = append(views, viewPlaceholder(p))
			}
			return writeViews(cmd.OutOrStdout(), output, views)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format (yaml|json)")
	return cmd
}

func writeViews(w io.Writer, output string, views []placeholderView) error {
	switch output {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	default:
		return fmt.Errorf("invalid --output %q (want yaml or json)", output)
	}
}
