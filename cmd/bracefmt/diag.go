package main

import (
	"errors"
	"io"

	"github.com/bjaus/bracefmt"
	"github.com/fatih/color"
)

var (
	warnColor = color.New(color.FgYellow, color.Bold)
	errColor  = color.New(color.FgRed, color.Bold)
)

func printError(w io.Writer, err error) {
	errColor.Fprint(w, "error: ")
	_, _ = io.WriteString(w, err.Error()+"\n")
}

// report describes a fallback on w and, in strict mode, turns it into an
// error.
func (o *options) report(w io.Writer, res bracefmt.Result) error {
	if !res.FellBack() {
		return nil
	}
	warnColor.Fprint(w, "warning: ")
	switch res.Outcome {
	case bracefmt.Malformed:
		var se *bracefmt.SpecError
		if errors.As(res.Err, &se) {
			_, _ = io.WriteString(w, se.Error())
		} else {
			_, _ = io.WriteString(w, "malformed placeholder")
		}
	case bracefmt.Exhausted:
		_, _ = io.WriteString(w, "no value left for placeholder")
	}
	color.New(color.Faint).Fprintf(w, " (offset %d, %d values used); rest written verbatim\n", res.Offset, res.Consumed)
	if o.strict {
		return errFellBack
	}
	return nil
}
