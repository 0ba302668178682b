package bracefmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedMode    = errors.New("unsupported mode")
	ErrMalformedSpecifier = errors.New("malformed specifier")
	ErrWidthOutOfRange    = errors.New("width out of range")
	ErrInvalidSyntax      = errors.New("invalid syntax")
)

// Mode selects how placeholders are recognized.
type Mode string

const (
	// Plain substitutes the fixed two-character token (Open followed by
	// Close) with the next value rendered under default flags.
	Plain Mode = "plain"
	// Flagged accepts specifier characters between the delimiters.
	Flagged Mode = "flagged"
)

var modes = []Mode{Plain, Flagged}

// String returns the mode name.
func (m Mode) String() string { return string(m) }

// Modes returns all supported rendering modes.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}

// Outcome reports how a render call ended.
type Outcome int

const (
	// Complete means every placeholder reached was substituted. Surplus
	// values are not an error.
	Complete Outcome = iota
	// Malformed means a placeholder held an unrecognized specifier; the
	// template from that placeholder onward was written verbatim.
	Malformed
	// Exhausted means a placeholder was reached with no values left; the
	// template from that placeholder onward was written verbatim.
	Exhausted
)

var outcomeNames = [...]string{
	Complete:  "complete",
	Malformed: "malformed",
	Exhausted: "exhausted",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// Result describes what a render call did with its template and values.
type Result struct {
	Outcome Outcome
	// Consumed is the number of values substituted into placeholders.
	Consumed int
	// Offset is the byte offset in the template where literal fallback
	// began, or len(template) when Outcome is Complete.
	Offset int
	// Err is the *SpecError behind a Malformed outcome.
	Err error
}

// FellBack reports whether part of the template was emitted verbatim.
func (r Result) FellBack() bool { return r.Outcome != Complete }

var std = mustRenderer()

func mustRenderer(opts ...Option) *Renderer {
	r, err := NewRenderer(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Write renders tmpl with values in mode m and writes the output to w.
func Write(w io.Writer, m Mode, tmpl string, values ...any) (Result, error) {
	return std.Write(w, m, tmpl, values...)
}

// Writeln is like [Write] but appends a line break after all output.
func Writeln(w io.Writer, m Mode, tmpl string, values ...any) (Result, error) {
	return std.Writeln(w, m, tmpl, values...)
}

// Marshal renders tmpl with values in mode m and returns the bytes.
func Marshal(m Mode, tmpl string, values ...any) ([]byte, Result, error) {
	return std.Marshal(m, tmpl, values...)
}

// Fprintf renders a flagged template to w.
func Fprintf(w io.Writer, tmpl string, values ...any) (Result, error) {
	return std.Write(w, Flagged, tmpl, values...)
}

// Flprintf is like [Fprintf] but appends a line break.
func Flprintf(w io.Writer, tmpl string, values ...any) (Result, error) {
	return std.Writeln(w, Flagged, tmpl, values...)
}

// Printf renders a flagged template to standard output.
func Printf(tmpl string, values ...any) (Result, error) {
	return std.Write(os.Stdout, Flagged, tmpl, values...)
}

// Lprintf renders a flagged template to standard output followed by a line
// break.
func Lprintf(tmpl string, values ...any) (Result, error) {
	return std.Writeln(os.Stdout, Flagged, tmpl, values...)
}

// Sprintf renders a flagged template and returns the text. Fallback output
// is returned as is; use [Marshal] to inspect the [Result].
func Sprintf(tmpl string, values ...any) string {
	var buf bytes.Buffer
	_, _ = std.Write(&buf, Flagged, tmpl, values...)
	return buf.String()
}

// Fprintln writes every value with default flags, separated by a single
// space and followed by a line break.
func Fprintln(w io.Writer, values ...any) error {
	var buf bytes.Buffer
	for i, v := range values {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(FormatValue(v, Flags{}))
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

// Println is [Fprintln] to standard output.
func Println(values ...any) error {
	return Fprintln(os.Stdout, values...)
}
