package bracefmt

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Renderer renders templates under a fixed [Syntax]. It is immutable after
// construction and safe for concurrent use.
type Renderer struct {
	syntax   Syntax
	maxWidth int
}

// Option configures a [Renderer].
type Option func(*Renderer)

// WithSyntax replaces the delimiter and marker characters.
func WithSyntax(s Syntax) Option {
	return func(r *Renderer) { r.syntax = s }
}

// DefaultMaxWidth is the largest width or precision a renderer accepts
// unless configured otherwise.
const DefaultMaxWidth = 1 << 16

// WithMaxWidth rejects placeholders whose width or precision exceeds n.
// Such placeholders fall back to literal output like any malformed
// specifier. Zero selects [DefaultMaxWidth].
func WithMaxWidth(n int) Option {
	return func(r *Renderer) { r.maxWidth = n }
}

// NewRenderer returns a renderer using [DefaultSyntax] unless overridden.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{syntax: DefaultSyntax()}
	for _, o := range opts {
		o(r)
	}
	if err := r.syntax.Validate(); err != nil {
		return nil, err
	}
	switch {
	case r.maxWidth < 0:
		return nil, fmt.Errorf("%w: max width %d is negative", ErrWidthOutOfRange, r.maxWidth)
	case r.maxWidth == 0:
		r.maxWidth = DefaultMaxWidth
	}
	return r, nil
}

// Syntax returns the renderer's syntax.
func (r *Renderer) Syntax() Syntax { return r.syntax }

// MaxWidth returns the largest accepted width or precision.
func (r *Renderer) MaxWidth() int { return r.maxWidth }

// Write renders tmpl with values in mode m and writes the output to w.
// The returned error is non-nil only for an unsupported mode or a failed
// write; malformed placeholders and missing values are reported through
// the [Result].
func (r *Renderer) Write(w io.Writer, m Mode, tmpl string, values ...any) (Result, error) {
	return r.render(w, m, tmpl, sliceSource(values))
}

// Writeln is like [Renderer.Write] but appends a line break.
func (r *Renderer) Writeln(w io.Writer, m Mode, tmpl string, values ...any) (Result, error) {
	res, err := r.Write(w, m, tmpl, values...)
	if err != nil {
		return res, err
	}
	_, err = io.WriteString(w, "\n")
	return res, err
}

// Marshal renders tmpl with values in mode m and returns the bytes.
func (r *Renderer) Marshal(m Mode, tmpl string, values ...any) ([]byte, Result, error) {
	var buf bytes.Buffer
	res, err := r.Write(&buf, m, tmpl, values...)
	if err != nil {
		return nil, res, err
	}
	return buf.Bytes(), res, nil
}

// source yields values front to back.
type source func() (any, bool)

func sliceSource(values []any) source {
	i := 0
	return func() (any, bool) {
		if i >= len(values) {
			return nil, false
		}
		v := values[i]
		i++
		return v, true
	}
}

func (r *Renderer) render(w io.Writer, m Mode, tmpl string, next source) (Result, error) {
	switch m {
	case Flagged:
		return r.renderFlagged(w, tmpl, next)
	case Plain:
		return r.renderPlain(w, tmpl, next)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedMode, m)
	}
}

// span is one located placeholder: template[start:end], or template[start:]
// up to the next closer when err is set.
type span struct {
	start, end int
	flags      Flags
	err        error
}

// scan locates the next placeholder at or after cursor.
func (r *Renderer) scan(tmpl string, cursor int) (span, bool) {
	idx := strings.IndexRune(tmpl[cursor:], r.syntax.Open)
	if idx < 0 {
		return span{}, false
	}
	start := cursor + idx
	inner := start + utf8.RuneLen(r.syntax.Open)
	f, end, err := r.syntax.ParseSpec(tmpl, inner)
	if err == nil && (f.Width > r.maxWidth || f.Precision > r.maxWidth) {
		c, _ := utf8.DecodeRuneInString(tmpl[inner:])
		err = &SpecError{Offset: inner, Char: c, Err: ErrWidthOutOfRange}
	}
	return span{start: start, end: end, flags: f, err: err}, true
}

func (r *Renderer) renderFlagged(w io.Writer, tmpl string, next source) (Result, error) {
	var res Result
	cursor := 0
	for {
		sp, ok := r.scan(tmpl, cursor)
		if !ok {
			res.Offset = len(tmpl)
			return res, writeString(w, tmpl[cursor:])
		}
		if err := writeString(w, tmpl[cursor:sp.start]); err != nil {
			return res, err
		}
		if sp.err != nil {
			res.Outcome, res.Offset, res.Err = Malformed, sp.start, sp.err
			return res, writeString(w, tmpl[sp.start:])
		}
		v, ok := next()
		if !ok {
			res.Outcome, res.Offset = Exhausted, sp.start
			return res, writeString(w, tmpl[sp.start:])
		}
		if err := writeString(w, FormatValue(v, sp.flags)); err != nil {
			return res, err
		}
		res.Consumed++
		cursor = sp.end
	}
}

// Placeholder is a flagged-mode placeholder found by [Renderer.Placeholders].
type Placeholder struct {
	Offset int
	Text   string
	Flags  Flags
	Err    error
}

// Placeholders lists the placeholders of a flagged template in order. The
// list ends with the first malformed placeholder, since rendering never
// reads past it.
func (r *Renderer) Placeholders(tmpl string) []Placeholder {
	var out []Placeholder
	cursor := 0
	for {
		sp, ok := r.scan(tmpl, cursor)
		if !ok {
			return out
		}
		if sp.err != nil {
			end := len(tmpl)
			if i := strings.IndexRune(tmpl[sp.start:], r.syntax.Close); i >= 0 {
				end = sp.start + i + utf8.RuneLen(r.syntax.Close)
			}
			return append(out, Placeholder{Offset: sp.start, Text: tmpl[sp.start:end], Flags: DefaultFlags(), Err: sp.err})
		}
		out = append(out, Placeholder{Offset: sp.start, Text: tmpl[sp.start:sp.end], Flags: sp.flags})
		cursor = sp.end
	}
}

// Placeholders lists the placeholders of a flagged template using the
// default syntax.
func Placeholders(tmpl string) []Placeholder {
	return std.Placeholders(tmpl)
}

func writeString(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s)
	return err
}
