package bracefmt

import (
	"io"
	"iter"
)

// WriteIter renders tmpl with values drawn from seq. A value is pulled only
// when a well-formed placeholder needs one, so a sequence longer than the
// template is never drained.
func (r *Renderer) WriteIter(w io.Writer, m Mode, tmpl string, seq iter.Seq[any]) (Result, error) {
	next, stop := iter.Pull(seq)
	defer stop()
	return r.render(w, m, tmpl, next)
}

// WriteChan renders tmpl with values received from ch.
// It is a thin wrapper around [Renderer.WriteIter].
func (r *Renderer) WriteChan(w io.Writer, m Mode, tmpl string, ch <-chan any) (Result, error) {
	return r.WriteIter(w, m, tmpl, chanToIter(ch))
}

// WriteIter is [Renderer.WriteIter] with the default renderer.
func WriteIter(w io.Writer, m Mode, tmpl string, seq iter.Seq[any]) (Result, error) {
	return std.WriteIter(w, m, tmpl, seq)
}

// WriteChan is [Renderer.WriteChan] with the default renderer.
func WriteChan(w io.Writer, m Mode, tmpl string, ch <-chan any) (Result, error) {
	return std.WriteChan(w, m, tmpl, ch)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
