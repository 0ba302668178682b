package bracefmt

import (
	"io"
	"strings"
)

func (r *Renderer) renderPlain(w io.Writer, tmpl string, next source) (Result, error) {
	token := r.syntax.Token()
	var res Result
	cursor := 0
	for {
		idx := strings.Index(tmpl[cursor:], token)
		if idx < 0 {
			res.Offset = len(tmpl)
			return res, writeString(w, tmpl[cursor:])
		}
		start := cursor + idx
		if err := writeString(w, tmpl[cursor:start]); err != nil {
			return res, err
		}
		v, ok := next()
		if !ok {
			res.Outcome, res.Offset = Exhausted, start
			return res, writeString(w, tmpl[start:])
		}
		if err := writeString(w, FormatValue(v, Flags{})); err != nil {
			return res, err
		}
		res.Consumed++
		cursor = start + len(token)
	}
}
