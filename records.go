package bracefmt

import (
	"encoding/csv"
	"errors"
	"io"
)

// RecordOptions controls how [Renderer.WriteRecords] reads its input.
type RecordOptions struct {
	// Comma is the field delimiter. Zero means a comma.
	Comma rune
	// SkipHeader drops the first record.
	SkipHeader bool
	// Raw passes fields through as strings instead of running [Infer].
	Raw bool
}

// WriteRecords renders tmpl once per delimiter-separated record read from
// src, each followed by a line break. Records may have differing field
// counts. It returns one [Result] per rendered record.
func (r *Renderer) WriteRecords(w io.Writer, m Mode, tmpl string, src io.Reader, opts RecordOptions) ([]Result, error) {
	cr := csv.NewReader(src)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var results []Result
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return results, nil
		}
		if err != nil {
			return results, err
		}
		if first {
			first = false
			if opts.SkipHeader {
				continue
			}
		}
		values := make([]any, len(rec))
		for i, field := range rec {
			if opts.Raw {
				values[i] = field
			} else {
				values[i] = Infer(field)
			}
		}
		res, err := r.Writeln(w, m, tmpl, values...)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
}

// WriteRecords is [Renderer.WriteRecords] with the default renderer.
func WriteRecords(w io.Writer, m Mode, tmpl string, src io.Reader, opts RecordOptions) ([]Result, error) {
	return std.WriteRecords(w, m, tmpl, src, opts)
}
