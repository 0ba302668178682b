package bracefmt

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"fortio.org/safecast"
)

// SpecError describes a placeholder whose interior could not be parsed.
type SpecError struct {
	Offset int  // byte offset of the offending character
	Char   rune // offending character, or the first digit of an oversized run
	Err    error
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("%s: %q at offset %d", e.Err, e.Char, e.Offset)
}

func (e *SpecError) Unwrap() error { return e.Err }

// ParseSpec parses a placeholder interior with [DefaultSyntax].
func ParseSpec(text string, cursor int) (Flags, int, error) {
	return DefaultSyntax().ParseSpec(text, cursor)
}

// ParseSpec consumes specifier characters from text starting at cursor,
// which must point just past an opening delimiter. It returns the
// accumulated flags and the cursor one past the closing delimiter, or
// len(text) if the placeholder is never closed.
//
// Markers may repeat in any order; later settings win. A digit run sets the
// width and, unless the closing delimiter follows, the next character is
// taken as the fill. An unrecognized character yields a *SpecError and the
// original cursor.
func (s Syntax) ParseSpec(text string, cursor int) (Flags, int, error) {
	f := DefaultFlags()
	i := cursor
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case r == s.Close:
			return f, i + size, nil
		case r == s.Hex:
			f.Base = BaseHex
			i += size
		case r == s.Octal:
			f.Base = BaseOctal
			i += size
		case r == s.Left:
			f.Align = AlignLeft
			i += size
		case r == s.Precision:
			start := i + size
			end := digitRun(text, start)
			if end > start {
				n, err := parseCount(text[start:end])
				if err != nil {
					return DefaultFlags(), cursor, &SpecError{Offset: start, Char: rune(text[start]), Err: err}
				}
				f.Precision = n
				f.PrecisionSet = true
			}
			i = end
		case isDigit(r):
			end := digitRun(text, i)
			n, err := parseCount(text[i:end])
			if err != nil {
				return DefaultFlags(), cursor, &SpecError{Offset: i, Char: r, Err: err}
			}
			f.Width = n
			f.Fill = ' '
			i = end
			if i < len(text) {
				fill, fs := utf8.DecodeRuneInString(text[i:])
				if fill != s.Close {
					f.Fill = fill
					i += fs
				}
			}
		default:
			return DefaultFlags(), cursor, &SpecError{Offset: i, Char: r, Err: ErrMalformedSpecifier}
		}
	}
	return f, len(text), nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// digitRun returns the end of the ASCII digit run starting at i.
func digitRun(text string, i int) int {
	for i < len(text) && isDigit(rune(text[i])) {
		i++
	}
	return i
}

func parseCount(digits string) (int, error) {
	u, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, ErrWidthOutOfRange
	}
	n, err := safecast.Conv[int](u)
	if err != nil {
		return 0, ErrWidthOutOfRange
	}
	return n, nil
}
