package bracefmt

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Formattable lets a value render its own body under a placeholder's flags.
// Padding to the flag width is still applied by the engine.
type Formattable interface {
	FormatFlags(Flags) string
}

// FormatValue renders v under f and pads the result to f.Width.
func FormatValue(v any, f Flags) string {
	return pad(formatBody(v, f), f)
}

func formatBody(v any, f Flags) string {
	if v == nil {
		return "<nil>"
	}
	if s, ok := formatMethod(v, f); ok {
		return s
	}
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), f.Base.Radix())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), f.Base.Radix())
	case reflect.Float32:
		return formatFloat(rv.Float(), 32, f)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64, f)
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		bits := 64
		if rv.Kind() == reflect.Complex64 {
			bits = 32
		}
		im := formatFloat(imag(c), bits, f)
		if !strings.HasPrefix(im, "-") && !strings.HasPrefix(im, "+") {
			im = "+" + im
		}
		return "(" + formatFloat(real(c), bits, f) + im + "i)"
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	}
	return fmt.Sprint(v)
}

// formatMethod renders v through its own formatting method, if it has one.
// A method that panics on a nil pointer receiver renders as "<nil>".
func formatMethod(v any, f Flags) (s string, ok bool) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			s, ok = "<nil>", true
			return
		}
		s, ok = fmt.Sprintf("%%!(PANIC=%v)", p), true
	}()
	switch x := v.(type) {
	case Formattable:
		return x.FormatFlags(f), true
	case error:
		return x.Error(), true
	case fmt.Stringer:
		return x.String(), true
	}
	return "", false
}

func formatFloat(x float64, bits int, f Flags) string {
	if math.IsInf(x, 0) || math.IsNaN(x) || !f.PrecisionSet {
		return strconv.FormatFloat(x, 'g', -1, bits)
	}
	return strconv.FormatFloat(x, 'f', f.Precision, bits)
}

// pad fills s out to f.Width display columns.
func pad(s string, f Flags) string {
	n := f.Width - runewidth.StringWidth(s)
	if n <= 0 {
		return s
	}
	fill := f.FillRune()
	if fw := runewidth.RuneWidth(fill); fw > 1 {
		n /= fw
	}
	padding := strings.Repeat(string(fill), n)
	if f.Align == AlignLeft {
		return s + padding
	}
	return padding + s
}

// Infer converts command-line or record text into the value it most likely
// denotes: int64, uint64, float64, bool, or the string itself.
func Infer(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u
	}
	if looksNumeric(s) {
		if x, err := strconv.ParseFloat(s, 64); err == nil {
			return x
		}
	}
	if s == "true" || s == "false" {
		return s == "true"
	}
	return s
}

// looksNumeric rejects the words ParseFloat accepts, such as "inf" and "nan",
// and hex float literals, so they stay strings.
func looksNumeric(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if s == "" || strings.ContainsAny(s, "xXpP_") {
		return false
	}
	return isDigit(rune(s[0])) || (s[0] == '.' && len(s) > 1 && isDigit(rune(s[1])))
}
