// Package bracefmt renders templates with brace-delimited positional
// placeholders.
//
// Each placeholder is replaced by the next value, left to right, one value
// per placeholder. The central entry points are [Write] and [Marshal], which
// accept a [Mode] and variadic values of any type:
//
//	bracefmt.Write(os.Stdout, bracefmt.Flagged, "{#} is {.2}\n", 255, 3.14159)
//	// ff is 3.14
//
// # Modes
//
// [Plain] substitutes the literal token "{}" with each value's default text.
// [Flagged] additionally accepts specifier characters between the braces.
//
// # Specifiers
//
// Inside a flagged placeholder the following characters may appear in any
// order; later settings of the same field win:
//
//   - "#" renders integers in hexadecimal
//   - "~" renders integers in octal
//   - "-" left justifies within the width
//   - "." followed by digits sets the number of fractional digits
//   - a digit run sets the minimum width; the character after it, unless it
//     is the closing brace, is the fill character
//
// So "{5*}" renders 7 as "****7" and "{5*-}" renders it as "7****". Flags
// apply to exactly one placeholder; the next one starts from the defaults.
// Use [ParseSpec] to inspect a placeholder and [Placeholders] to list all of
// them.
//
// # Fallback
//
// Rendering never fails on malformed input. When a placeholder contains an
// unrecognized character, or no value is left for it, the rest of the
// template from that placeholder onward is written verbatim and the returned
// [Result] reports [Malformed] or [Exhausted]. Surplus values are ignored.
//
// # Values
//
// Values implementing [Formattable] render themselves. Otherwise errors,
// [fmt.Stringer] values, strings, booleans, integers, floats and complex
// numbers get their usual text; base flags affect integers only and
// precision affects floating point values only. Width is measured in
// display columns.
//
// # Printing
//
// [Fprintf], [Printf] and [Sprintf] render flagged templates; [Flprintf] and
// [Lprintf] append a line break. [Fprintln] and [Println] print values
// separated by spaces.
//
// # Syntax
//
// Delimiters and marker characters are configurable through [Syntax] and
// [NewRenderer]. [LoadSyntax] reads a YAML or TOML file:
//
//	open: "<"
//	close: ">"
//
// # Streaming
//
// [WriteIter] and [WriteChan] draw values lazily from an iterator or channel.
// [WriteRecords] renders a template once per CSV or TSV record.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedMode]: unknown mode string
//   - [ErrMalformedSpecifier]: unrecognized character inside a placeholder
//   - [ErrWidthOutOfRange]: width or precision too large
//   - [ErrInvalidSyntax]: unusable delimiter or marker configuration
package bracefmt
