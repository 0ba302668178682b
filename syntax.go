package bracefmt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Syntax holds the delimiter and specifier marker characters.
type Syntax struct {
	Open      rune
	Close     rune
	Hex       rune
	Octal     rune
	Left      rune
	Precision rune
}

// DefaultSyntax returns the brace syntax: "{" and "}" delimiters, "#" for
// hexadecimal, "~" for octal, "-" for left justification and "." for
// precision.
func DefaultSyntax() Syntax {
	return Syntax{
		Open:      '{',
		Close:     '}',
		Hex:       '#',
		Octal:     '~',
		Left:      '-',
		Precision: '.',
	}
}

// Token returns the plain-mode placeholder token.
func (s Syntax) Token() string {
	return string(s.Open) + string(s.Close)
}

// Validate checks that every marker is set, is not an ASCII digit, and is
// distinct from the others.
func (s Syntax) Validate() error {
	markers := []struct {
		name string
		r    rune
	}{
		{"open", s.Open},
		{"close", s.Close},
		{"hex", s.Hex},
		{"octal", s.Octal},
		{"left", s.Left},
		{"precision", s.Precision},
	}
	seen := make(map[rune]string, len(markers))
	for _, m := range markers {
		switch {
		case m.r == 0:
			return fmt.Errorf("%w: %s marker is not set", ErrInvalidSyntax, m.name)
		case m.r == utf8.RuneError:
			return fmt.Errorf("%w: %s marker is not valid UTF-8", ErrInvalidSyntax, m.name)
		case isDigit(m.r):
			return fmt.Errorf("%w: %s marker %q is a digit", ErrInvalidSyntax, m.name, m.r)
		}
		if other, ok := seen[m.r]; ok {
			return fmt.Errorf("%w: %s and %s markers are both %q", ErrInvalidSyntax, other, m.name, m.r)
		}
		seen[m.r] = m.name
	}
	return nil
}

// syntaxFile is the on-disk form of a Syntax. Empty keys keep defaults.
type syntaxFile struct {
	Open      string `yaml:"open" toml:"open"`
	Close     string `yaml:"close" toml:"close"`
	Hex       string `yaml:"hex" toml:"hex"`
	Octal     string `yaml:"octal" toml:"octal"`
	Left      string `yaml:"left" toml:"left"`
	Precision string `yaml:"precision" toml:"precision"`
}

func (f syntaxFile) apply(s Syntax) (Syntax, error) {
	fields := []struct {
		name string
		val  string
		dst  *rune
	}{
		{"open", f.Open, &s.Open},
		{"close", f.Close, &s.Close},
		{"hex", f.Hex, &s.Hex},
		{"octal", f.Octal, &s.Octal},
		{"left", f.Left, &s.Left},
		{"precision", f.Precision, &s.Precision},
	}
	for _, fl := range fields {
		if fl.val == "" {
			continue
		}
		if utf8.RuneCountInString(fl.val) != 1 {
			return Syntax{}, fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidSyntax, fl.name, fl.val)
		}
		*fl.dst, _ = utf8.DecodeRuneInString(fl.val)
	}
	return s, s.Validate()
}

// ParseSyntaxYAML decodes a YAML syntax document on top of [DefaultSyntax].
func ParseSyntaxYAML(data []byte) (Syntax, error) {
	var f syntaxFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Syntax{}, fmt.Errorf("%w: %s", ErrInvalidSyntax, err)
	}
	return f.apply(DefaultSyntax())
}

// ParseSyntaxTOML decodes a TOML syntax document on top of [DefaultSyntax].
func ParseSyntaxTOML(data []byte) (Syntax, error) {
	var f syntaxFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return Syntax{}, fmt.Errorf("%w: %s", ErrInvalidSyntax, err)
	}
	return f.apply(DefaultSyntax())
}

// LoadSyntax reads a syntax file, choosing the decoder by extension:
// .yaml and .yml for YAML, .toml for TOML.
func LoadSyntax(path string) (Syntax, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Syntax{}, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseSyntaxYAML(data)
	case ".toml":
		return ParseSyntaxTOML(data)
	default:
		return Syntax{}, fmt.Errorf("%w: unknown config extension %q", ErrInvalidSyntax, ext)
	}
}
