package bracefmt

import (
	"fmt"
	"strings"
)

// Base is the numeric base integers are rendered in.
type Base int

const (
	BaseDecimal Base = iota
	BaseHex
	BaseOctal
)

// Radix returns the numeric radix for b.
func (b Base) Radix() int {
	switch b {
	case BaseHex:
		return 16
	case BaseOctal:
		return 8
	default:
		return 10
	}
}

func (b Base) String() string {
	switch b {
	case BaseHex:
		return "hex"
	case BaseOctal:
		return "octal"
	default:
		return "decimal"
	}
}

// Alignment controls which side of a padded value the fill goes on.
type Alignment int

const (
	AlignRight Alignment = iota
	AlignLeft
)

func (a Alignment) String() string {
	if a == AlignLeft {
		return "left"
	}
	return "right"
}

// Flags is the formatting state one placeholder applies to one value.
// The zero value renders like [DefaultFlags].
type Flags struct {
	Base  Base
	Align Alignment
	// Width is the minimum column width; 0 means no padding.
	Width int
	// Fill pads up to Width; 0 means a space.
	Fill rune
	// Precision is the number of fractional digits for floating point
	// values when PrecisionSet is true.
	Precision    int
	PrecisionSet bool
}

// DefaultFlags returns decimal, right aligned, unpadded flags with a space
// fill and the default precision.
func DefaultFlags() Flags {
	return Flags{Fill: ' '}
}

// FillRune returns the effective fill character.
func (f Flags) FillRune() rune {
	if f.Fill == 0 {
		return ' '
	}
	return f.Fill
}

// IsDefault reports whether f renders like [DefaultFlags].
func (f Flags) IsDefault() bool {
	return f.Base == BaseDecimal && f.Align == AlignRight && f.Width == 0 &&
		f.FillRune() == ' ' && !f.PrecisionSet
}

// String describes f for diagnostics, e.g. "hex width=5 fill='*' left".
func (f Flags) String() string {
	if f.IsDefault() {
		return "default"
	}
	var parts []string
	if f.Base != BaseDecimal {
		parts = append(parts, f.Base.String())
	}
	if f.Width > 0 {
		parts = append(parts, fmt.Sprintf("width=%d", f.Width))
		if f.FillRune() != ' ' {
			parts = append(parts, fmt.Sprintf("fill=%q", f.FillRune()))
		}
	}
	if f.Align == AlignLeft {
		parts = append(parts, "left")
	}
	if f.PrecisionSet {
		parts = append(parts, fmt.Sprintf("precision=%d", f.Precision))
	}
	if len(parts) == 0 {
		return "default"
	}
	return strings.Join(parts, " ")
}
