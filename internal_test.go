package bracefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadWideFill(t *testing.T) {
	t.Parallel()
	// "你" is a full-width character (2 columns). Four columns of padding
	// take two fill characters.
	assert.Equal(t, "你你a", pad("a", Flags{Width: 5, Fill: '你'}))
}

func TestPadOddWideFill(t *testing.T) {
	t.Parallel()
	// Three columns cannot be filled exactly with 2-column characters; the
	// result stays under the width rather than overflowing it.
	assert.Equal(t, "你a", pad("a", Flags{Width: 4, Fill: '你'}))
}

func TestPadNoWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc", pad("abc", Flags{Fill: '*'}))
}

func TestPadLeft(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab..", pad("ab", Flags{Width: 4, Fill: '.', Align: AlignLeft}))
}

func TestDigitRun(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, digitRun("123x", 0))
	assert.Equal(t, 3, digitRun("x12", 1))
	assert.Equal(t, 0, digitRun("", 0))
}

func TestParseCount(t *testing.T) {
	t.Parallel()
	n, err := parseCount("0042")
	assert.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = parseCount("18446744073709551616")
	assert.ErrorIs(t, err, ErrWidthOutOfRange)
}

func TestLooksNumeric(t *testing.T) {
	t.Parallel()
	assert.True(t, looksNumeric("1.5"))
	assert.True(t, looksNumeric("-.5"))
	assert.False(t, looksNumeric("Inf"))
	assert.False(t, looksNumeric("1_000"))
	assert.False(t, looksNumeric("+"))
}

func TestSliceSource(t *testing.T) {
	t.Parallel()
	next := sliceSource([]any{1, "a"})
	v, ok := next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = next()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	_, ok = next()
	assert.False(t, ok)
	_, ok = next()
	assert.False(t, ok)
}
