package charref

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestDecodeNumericDecimal(t *testing.T) {
	r, remapped, ok := DecodeNumeric("65", false, true)
	assert.True(t, ok)
	assert.False(t, remapped)
	assert.Equal(t, 'A', r)
}

func TestDecodeNumericHex(t *testing.T) {
	r, _, ok := DecodeNumeric("41", true, true)
	assert.True(t, ok)
	assert.Equal(t, 'A', r)
}

func TestDecodeNumericWindows1252Fixup(t *testing.T) {
	r, remapped, ok := DecodeNumeric("147", false, true)
	assert.True(t, ok)
	assert.True(t, remapped)
	assert.Equal(t, rune(0x201C), r)
}

func TestDecodeNumericWindows1252FixupDisabled(t *testing.T) {
	r, remapped, ok := DecodeNumeric("147", false, false)
	assert.True(t, ok)
	assert.False(t, remapped)
	assert.Equal(t, rune(147), r)
}

func TestDecodeNumericLoneSurrogateInvalid(t *testing.T) {
	_, _, ok := DecodeNumeric("D800", true, true)
	assert.False(t, ok)
}

func TestDecodeNumericEmptyDigitsInvalid(t *testing.T) {
	_, _, ok := DecodeNumeric("", false, true)
	assert.False(t, ok)
}

func TestRecognizerParseNumericDigitRun(t *testing.T) {
	r := NewRecognizer()
	r.SetHex()
	for _, ch := range "20AC" {
		assert.True(t, r.ParseNumeric(ch))
	}
	assert.Equal(t, "20AC", r.NumericDigits())

	cp, _, ok := DecodeNumeric(r.NumericDigits(), true, true)
	assert.True(t, ok)
	assert.Equal(t, '€', cp)
}
