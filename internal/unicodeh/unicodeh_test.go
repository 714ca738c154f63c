package unicodeh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectBOM(t *testing.T) {
	cases := []struct {
		name   string
		input  []byte
		enc    Encoding
		length int
		found  bool
	}{
		{"utf8", []byte{0xEF, 0xBB, 0xBF, 'x'}, UTF8, 3, true},
		{"utf16le", []byte{0xFF, 0xFE, 'x', 0}, UTF16LE, 2, true},
		{"utf16be", []byte{0xFE, 0xFF, 0, 'x'}, UTF16BE, 2, true},
		{"utf32be", []byte{0x00, 0x00, 0xFE, 0xFF}, UTF32BE, 4, true},
		{"utf32le", []byte{0xFF, 0xFE, 0x00, 0x00}, UTF32LE, 4, true},
		{"none", []byte{'[', '1', ']', 0}, AnyEncoding, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			enc, length, found := DetectBOM(c.input)
			assert.Equal(t, c.enc, enc)
			assert.Equal(t, c.length, length)
			assert.Equal(t, c.found, found)
		})
	}
}

func TestDetectBOMOrderingUTF32LEBeforeUTF16LE(t *testing.T) {
	// FF FE 00 00 begins with a valid UTF-16LE BOM, but the 4-byte UTF-32LE
	// test must win.
	enc, length, found := DetectBOM([]byte{0xFF, 0xFE, 0x00, 0x00})
	require.True(t, found)
	assert.Equal(t, UTF32LE, enc)
	assert.Equal(t, 4, length)
}

func TestDetectHeuristic(t *testing.T) {
	cases := []struct {
		name  string
		input []byte
		want  Encoding
	}{
		{"utf32be", []byte{0, 0, 0, '['}, UTF32BE},
		{"utf32le", []byte{'[', 0, 0, 0}, UTF32LE},
		{"utf16be", []byte{0, '[', 0, '1'}, UTF16BE},
		{"utf16le", []byte{'[', 0, '1', 0}, UTF16LE},
		{"utf8", []byte{'[', '1', ']', 0}, UTF8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DetectHeuristic(c.input))
		})
	}
}

func TestDecodeUTF8(t *testing.T) {
	r, w, err := DecodeUTF8([]byte("\xc3\x9c")) // Ü
	require.NoError(t, err)
	assert.Equal(t, rune('Ü'), r)
	assert.Equal(t, 2, w)

	_, _, err = DecodeUTF8([]byte{0xC0, 0x80})
	assert.Error(t, err)

	_, _, err = DecodeUTF8([]byte{0xED, 0xA0, 0x80}) // encoded surrogate
	assert.Error(t, err)

	_, _, err = DecodeUTF8([]byte{0xC2})
	assert.ErrorIs(t, err, ErrShortSequence)
}

func TestDecodeUTF16SurrogatePair(t *testing.T) {
	// U+1D11E (musical symbol G clef) = D834 DD1E
	buf := []byte{0xD8, 0x34, 0xDD, 0x1E}
	r, w, err := DecodeUTF16(buf, true)
	require.NoError(t, err)
	assert.Equal(t, rune(0x1D11E), r)
	assert.Equal(t, 4, w)

	_, _, err = DecodeUTF16([]byte{0xDC, 0x00}, true)
	assert.Error(t, err)

	_, _, err = DecodeUTF16([]byte{0xD8, 0x00, 0x00, 0x41}, true)
	assert.Error(t, err)
}

func TestDecodeUTF32(t *testing.T) {
	r, w, err := DecodeUTF32([]byte{0x00, 0x01, 0xD1, 0x1E}, true)
	require.NoError(t, err)
	assert.Equal(t, rune(0x1D11E), r)
	assert.Equal(t, 4, w)

	_, _, err = DecodeUTF32([]byte{0x00, 0x00, 0xD8, 0x00}, true)
	assert.Error(t, err)
}

func TestIsNoncharacter(t *testing.T) {
	assert.True(t, IsNoncharacter(0xFDD0))
	assert.True(t, IsNoncharacter(0xFDEF))
	assert.False(t, IsNoncharacter(0xFDF0))
	assert.True(t, IsNoncharacter(0xFFFE))
	assert.True(t, IsNoncharacter(0x1FFFF))
	assert.False(t, IsNoncharacter(0x41))
}

func TestAppendUTF8RoundTrip(t *testing.T) {
	for _, r := range []rune{'A', 'Ü', '東', 0x1D11E} {
		buf := AppendUTF8(nil, r)
		decoded, width, err := DecodeUTF8(buf)
		require.NoError(t, err)
		assert.Equal(t, len(buf), width)
		assert.Equal(t, r, decoded)
	}
}
