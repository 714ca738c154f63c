package scanner

import (
	"strings"
	"testing"

	"github.com/couchdeveloper/jpjson/internal/unicodeh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReader(s string) *Reader {
	return NewReader(strings.NewReader(s), unicodeh.UTF8)
}

func TestNumberScannerClassification(t *testing.T) {
	cases := []struct {
		input  string
		class  NumberClass
		digits int
	}{
		{"0", UnsignedInteger, 1},
		{"123", UnsignedInteger, 3},
		{"-123", SignedInteger, 3},
		{"1.5", UnsignedDecimal, 2},
		{"-1.5", SignedDecimal, 2},
		{"-1.5e10", Scientific, 2},
		{"0.00123", UnsignedDecimal, 4},
		{"10.00", UnsignedDecimal, 2},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			rd := newTestReader(c.input)
			s := NewNumberScanner(NumberExtensions{})
			desc, err := s.Scan(rd)
			require.NoError(t, err)
			assert.Equal(t, c.input, desc.Text)
			assert.Equal(t, c.class, desc.Class)
			assert.Equal(t, c.digits, desc.Digits)
		})
	}
}

func TestNumberScannerErrors(t *testing.T) {
	cases := []string{"-", ".5", "1.", "1e", "007"}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			rd := newTestReader(in)
			s := NewNumberScanner(NumberExtensions{})
			_, err := s.Scan(rd)
			assert.Error(t, err)
		})
	}
}

func TestNumberScannerExtensions(t *testing.T) {
	rd := newTestReader("007")
	s := NewNumberScanner(NumberExtensions{AllowLeadingZero: true})
	desc, err := s.Scan(rd)
	require.NoError(t, err)
	assert.Equal(t, "007", desc.Text)

	rd2 := newTestReader("+5")
	s2 := NewNumberScanner(NumberExtensions{AllowLeadingPlus: true})
	desc2, err := s2.Scan(rd2)
	require.NoError(t, err)
	assert.Equal(t, "+5", desc2.Text)
	assert.Equal(t, UnsignedInteger, desc2.Class)
}

func scanOneString(t *testing.T, input string, policy StringPolicy, isKey bool) (string, error) {
	t.Helper()
	rd := newTestReader(input)
	s := NewStringScanner(policy)
	var out []byte
	err := s.Scan(rd, isKey, func(chunk []byte, hasMore bool) error {
		out = append(out, chunk...)
		return nil
	})
	return string(out), err
}

func TestStringScannerEscapes(t *testing.T) {
	out, err := scanOneString(t, `"a\"b\\c\/d\n\t"`, StringPolicy{}, false)
	require.NoError(t, err)
	assert.Equal(t, "a\"b\\c/d\n\t", out)
}

func TestStringScannerUnicodeEscape(t *testing.T) {
	out, err := scanOneString(t, `"\u00dc"`, StringPolicy{}, false)
	require.NoError(t, err)
	assert.Equal(t, "Ü", out)
}

func TestStringScannerSurrogatePair(t *testing.T) {
	out, err := scanOneString(t, `"\uD834\uDD1E"`, StringPolicy{}, false)
	require.NoError(t, err)
	assert.Equal(t, "𝄞", out)
}

func TestStringScannerLoneLowSurrogate(t *testing.T) {
	_, err := scanOneString(t, `"\uDD1E"`, StringPolicy{}, false)
	require.Error(t, err)
	assert.IsType(t, &ExpectedHighSurrogateError{}, err)
}

func TestStringScannerHighSurrogateWithoutLow(t *testing.T) {
	_, err := scanOneString(t, `"\uD834x"`, StringPolicy{}, false)
	require.Error(t, err)
	assert.IsType(t, &ExpectedLowSurrogateError{}, err)
}

func TestStringScannerInvalidEscape(t *testing.T) {
	_, err := scanOneString(t, `"\q"`, StringPolicy{}, false)
	assert.IsType(t, &InvalidEscapeSeqError{}, err)
}

func TestStringScannerControlCharacter(t *testing.T) {
	_, err := scanOneString(t, "\"a\tb\"", StringPolicy{}, false)
	assert.IsType(t, &ControlCharError{}, err)

	out, err := scanOneString(t, "\"a\tb\"", StringPolicy{AllowControlCharacters: true}, false)
	require.NoError(t, err)
	assert.Equal(t, "a\tb", out)
}

func TestStringScannerNullPolicy(t *testing.T) {
	_, err := scanOneString(t, "\"a\x00b\"", StringPolicy{}, false)
	assert.IsType(t, &NullNotAllowedError{}, err)

	out, err := scanOneString(t, "\"a\x00b\"", StringPolicy{Null: PolicyRetain}, false)
	require.NoError(t, err)
	assert.Equal(t, "a\x00b", out)

	out, err = scanOneString(t, "\"a\x00b\"", StringPolicy{Null: PolicySkip}, false)
	require.NoError(t, err)
	assert.Equal(t, "ab", out)
}

func TestStringScannerChunking(t *testing.T) {
	big := strings.Repeat("x", chunkThreshold*2+10)
	input := `"` + big + `"`
	rd := newTestReader(input)
	s := NewStringScanner(StringPolicy{})
	var chunks [][]byte
	var finals []bool
	err := s.Scan(rd, false, func(chunk []byte, hasMore bool) error {
		cp := append([]byte(nil), chunk...)
		chunks = append(chunks, cp)
		finals = append(finals, hasMore)
		return nil
	})
	require.NoError(t, err)
	require.True(t, len(chunks) >= 2)
	assert.False(t, finals[len(finals)-1])
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	assert.Equal(t, len(big), total)
}

func TestStringScannerKeyTooLong(t *testing.T) {
	big := strings.Repeat("x", keyMaxBytes+100)
	input := `"` + big + `"`
	rd := newTestReader(input)
	s := NewStringScanner(StringPolicy{})
	err := s.Scan(rd, true, func(chunk []byte, hasMore bool) error { return nil })
	assert.IsType(t, &KeyTooLongError{}, err)
}
