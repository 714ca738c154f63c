// Copyright (c) 2024 The jpjson Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package unicodeh identifies and validates the source encoding of a JSON
// text and decodes its code units into Unicode scalar values.
//
// It mirrors, in spirit, the encoding layer of a libyaml-style reader: BOM
// detection runs before any heuristic guessing, and decoding never looks
// further ahead than a single code point.
package unicodeh

import "fmt"

// Encoding identifies the source encoding of a JSON text.
type Encoding int

// Supported source encodings.
const (
	// AnyEncoding lets the caller ask the package to infer the encoding
	// from a BOM, or failing that, from the zero-byte distribution of the
	// first four bytes.
	AnyEncoding Encoding = iota
	UTF8
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE

	numEncodings
)

var encodingNames = [numEncodings]string{
	"any",
	"UTF-8",
	"UTF-16LE",
	"UTF-16BE",
	"UTF-32LE",
	"UTF-32BE",
}

func (e Encoding) String() string {
	if e < 0 || e >= numEncodings {
		return fmt.Sprintf("unicodeh.Encoding(%d)", int(e))
	}
	return encodingNames[e]
}

// CodeUnitSize returns the width, in bytes, of one code unit of e. AnyEncoding
// has no defined width.
func (e Encoding) CodeUnitSize() int {
	switch e {
	case UTF8:
		return 1
	case UTF16LE, UTF16BE:
		return 2
	case UTF32LE, UTF32BE:
		return 4
	default:
		return 0
	}
}

const (
	// MaxCodePoint is the highest scalar value a JSON text may contain.
	MaxCodePoint = 0x10FFFF

	surrogateFirst = 0xD800
	surrogateLast  = 0xDFFF
)

// IsSurrogate reports whether r falls in the UTF-16 surrogate range, which is
// never a valid scalar value on its own.
func IsSurrogate(r rune) bool {
	return r >= surrogateFirst && r <= surrogateLast
}

// IsHighSurrogate reports whether r is a high (lead) surrogate half.
func IsHighSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDBFF
}

// IsLowSurrogate reports whether r is a low (trail) surrogate half.
func IsLowSurrogate(r rune) bool {
	return r >= 0xDC00 && r <= 0xDFFF
}

// CombineSurrogatePair computes the scalar value encoded by a high/low
// surrogate pair, per RFC 2781.
func CombineSurrogatePair(high, low rune) rune {
	return 0x10000 + (high-0xD800)<<10 + (low - 0xDC00)
}

// IsNoncharacter reports whether r is one of the 66 Unicode code points
// permanently reserved as "never interchanged": U+FDD0..U+FDEF, and any code
// point whose low 16 bits are 0xFFFE or 0xFFFF.
func IsNoncharacter(r rune) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	low16 := r & 0xFFFF
	return low16 == 0xFFFE || low16 == 0xFFFF
}

// IsScalarValue reports whether r is a valid Unicode scalar value: in range
// and not a surrogate.
func IsScalarValue(r rune) bool {
	return r >= 0 && r <= MaxCodePoint && !IsSurrogate(r)
}

// bomTable lists the byte sequences recognized in DetectBOM, longest first so
// that the 4-byte UTF-32 marks are tried before the 2-byte UTF-16 marks a
// UTF-32LE BOM's leading bytes would otherwise also match
// (FF FE 00 00 begins with a valid UTF-16LE BOM).
var bomTable = []struct {
	bytes []byte
	enc   Encoding
}{
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, UTF32BE},
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, UTF32LE},
	{[]byte{0xEF, 0xBB, 0xBF}, UTF8},
	{[]byte{0xFE, 0xFF}, UTF16BE},
	{[]byte{0xFF, 0xFE}, UTF16LE},
}

// DetectBOM inspects up to the first 4 bytes of input for a byte-order mark.
// It returns the encoding the mark identifies, the number of bytes the mark
// occupies, and whether a mark was found at all. Callers that have fewer
// than 4 bytes available (and have not yet reached end of input) should
// supply more before trusting a "no mark found" result, since a 4-byte mark
// could still be forming.
func DetectBOM(lookahead []byte) (enc Encoding, length int, found bool) {
	for _, b := range bomTable {
		if len(lookahead) < len(b.bytes) {
			continue
		}
		match := true
		for i, want := range b.bytes {
			if lookahead[i] != want {
				match = false
				break
			}
		}
		if match {
			return b.enc, len(b.bytes), true
		}
	}
	return AnyEncoding, 0, false
}

// DetectHeuristic guesses the encoding from the zero-byte distribution of the
// first four bytes of input, assuming (per RFC 4627 §3) that the first
// character of a JSON text is always ASCII. This is only meaningful when no
// BOM was found. Fewer than 4 bytes available is treated as a short input
// and degrades gracefully to the best guess the available bytes support.
func DetectHeuristic(first4 []byte) Encoding {
	var b [4]byte
	n := copy(b[:], first4)
	switch {
	case n >= 4 && b[0] == 0 && b[1] == 0 && b[2] == 0 && b[3] != 0:
		return UTF32BE
	case n >= 4 && b[0] != 0 && b[1] == 0 && b[2] == 0 && b[3] == 0:
		return UTF32LE
	case n >= 2 && b[0] == 0 && b[1] != 0:
		return UTF16BE
	case n >= 2 && b[0] != 0 && b[1] == 0:
		return UTF16LE
	default:
		return UTF8
	}
}
