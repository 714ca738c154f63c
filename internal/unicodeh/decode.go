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

package unicodeh

import "errors"

// ErrShortSequence is returned by the Decode* functions when buf holds too
// few bytes to contain a full code unit (or surrogate pair). Callers should
// fill the buffer with more input unless they are at end of input, in which
// case a short sequence is an ill-formed one.
var ErrShortSequence = errors.New("unicodeh: incomplete code unit sequence")

// IllFormedError reports a source byte sequence that cannot be decoded under
// the rules of its claimed encoding.
type IllFormedError struct {
	Reason string
}

func (e *IllFormedError) Error() string {
	return "unicodeh: ill-formed sequence: " + e.Reason
}

func illFormed(reason string) (rune, int, error) {
	return 0, 0, &IllFormedError{Reason: reason}
}

// DecodeUTF8 decodes the single code point at the front of buf. It returns
// the number of bytes consumed. A lead byte of 0xC0, 0xC1, or 0xF5-0xFF is
// always ill-formed.
func DecodeUTF8(buf []byte) (r rune, width int, err error) {
	if len(buf) == 0 {
		return 0, 0, ErrShortSequence
	}
	lead := buf[0]
	switch {
	case lead&0x80 == 0x00:
		width = 1
	case lead >= 0xC2 && lead <= 0xDF:
		width = 2
	case lead >= 0xE0 && lead <= 0xEF:
		width = 3
	case lead >= 0xF0 && lead <= 0xF4:
		width = 4
	default:
		return illFormed("invalid leading octet")
	}
	if len(buf) < width {
		return 0, 0, ErrShortSequence
	}

	switch width {
	case 1:
		r = rune(lead)
	case 2:
		r = rune(lead & 0x1F)
	case 3:
		r = rune(lead & 0x0F)
	case 4:
		r = rune(lead & 0x07)
	}
	for k := 1; k < width; k++ {
		trail := buf[k]
		if trail&0xC0 != 0x80 {
			return illFormed("invalid trailing octet")
		}
		r = r<<6 | rune(trail&0x3F)
	}

	switch {
	case width == 2 && r < 0x80:
		return illFormed("overlong 2-byte sequence")
	case width == 3 && r < 0x800:
		return illFormed("overlong 3-byte sequence")
	case width == 4 && r < 0x10000:
		return illFormed("overlong 4-byte sequence")
	}
	if IsSurrogate(r) || r > MaxCodePoint {
		return illFormed("code point out of range")
	}
	return r, width, nil
}

// DecodeUTF16 decodes one scalar value (one or two code units, for a
// surrogate pair) from the front of buf, which holds 16-bit code units in
// the given byte order. width is the number of bytes consumed (2 or 4).
func DecodeUTF16(buf []byte, bigEndian bool) (r rune, width int, err error) {
	if len(buf) < 2 {
		return 0, 0, ErrShortSequence
	}
	unit1 := readUnit16(buf, bigEndian)
	if IsLowSurrogate(unit1) {
		return illFormed("unexpected low surrogate")
	}
	if !IsHighSurrogate(unit1) {
		return unit1, 2, nil
	}
	if len(buf) < 4 {
		return 0, 0, ErrShortSequence
	}
	unit2 := readUnit16(buf[2:], bigEndian)
	if !IsLowSurrogate(unit2) {
		return illFormed("expected low surrogate after high surrogate")
	}
	return CombineSurrogatePair(unit1, unit2), 4, nil
}

func readUnit16(buf []byte, bigEndian bool) rune {
	if bigEndian {
		return rune(buf[0])<<8 | rune(buf[1])
	}
	return rune(buf[1])<<8 | rune(buf[0])
}

// DecodeUTF32 decodes one 32-bit code unit from the front of buf. width is
// always 4 on success.
func DecodeUTF32(buf []byte, bigEndian bool) (r rune, width int, err error) {
	if len(buf) < 4 {
		return 0, 0, ErrShortSequence
	}
	var v uint32
	if bigEndian {
		v = uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	} else {
		v = uint32(buf[3])<<24 | uint32(buf[2])<<16 | uint32(buf[1])<<8 | uint32(buf[0])
	}
	r = rune(v)
	if r < 0 || r > MaxCodePoint || IsSurrogate(r) {
		return illFormed("code point out of range")
	}
	return r, 4, nil
}

// Decode dispatches to the decoder matching enc. enc must not be
// AnyEncoding.
func Decode(enc Encoding, buf []byte) (r rune, width int, err error) {
	switch enc {
	case UTF8:
		return DecodeUTF8(buf)
	case UTF16LE:
		return DecodeUTF16(buf, false)
	case UTF16BE:
		return DecodeUTF16(buf, true)
	case UTF32LE:
		return DecodeUTF32(buf, false)
	case UTF32BE:
		return DecodeUTF32(buf, true)
	default:
		return illFormed("unsupported encoding")
	}
}

// AppendUTF8 appends the UTF-8 encoding of r to dst and returns the
// extended slice. It assumes r is already a validated scalar value.
func AppendUTF8(dst []byte, r rune) []byte {
	switch {
	case r <= 0x7F:
		return append(dst, byte(r))
	case r <= 0x7FF:
		return append(dst, byte(0xC0+(r>>6)), byte(0x80+(r&0x3F)))
	case r <= 0xFFFF:
		return append(dst,
			byte(0xE0+(r>>12)),
			byte(0x80+((r>>6)&0x3F)),
			byte(0x80+(r&0x3F)),
		)
	default:
		return append(dst,
			byte(0xF0+(r>>18)),
			byte(0x80+((r>>12)&0x3F)),
			byte(0x80+((r>>6)&0x3F)),
			byte(0x80+(r&0x3F)),
		)
	}
}
