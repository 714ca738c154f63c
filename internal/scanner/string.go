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

package scanner

import (
	"fmt"

	"github.com/couchdeveloper/jpjson/internal/unicodeh"
)

// Policy selects how the string scanner handles a code point class that
// conformant JSON does not address directly (noncharacters, and the
// Unicode NULL code point), independent of one another.
type Policy int

const (
	PolicyError Policy = iota
	PolicyRetain
	PolicySubstitute
	PolicySkip
)

// StringPolicy bundles the string scanner's configurable behaviors.
type StringPolicy struct {
	Noncharacter           Policy
	Null                   Policy
	AllowControlCharacters bool
}

const (
	// chunkThreshold is the scratch buffer size, in bytes, at which a
	// string value chunk is flushed to the sink mid-scan.
	chunkThreshold = 4 * 1024
	// keyMaxBytes is the hard cap on a key string's scratch buffer; keys
	// must not chunk, so exceeding it is a fatal runtime error rather
	// than a flush point.
	keyMaxBytes = 32 * 1024
)

// Emit is called by StringScanner.Scan each time a chunk of decoded string content
// is ready. hasMore is true for every call except the last.
type Emit func(chunk []byte, hasMore bool) error

// StringScanner recognizes a JSON string, resolves its escape sequences,
// validates its Unicode content, and emits the decoded UTF-8 content in
// chunks through an Emit callback. It owns a reusable scratch buffer;
// content handed to Emit is only valid until the callback returns.
type StringScanner struct {
	buf    []byte
	policy StringPolicy
}

// NewStringScanner constructs a scanner honoring the given policy.
func NewStringScanner(policy StringPolicy) *StringScanner {
	return &StringScanner{policy: policy}
}

// ControlCharError reports a raw control character (U+0001-U+001F) in a
// string where AllowControlCharacters is not set. A raw U+0000 is handled
// by the Null policy instead and reported as NullNotAllowedError.
type ControlCharError struct{ Offset int64 }

func (e *ControlCharError) Error() string { return "control character not allowed in string" }

// NullNotAllowedError reports a literal or escaped U+0000 rejected by the
// null-handling policy.
type NullNotAllowedError struct{ Offset int64 }

func (e *NullNotAllowedError) Error() string { return "Unicode NULL not allowed" }

// InvalidHexValueError reports a non-hex-digit in a \uXXXX escape.
type InvalidHexValueError struct{ Offset int64 }

func (e *InvalidHexValueError) Error() string { return "invalid hexadecimal value in \\u escape" }

// InvalidEscapeSeqError reports an unrecognized \<char> escape.
type InvalidEscapeSeqError struct {
	Offset int64
	Char   rune
}

func (e *InvalidEscapeSeqError) Error() string {
	return fmt.Sprintf("invalid escape sequence \\%c", e.Char)
}

// ExpectedHighSurrogateError reports a lone low surrogate escape.
type ExpectedHighSurrogateError struct{ Offset int64 }

func (e *ExpectedHighSurrogateError) Error() string { return "expected high surrogate code point" }

// ExpectedLowSurrogateError reports a high surrogate escape not
// immediately followed by a low surrogate escape.
type ExpectedLowSurrogateError struct{ Offset int64 }

func (e *ExpectedLowSurrogateError) Error() string { return "expected low surrogate code point" }

// NoncharacterError reports a Unicode noncharacter rejected by policy.
type NoncharacterError struct {
	Offset    int64
	CodePoint rune
}

func (e *NoncharacterError) Error() string {
	return fmt.Sprintf("encountered Unicode noncharacter U+%04X", e.CodePoint)
}

// UnterminatedStringError reports end of input before a closing quote.
type UnterminatedStringError struct{ Offset int64 }

func (e *UnterminatedStringError) Error() string { return "unterminated string literal" }

// KeyTooLongError reports a key string exceeding keyMaxBytes; keys must
// not chunk, so this is a fatal runtime condition rather than a flush
// point.
type KeyTooLongError struct{ Offset int64 }

func (e *KeyTooLongError) Error() string {
	return fmt.Sprintf("key string exceeds maximum length of %d bytes", keyMaxBytes)
}

// Scan consumes a JSON string literal from rd, which must be positioned at
// the opening quote, and streams its decoded content to emit. isKey
// disables chunking (and enforces keyMaxBytes) for non-chunkable key
// strings.
func (s *StringScanner) Scan(rd *Reader, isKey bool, emit Emit) error {
	s.buf = s.buf[:0]

	if r, ok := rd.Advance(); !ok || r != '"' {
		return &UnterminatedStringError{Offset: rd.Offset()}
	}

	for {
		r, ok := rd.Peek()
		if !ok {
			return &UnterminatedStringError{Offset: rd.Offset()}
		}

		switch {
		case r == '"':
			rd.Advance()
			return emit(s.buf, false)
		case r == '\\':
			offset := rd.Offset()
			rd.Advance()
			if err := s.scanEscape(rd, offset); err != nil {
				return err
			}
		case r == 0:
			offset := rd.Offset()
			rd.Advance()
			if err := s.appendPolicy(s.policy.Null, r, offset, func() {
				s.buf = unicodeh.AppendUTF8(s.buf, r)
			}); err != nil {
				return err
			}
		case r < 0x20:
			offset := rd.Offset()
			if !s.policy.AllowControlCharacters {
				return &ControlCharError{Offset: offset}
			}
			rd.Advance()
			s.buf = unicodeh.AppendUTF8(s.buf, r)
		default:
			offset := rd.Offset()
			rd.Advance()
			if unicodeh.IsNoncharacter(r) {
				if err := s.appendNoncharacter(r, offset); err != nil {
					return err
				}
			} else {
				s.buf = unicodeh.AppendUTF8(s.buf, r)
			}
		}

		if err := s.maybeFlush(rd, isKey, emit); err != nil {
			return err
		}
	}
}

func (s *StringScanner) scanEscape(rd *Reader, offset int64) error {
	c, ok := rd.Advance()
	if !ok {
		return &UnterminatedStringError{Offset: offset}
	}
	switch c {
	case '"', '\\', '/':
		s.buf = append(s.buf, byte(c))
		return nil
	case 'b':
		s.buf = append(s.buf, '\b')
		return nil
	case 'f':
		s.buf = append(s.buf, '\f')
		return nil
	case 'n':
		s.buf = append(s.buf, '\n')
		return nil
	case 'r':
		s.buf = append(s.buf, '\r')
		return nil
	case 't':
		s.buf = append(s.buf, '\t')
		return nil
	case 'u':
		return s.scanUnicodeEscape(rd, offset)
	default:
		return &InvalidEscapeSeqError{Offset: offset, Char: c}
	}
}

func (s *StringScanner) scanUnicodeEscape(rd *Reader, offset int64) error {
	first, err := s.scanHex4(rd, offset)
	if err != nil {
		return err
	}
	r := rune(first)

	switch {
	case unicodeh.IsLowSurrogate(r):
		return &ExpectedHighSurrogateError{Offset: offset}
	case unicodeh.IsHighSurrogate(r):
		lowOffset := rd.Offset()
		b1, ok := rd.Advance()
		b2, ok2 := rd.Advance()
		if !ok || !ok2 || b1 != '\\' || b2 != 'u' {
			return &ExpectedLowSurrogateError{Offset: lowOffset}
		}
		second, err := s.scanHex4(rd, lowOffset)
		if err != nil {
			return err
		}
		low := rune(second)
		if !unicodeh.IsLowSurrogate(low) {
			return &ExpectedLowSurrogateError{Offset: lowOffset}
		}
		r = unicodeh.CombineSurrogatePair(r, low)
	}

	if r == 0 {
		return s.appendPolicy(s.policy.Null, r, offset, func() {
			s.buf = unicodeh.AppendUTF8(s.buf, r)
		})
	}
	if unicodeh.IsNoncharacter(r) {
		return s.appendNoncharacter(r, offset)
	}
	s.buf = unicodeh.AppendUTF8(s.buf, r)
	return nil
}

func (s *StringScanner) scanHex4(rd *Reader, offset int64) (uint32, error) {
	var v uint32
	for i := 0; i < 4; i++ {
		c, ok := rd.Advance()
		if !ok {
			return 0, &UnterminatedStringError{Offset: offset}
		}
		d, ok := hexDigit(c)
		if !ok {
			return 0, &InvalidHexValueError{Offset: offset}
		}
		v = v<<4 | uint32(d)
	}
	return v, nil
}

func hexDigit(c rune) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	default:
		return 0, false
	}
}

func (s *StringScanner) appendNoncharacter(r rune, offset int64) error {
	return s.appendPolicy(s.policy.Noncharacter, r, offset, func() {
		s.buf = unicodeh.AppendUTF8(s.buf, r)
	})
}

// appendPolicy applies a Policy to a rejected-by-default code point. onRetain
// is invoked to append the raw code point when the policy is PolicyRetain.
func (s *StringScanner) appendPolicy(p Policy, r rune, offset int64, onRetain func()) error {
	switch p {
	case PolicyError:
		if r == 0 {
			return &NullNotAllowedError{Offset: offset}
		}
		return &NoncharacterError{Offset: offset, CodePoint: r}
	case PolicyRetain:
		onRetain()
		return nil
	case PolicySubstitute:
		s.buf = unicodeh.AppendUTF8(s.buf, 0xFFFD)
		return nil
	case PolicySkip:
		return nil
	default:
		return &NoncharacterError{Offset: offset, CodePoint: r}
	}
}

func (s *StringScanner) maybeFlush(rd *Reader, isKey bool, emit Emit) error {
	if isKey {
		if len(s.buf) > keyMaxBytes {
			return &KeyTooLongError{Offset: rd.Offset()}
		}
		return nil
	}
	if len(s.buf) >= chunkThreshold {
		if err := emit(s.buf, true); err != nil {
			return err
		}
		s.buf = s.buf[:0]
	}
	return nil
}
