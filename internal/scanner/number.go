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

// NumberClass classifies a scanned JSON number so the sink can pick a
// target numeric type without rescanning the digit buffer.
type NumberClass int

const (
	UnsignedInteger NumberClass = iota
	SignedInteger
	UnsignedDecimal
	SignedDecimal
	Scientific
)

func (c NumberClass) String() string {
	switch c {
	case UnsignedInteger:
		return "unsigned-integer"
	case SignedInteger:
		return "signed-integer"
	case UnsignedDecimal:
		return "unsigned-decimal"
	case SignedDecimal:
		return "signed-decimal"
	case Scientific:
		return "scientific"
	default:
		return "unknown"
	}
}

// minNumberBufferCap is the smallest scratch buffer the scanner allocates;
// it grows as needed to hold the longest legal number the scanner accepts
// (46+ digits is a commonly cited bound for a round-tripping IEEE 754
// double plus sign, decimal point and exponent).
const minNumberBufferCap = 32

// NumberDescription is the value object emitted for a scanned number: an
// exact ASCII copy of the source digits, its classification, and the count
// of significant digits in its integer and fractional parts. Digits is
// computed fresh each scan rather than borrowed from a parent class
// hierarchy (see the original's number_description type this replaces).
type NumberDescription struct {
	Text   string
	Class  NumberClass
	Digits int
}

// NumberExtensions gates the two non-conformant number relaxations; both
// default to false (conformant RFC 4627 behavior).
type NumberExtensions struct {
	AllowLeadingPlus bool
	AllowLeadingZero bool
}

// NumberScanner recognizes a JSON number from a Reader positioned at the
// number's first character (a '-' or a digit). It owns a growable ASCII
// scratch buffer reused across calls; the Text returned by Scan is a
// fresh copy and is safe to retain.
type NumberScanner struct {
	buf []byte
	ext NumberExtensions
}

// NewNumberScanner constructs a scanner honoring the given extensions.
func NewNumberScanner(ext NumberExtensions) *NumberScanner {
	return &NumberScanner{buf: make([]byte, 0, minNumberBufferCap), ext: ext}
}

// BadNumberError reports why a candidate number failed to scan.
type BadNumberError struct {
	Offset int64
	Reason string
}

func (e *BadNumberError) Error() string { return "bad number: " + e.Reason }

// Scan consumes a JSON number from rd and returns its description.
func (s *NumberScanner) Scan(rd *Reader) (NumberDescription, error) {
	s.buf = s.buf[:0]
	startOffset := rd.Offset()

	signed := false
	if r, ok := rd.Peek(); ok && r == '-' {
		signed = true
		s.emit(rd)
	} else if ok && r == '+' {
		if !s.ext.AllowLeadingPlus {
			return NumberDescription{}, &BadNumberError{Offset: startOffset, Reason: "leading '+' is not allowed"}
		}
		s.emit(rd)
	}

	intDigits, err := s.scanInt(rd, startOffset)
	if err != nil {
		return NumberDescription{}, err
	}

	fracDigits := 0
	hasFrac := false
	if r, ok := rd.Peek(); ok && r == '.' {
		hasFrac = true
		s.emit(rd)
		n, err := s.scanFracDigits(rd, startOffset)
		if err != nil {
			return NumberDescription{}, err
		}
		fracDigits = n
	}

	hasExp := false
	if r, ok := rd.Peek(); ok && (r == 'e' || r == 'E') {
		hasExp = true
		s.emit(rd)
		if r, ok := rd.Peek(); ok && (r == '+' || r == '-') {
			s.emit(rd)
		}
		if err := s.scanExpDigits(rd, startOffset); err != nil {
			return NumberDescription{}, err
		}
	}

	class := classify(signed, hasFrac, hasExp)
	return NumberDescription{
		Text:   string(s.buf),
		Class:  class,
		Digits: intDigits + fracDigits,
	}, nil
}

func classify(signed, hasFrac, hasExp bool) NumberClass {
	switch {
	case hasExp:
		return Scientific
	case hasFrac && signed:
		return SignedDecimal
	case hasFrac:
		return UnsignedDecimal
	case signed:
		return SignedInteger
	default:
		return UnsignedInteger
	}
}

func (s *NumberScanner) emit(rd *Reader) {
	r, _ := rd.Advance()
	s.buf = append(s.buf, byte(r))
}

// scanInt scans `int = 0 | [1-9] digits` and returns the count of integer
// digits consumed (including a lone leading zero).
func (s *NumberScanner) scanInt(rd *Reader, startOffset int64) (int, error) {
	r, ok := rd.Peek()
	if !ok || r < '0' || r > '9' {
		return 0, &BadNumberError{Offset: startOffset, Reason: "expected a digit"}
	}
	if r == '0' {
		s.emit(rd)
		if next, ok := rd.Peek(); ok && next >= '0' && next <= '9' {
			if !s.ext.AllowLeadingZero {
				return 0, &BadNumberError{Offset: rd.Offset(), Reason: "leading zero not allowed"}
			}
			digits := 1
			for {
				next, ok = rd.Peek()
				if !ok || next < '0' || next > '9' {
					break
				}
				s.emit(rd)
				digits++
			}
			return digits, nil
		}
		return 1, nil
	}
	digits := 0
	for {
		r, ok = rd.Peek()
		if !ok || r < '0' || r > '9' {
			break
		}
		s.emit(rd)
		digits++
	}
	return digits, nil
}

// scanFracDigits scans the digits after a decimal point. Leading zeros in
// the fraction are consumed but excluded from the significant digit count.
func (s *NumberScanner) scanFracDigits(rd *Reader, startOffset int64) (int, error) {
	r, ok := rd.Peek()
	if !ok || r < '0' || r > '9' {
		return 0, &BadNumberError{Offset: startOffset, Reason: "expected digit after decimal point"}
	}
	significant := 0
	leadingZeros := true
	for {
		r, ok = rd.Peek()
		if !ok || r < '0' || r > '9' {
			break
		}
		s.emit(rd)
		if r == '0' && leadingZeros {
			continue
		}
		leadingZeros = false
		significant++
	}
	return significant, nil
}

func (s *NumberScanner) scanExpDigits(rd *Reader, startOffset int64) error {
	r, ok := rd.Peek()
	if !ok || r < '0' || r > '9' {
		return &BadNumberError{Offset: startOffset, Reason: "expected digit in exponent"}
	}
	for {
		r, ok = rd.Peek()
		if !ok || r < '0' || r > '9' {
			break
		}
		s.emit(rd)
	}
	return nil
}
