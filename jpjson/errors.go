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

package jpjson

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates every way a parse can fail. The numeric values are
// part of the public contract: clients inspecting a sink's stored error
// may depend on them, so new kinds are only ever appended at the end of
// their group.
type ErrorKind int

// Error kinds, grouped and ordered exactly as the original parser_error_type
// enumeration this taxonomy was distilled from.
const (
	NoError ErrorKind = iota

	// Operational
	InternalLogicError
	InternalRuntimeError
	Canceled
	EncodingNotSupportedError

	// Structural / syntax
	SyntaxError
	EmptyTextError
	ControlCharNotAllowedError
	UnexpectedEndError
	UnicodeNullNotAllowedError
	ExpectedArrayOrObjectError
	ExpectedTokenObjectEndError
	ExpectedTokenArrayEndError
	ExpectedTokenKeyValueSepError
	InvalidHexValueError
	InvalidEscapeSeqError
	BadNumberError
	ExpectedStringError
	ExpectedNumberError
	ExpectedValueError

	// Unicode
	InvalidUnicodeError
	IllformedUnicodeSequenceError
	ExpectedHighSurrogateError
	ExpectedLowSurrogateError
	UnicodeNoncharacterError
	UnicodeRejectedByFilter

	// Semantic
	JSONKeyExistsError

	// Driver
	JSONExtraCharactersAtEnd
	// OutOfBoundUnicodeNull is reserved for symmetry with the taxonomy
	// this was distilled from, which declares the equivalent code but
	// never raises it either: a trailing U+0000 or EOF after a document
	// ends the parse successfully with a logged warning, not this error.
	OutOfBoundUnicodeNull

	numErrorKinds
)

var errorKindNames = [numErrorKinds]string{
	"no error",
	"internal logic error",
	"internal runtime error",
	"operation canceled",
	"encoding not supported",
	"syntax error",
	"text is empty",
	"control character not allowed in json string",
	"unexpected end of text",
	"encountered U+0000",
	"expected array or object",
	"expected end-of-object '}'",
	"expected end-of-array ']'",
	"expected key-value-separator ':'",
	"invalid hexadecimal number",
	"invalid escape sequence",
	"bad number",
	"expected string",
	"expected number",
	"expected value",
	"invalid unicode code point",
	"illformed Unicode sequence",
	"expected high surrogate code point",
	"expected low surrogate code point",
	"encountered unicode noncharacter",
	"Unicode code point rejected by filter",
	"key exists",
	"extra characters at end of json document not allowed",
	"encountered out-of-bound U+0000 character(s)",
}

func (k ErrorKind) String() string {
	if k < 0 || k >= numErrorKinds {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return errorKindNames[k]
}

// ParseError is the error value returned by the parse entry points and
// recorded by BaseSink.Error. Offset locates the byte at which the error
// was detected; Line and Column give the reader's position when the error
// was reported, which for errors from the string and number scanners can
// lie past Offset. Err, when set, is the lower-level cause (a scanner or
// unicodeh error) this ParseError wraps.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Offset  int64
	Line    int
	Column  int
	Err     error
}

func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("jpjson: %s at offset %d (line %d, column %d): %s", e.Kind, e.Offset, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("jpjson: %s at offset %d (line %d, column %d)", e.Kind, e.Offset, e.Line, e.Column)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Sentinel errors grouping ErrorKind by class, so a caller can test for a
// whole category with errors.Is(err, jpjson.ErrSyntax) instead of
// switching on individual ErrorKind values.
var (
	ErrOperational = errors.New("jpjson: operational error")
	ErrSyntax      = errors.New("jpjson: syntax error")
	ErrUnicode     = errors.New("jpjson: unicode error")
	ErrSemantic    = errors.New("jpjson: semantic error")
	ErrDriver      = errors.New("jpjson: driver error")
)

// errorKindGroup maps each ErrorKind to the sentinel its class reports
// through ParseError.Is, following the same grouping as the const block
// above.
var errorKindGroup = [numErrorKinds]error{
	NoError:                       nil,
	InternalLogicError:            ErrOperational,
	InternalRuntimeError:          ErrOperational,
	Canceled:                      ErrOperational,
	EncodingNotSupportedError:     ErrOperational,
	SyntaxError:                   ErrSyntax,
	EmptyTextError:                ErrSyntax,
	ControlCharNotAllowedError:    ErrSyntax,
	UnexpectedEndError:            ErrSyntax,
	UnicodeNullNotAllowedError:    ErrSyntax,
	ExpectedArrayOrObjectError:    ErrSyntax,
	ExpectedTokenObjectEndError:   ErrSyntax,
	ExpectedTokenArrayEndError:    ErrSyntax,
	ExpectedTokenKeyValueSepError: ErrSyntax,
	InvalidHexValueError:          ErrSyntax,
	InvalidEscapeSeqError:         ErrSyntax,
	BadNumberError:                ErrSyntax,
	ExpectedStringError:           ErrSyntax,
	ExpectedNumberError:           ErrSyntax,
	ExpectedValueError:            ErrSyntax,
	InvalidUnicodeError:           ErrUnicode,
	IllformedUnicodeSequenceError: ErrUnicode,
	ExpectedHighSurrogateError:    ErrUnicode,
	ExpectedLowSurrogateError:     ErrUnicode,
	UnicodeNoncharacterError:      ErrUnicode,
	UnicodeRejectedByFilter:       ErrUnicode,
	JSONKeyExistsError:            ErrSemantic,
	JSONExtraCharactersAtEnd:      ErrDriver,
	OutOfBoundUnicodeNull:         ErrDriver,
}

// Is reports whether target is the sentinel error for e.Kind's class,
// letting callers write errors.Is(err, jpjson.ErrSyntax) to match an
// entire class of failure without enumerating every ErrorKind in it.
// It does not otherwise compare ParseError values.
func (e *ParseError) Is(target error) bool {
	group := errorKindGroup[e.Kind]
	return group != nil && group == target
}
