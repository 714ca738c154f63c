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

import "github.com/couchdeveloper/jpjson/internal/unicodeh"

// Encoding identifies the source encoding of a JSON text. AnyEncoding
// requests BOM detection, falling back to a heuristic over the first four
// bytes.
type Encoding = unicodeh.Encoding

// Supported source encodings, re-exported from the internal encoding
// layer so callers never need to import it directly.
const (
	AnyEncoding = unicodeh.AnyEncoding
	UTF8        = unicodeh.UTF8
	UTF16LE     = unicodeh.UTF16LE
	UTF16BE     = unicodeh.UTF16BE
	UTF32LE     = unicodeh.UTF32LE
	UTF32BE     = unicodeh.UTF32BE
)

// Policy selects how the parser handles a code point class that
// conformant JSON leaves unaddressed: Unicode noncharacters, and the
// Unicode NULL code point. The two are configured independently.
type Policy int

const (
	PolicyError Policy = iota
	PolicyRetain
	PolicySubstitute
	PolicySkip
)

// Extensions gates every non-conformant relaxation this parser supports.
// All default to false, matching strict RFC 4627 behavior.
type Extensions struct {
	// AllowComments permits C/C++-style "//" and "/* */" comments,
	// treated as whitespace.
	AllowComments bool
	// AllowControlCharacters permits raw control characters (U+0001-
	// U+001F) inside string literals. A raw U+0000 is governed by
	// Config.UnicodeNullHandling instead.
	AllowControlCharacters bool
	// AllowLeadingPlusInNumbers permits a leading '+' sign on a number.
	AllowLeadingPlusInNumbers bool
	// AllowLeadingZerosInIntegers permits an integer part with leading
	// zeros, e.g. "007".
	AllowLeadingZerosInIntegers bool
}

// LogLevel filters which log calls a Logger actually emits.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarning
	LogLevelError
	LogLevelNone
)

// Config carries every parser behavior a sink can configure. It replaces
// the bitwise-OR flag enumeration of the library this parser is descended
// from with a plain record of named fields.
type Config struct {
	UnicodeNoncharacterHandling Policy
	UnicodeNullHandling         Policy

	ParseMultipleDocuments      bool
	IgnoreSpuriousTrailingBytes bool
	CheckDuplicateKey           bool

	Extensions Extensions
	LogLevel   LogLevel
}

// DefaultConfig returns the strict, conformant configuration: no
// extensions, noncharacters and NULLs rejected, single-document parsing,
// no tolerance for trailing bytes, no duplicate-key checking, and LogLevel
// set to LogLevelWarning. Neither the parser nor BaseSink reads LogLevel;
// filtering is done by the Logger a sink installs (see NewZapLogger).
func DefaultConfig() Config {
	return Config{
		UnicodeNoncharacterHandling: PolicyError,
		UnicodeNullHandling:         PolicyError,
		LogLevel:                    LogLevelWarning,
	}
}
