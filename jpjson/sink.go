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

import "github.com/couchdeveloper/jpjson/internal/scanner"

// NumberClass classifies a scanned number's surface form.
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
		return "unsigned integer"
	case SignedInteger:
		return "signed integer"
	case UnsignedDecimal:
		return "unsigned decimal"
	case SignedDecimal:
		return "signed decimal"
	case Scientific:
		return "scientific"
	default:
		return "unknown number class"
	}
}

// NumberDescription is the parsed representation of a JSON number handed to
// a Sink: its exact source text, its surface classification, and a count of
// significant digits (every digit of the integer part counts; leading zeros
// in the fractional part before its first nonzero digit are excluded).
type NumberDescription struct {
	Text   string
	Class  NumberClass
	Digits int
}

func numberDescriptionFromScanner(d scanner.NumberDescription) NumberDescription {
	return NumberDescription{
		Text:   d.Text,
		Class:  NumberClass(d.Class),
		Digits: d.Digits,
	}
}

// Sink receives the semantic-actions events a Parse drives as it walks a
// JSON text. Every method that returns an error may use it to abort the
// parse; the error is surfaced from the entry point that was called,
// wrapped in a *ParseError unless it already is one. A Sink that instead
// wants to observe the parse without aborting it should return nil and
// record whatever it needs internally.
//
// String content arrives in one or more calls to String, chunked for large
// values; hasMore is false on the final chunk of a given string. Object
// keys do not go through String: each key arrives whole, never chunked, as
// the key argument of BeginKeyValuePair.
type Sink interface {
	// StartDocument brackets a single top-level value: it is called once
	// before that value's first event. In ParseMultipleDocuments mode it
	// is called again for each subsequent document the same Parse call
	// produces.
	StartDocument(cfg Config) error
	// EndDocument brackets a single top-level value: it is called once
	// that value has been fully consumed, before the parser looks for a
	// next document or trailing content. Like StartDocument, it fires
	// once per document, not once per Parse call.
	EndDocument() error

	BeginArray() error
	EndArray() error
	// BeginArrayItem is called before each array element, including the
	// first, with the zero-based index of the element about to be
	// parsed.
	BeginArrayItem(index int) error
	EndArrayItem(index int) error

	BeginObject() error
	// EndObject reports whether the object closed successfully. A Sink
	// performing duplicate-key rejection returns false (with its error
	// already recorded) to signal the parse should abort; the parser
	// treats a false return as a fatal error.
	EndObject() bool
	// BeginKeyValuePair is called with the decoded key once it has been
	// fully scanned, before its value is parsed.
	BeginKeyValuePair(key string, index int) error
	EndKeyValuePair() error

	// String delivers decoded string value content in one or more chunks.
	// The parser always passes isKey as false, since keys are delivered
	// through BeginKeyValuePair instead.
	String(chunk []byte, hasMore bool, isKey bool) error
	Number(desc NumberDescription) error
	Boolean(v bool) error
	Null() error

	// Error is called once, with the first error the parser or scanner
	// layer detected, immediately before the parse aborts.
	Error(err *ParseError)

	// IsCanceled is polled by the parser between events. Returning true
	// aborts the parse with a Canceled error on the next opportunity.
	IsCanceled() bool

	// Logger exposes the structured logger a Sink wants parse-internal
	// diagnostics sent to.
	Logger() Logger

	// Finished is called exactly once, unconditionally, immediately
	// after a Parse call returns - whether it produced one document,
	// several, or stopped on an error. It is the one signal a Sink can
	// rely on for "no more events are coming", distinct from the
	// per-document StartDocument/EndDocument pair.
	Finished()
}
