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
	"github.com/couchdeveloper/jpjson/internal/scanner"
	"github.com/couchdeveloper/jpjson/internal/unicodeh"
)

// parser drives a Sink by walking one JSON document from a scanner.Reader.
// Its recursive-descent shape mirrors the grammar directly: value, array,
// object, string, number and the two literals are each one method. Six
// conceptual states govern what is legal next - expecting a value, the
// start of an array, the separator between array elements, the start of
// an object, the separator between a key and its value, and the separator
// between a key-value pair and the next - but since each is entered and
// left from exactly one call site, they fall directly out of control flow
// rather than needing an explicit state field.
type parser struct {
	rd    *scanner.Reader
	sink  Sink
	cfg   Config
	numSc *scanner.NumberScanner
	strSc *scanner.StringScanner
}

func newParser(rd *scanner.Reader, sink Sink, cfg Config) *parser {
	return &parser{
		rd:   rd,
		sink: sink,
		cfg:  cfg,
		numSc: scanner.NewNumberScanner(scanner.NumberExtensions{
			AllowLeadingPlus: cfg.Extensions.AllowLeadingPlusInNumbers,
			AllowLeadingZero: cfg.Extensions.AllowLeadingZerosInIntegers,
		}),
		strSc: scanner.NewStringScanner(scanner.StringPolicy{
			Noncharacter:           scanner.Policy(cfg.UnicodeNoncharacterHandling),
			Null:                   scanner.Policy(cfg.UnicodeNullHandling),
			AllowControlCharacters: cfg.Extensions.AllowControlCharacters,
		}),
	}
}

// sinkAbort distinguishes an error a Sink callback returned from one the
// scanner layer produced, so the two can be wrapped into different
// ErrorKind values.
type sinkAbort struct{ err error }

func (e *sinkAbort) Error() string { return e.err.Error() }
func (e *sinkAbort) Unwrap() error { return e.err }

func (p *parser) errAt(kind ErrorKind, msg string) error {
	pe := &ParseError{Kind: kind, Message: msg, Offset: p.rd.Offset(), Line: p.rd.Line(), Column: p.rd.Column()}
	p.sink.Error(pe)
	return pe
}

func (p *parser) wrapSinkErr(err error) error {
	if pe, ok := err.(*ParseError); ok {
		if pe.Line == 0 {
			pe.Offset, pe.Line, pe.Column = p.rd.Offset(), p.rd.Line(), p.rd.Column()
		}
		return pe
	}
	pe := &ParseError{Kind: InternalRuntimeError, Message: err.Error(), Offset: p.rd.Offset(), Line: p.rd.Line(), Column: p.rd.Column(), Err: err}
	p.sink.Error(pe)
	return pe
}

func (p *parser) wrapScanErr(err error) error {
	offset, line, col := p.rd.Offset(), p.rd.Line(), p.rd.Column()
	kind := InternalRuntimeError

	switch e := err.(type) {
	case *scanner.SourceError:
		offset = e.Offset
		kind = EncodingNotSupportedError
		if _, ok := e.Err.(*unicodeh.IllFormedError); ok {
			kind = IllformedUnicodeSequenceError
		}
	case *scanner.BadNumberError:
		offset, kind = e.Offset, BadNumberError
	case *scanner.ControlCharError:
		offset, kind = e.Offset, ControlCharNotAllowedError
	case *scanner.NullNotAllowedError:
		offset, kind = e.Offset, UnicodeNullNotAllowedError
	case *scanner.InvalidHexValueError:
		offset, kind = e.Offset, InvalidHexValueError
	case *scanner.InvalidEscapeSeqError:
		offset, kind = e.Offset, InvalidEscapeSeqError
	case *scanner.ExpectedHighSurrogateError:
		offset, kind = e.Offset, ExpectedHighSurrogateError
	case *scanner.ExpectedLowSurrogateError:
		offset, kind = e.Offset, ExpectedLowSurrogateError
	case *scanner.NoncharacterError:
		offset, kind = e.Offset, UnicodeNoncharacterError
	case *scanner.UnterminatedStringError:
		offset, kind = e.Offset, UnexpectedEndError
	case *scanner.KeyTooLongError:
		offset, kind = e.Offset, InternalRuntimeError
	}

	pe := &ParseError{Kind: kind, Message: err.Error(), Offset: offset, Line: line, Column: col, Err: err}
	p.sink.Error(pe)
	return pe
}

// sinkAbortError recovers the *ParseError a Sink should have recorded via
// Error before returning false from EndObject.
func (p *parser) sinkAbortError() error {
	type errHolder interface{ Err() *ParseError }
	if eh, ok := p.sink.(errHolder); ok {
		if e := eh.Err(); e != nil {
			return e
		}
	}
	return p.errAt(InternalRuntimeError, "sink rejected object without recording an error")
}

func (p *parser) skipWhitespace() error {
	for {
		r, ok := p.rd.Peek()
		if !ok {
			return nil
		}
		switch r {
		case ' ', '\t', '\n', '\r':
			p.rd.Advance()
			continue
		case '/':
			if !p.cfg.Extensions.AllowComments {
				return nil
			}
			if err := p.skipComment(); err != nil {
				return err
			}
			continue
		}
		return nil
	}
}

func (p *parser) skipComment() error {
	p.rd.Advance() // consume leading '/'
	r, ok := p.rd.Peek()
	if !ok {
		return p.errAt(SyntaxError, "unterminated comment")
	}
	switch r {
	case '/':
		p.rd.Advance()
		for {
			r, ok := p.rd.Advance()
			if !ok || r == '\n' {
				return nil
			}
		}
	case '*':
		p.rd.Advance()
		for {
			r, ok := p.rd.Advance()
			if !ok {
				return p.errAt(SyntaxError, "unterminated block comment")
			}
			if r == '*' {
				if next, ok := p.rd.Peek(); ok && next == '/' {
					p.rd.Advance()
					return nil
				}
			}
		}
	default:
		return p.errAt(SyntaxError, "expected comment after '/'")
	}
}

func (p *parser) parseValue() error {
	if p.sink.IsCanceled() {
		return p.errAt(Canceled, "parse canceled")
	}
	if err := p.skipWhitespace(); err != nil {
		return err
	}
	r, ok := p.rd.Peek()
	if !ok {
		return p.errAt(UnexpectedEndError, "unexpected end of input, expected value")
	}
	switch {
	case r == '{':
		return p.parseObject()
	case r == '[':
		return p.parseArray()
	case r == '"':
		return p.parseStringValue()
	case r == 't' || r == 'f':
		return p.parseBoolean(r)
	case r == 'n':
		return p.parseNull()
	case r == '-' || r == '+' || (r >= '0' && r <= '9'):
		return p.parseNumber()
	default:
		return p.errAt(ExpectedValueError, "expected a value")
	}
}

func (p *parser) parseObject() error {
	p.rd.Advance() // consume '{'
	if err := p.sink.BeginObject(); err != nil {
		return p.wrapSinkErr(err)
	}

	if err := p.skipWhitespace(); err != nil {
		return err
	}
	if r, ok := p.rd.Peek(); ok && r == '}' {
		p.rd.Advance()
		if !p.sink.EndObject() {
			return p.sinkAbortError()
		}
		return nil
	}

	index := 0
	for {
		if err := p.skipWhitespace(); err != nil {
			return err
		}
		if r, ok := p.rd.Peek(); !ok || r != '"' {
			return p.errAt(ExpectedStringError, "expected a string key")
		}
		key, err := p.scanKeyString()
		if err != nil {
			return err
		}

		if err := p.skipWhitespace(); err != nil {
			return err
		}
		if r, ok := p.rd.Peek(); !ok || r != ':' {
			return p.errAt(ExpectedTokenKeyValueSepError, "expected ':'")
		}
		p.rd.Advance()

		if err := p.sink.BeginKeyValuePair(key, index); err != nil {
			return p.wrapSinkErr(err)
		}
		if err := p.parseValue(); err != nil {
			return err
		}
		if err := p.sink.EndKeyValuePair(); err != nil {
			return p.wrapSinkErr(err)
		}
		index++

		if err := p.skipWhitespace(); err != nil {
			return err
		}
		r, ok := p.rd.Peek()
		if !ok {
			return p.errAt(UnexpectedEndError, "unexpected end of input inside object")
		}
		if r == ',' {
			p.rd.Advance()
			continue
		}
		if r == '}' {
			p.rd.Advance()
			if !p.sink.EndObject() {
				return p.sinkAbortError()
			}
			return nil
		}
		return p.errAt(ExpectedTokenObjectEndError, "expected ',' or '}'")
	}
}

func (p *parser) parseArray() error {
	p.rd.Advance() // consume '['
	if err := p.sink.BeginArray(); err != nil {
		return p.wrapSinkErr(err)
	}

	if err := p.skipWhitespace(); err != nil {
		return err
	}
	if r, ok := p.rd.Peek(); ok && r == ']' {
		p.rd.Advance()
		if err := p.sink.EndArray(); err != nil {
			return p.wrapSinkErr(err)
		}
		return nil
	}

	index := 0
	for {
		if err := p.sink.BeginArrayItem(index); err != nil {
			return p.wrapSinkErr(err)
		}
		if err := p.parseValue(); err != nil {
			return err
		}
		if err := p.sink.EndArrayItem(index); err != nil {
			return p.wrapSinkErr(err)
		}
		index++

		if err := p.skipWhitespace(); err != nil {
			return err
		}
		r, ok := p.rd.Peek()
		if !ok {
			return p.errAt(UnexpectedEndError, "unexpected end of input inside array")
		}
		if r == ',' {
			p.rd.Advance()
			if err := p.skipWhitespace(); err != nil {
				return err
			}
			continue
		}
		if r == ']' {
			p.rd.Advance()
			if err := p.sink.EndArray(); err != nil {
				return p.wrapSinkErr(err)
			}
			return nil
		}
		return p.errAt(ExpectedTokenArrayEndError, "expected ',' or ']'")
	}
}

func (p *parser) scanKeyString() (string, error) {
	var key string
	err := p.strSc.Scan(p.rd, true, func(chunk []byte, hasMore bool) error {
		key = string(chunk)
		return nil
	})
	if err != nil {
		return "", p.wrapScanErr(err)
	}
	return key, nil
}

func (p *parser) parseStringValue() error {
	err := p.strSc.Scan(p.rd, false, func(chunk []byte, hasMore bool) error {
		if err := p.sink.String(chunk, hasMore, false); err != nil {
			return &sinkAbort{err}
		}
		return nil
	})
	if err != nil {
		if sa, ok := err.(*sinkAbort); ok {
			return p.wrapSinkErr(sa.err)
		}
		return p.wrapScanErr(err)
	}
	return nil
}

func (p *parser) parseNumber() error {
	desc, err := p.numSc.Scan(p.rd)
	if err != nil {
		return p.wrapScanErr(err)
	}
	if err := p.sink.Number(numberDescriptionFromScanner(desc)); err != nil {
		return p.wrapSinkErr(err)
	}
	return nil
}

func (p *parser) parseBoolean(first rune) error {
	var lit string
	var want bool
	if first == 't' {
		lit, want = "true", true
	} else {
		lit, want = "false", false
	}
	if !p.matchLiteral(lit) {
		return p.errAt(ExpectedValueError, "expected '"+lit+"'")
	}
	if err := p.sink.Boolean(want); err != nil {
		return p.wrapSinkErr(err)
	}
	return nil
}

func (p *parser) parseNull() error {
	if !p.matchLiteral("null") {
		return p.errAt(ExpectedValueError, "expected 'null'")
	}
	if err := p.sink.Null(); err != nil {
		return p.wrapSinkErr(err)
	}
	return nil
}

func (p *parser) matchLiteral(lit string) bool {
	for _, want := range lit {
		r, ok := p.rd.Peek()
		if !ok || r != want {
			return false
		}
		p.rd.Advance()
	}
	return true
}
