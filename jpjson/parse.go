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
	"bytes"
	"context"
	"io"

	"github.com/couchdeveloper/jpjson/internal/scanner"
)

// Parse reads JSON text from r, in the given source encoding (AnyEncoding
// to detect it from a byte-order mark or a heuristic over the first four
// bytes), and drives sink with the events the grammar produces. Per RFC
// 4627, a top-level value must be an object or an array; bare scalars are
// rejected, preserving the stricter of the two RFCs this behavior could
// follow.
//
// StartDocument and EndDocument bracket each individual top-level value
// parsed; in ParseMultipleDocuments mode they fire again for every
// subsequent document. Finished fires exactly once, after the loop below
// exits for any reason, successful or not.
//
// A trailing Unicode NULL or end-of-input immediately following a
// document is never an error: it ends the parse successfully, with only
// a warning logged through sink.Logger, regardless of
// IgnoreSpuriousTrailingBytes. Any other trailing content is handled per
// cfg: in single-document mode it is an error unless
// IgnoreSpuriousTrailingBytes discards it; in ParseMultipleDocuments mode
// Parse attempts to read another document, unless
// IgnoreSpuriousTrailingBytes is set and the trailing content plainly
// isn't the start of one, in which case the remainder is discarded.
func Parse(ctx context.Context, r io.Reader, enc Encoding, cfg Config, sink Sink) error {
	rd := scanner.NewReader(r, enc)
	p := newParser(rd, sink, cfg)
	defer sink.Finished()

	if err := p.skipWhitespace(); err != nil {
		return err
	}
	if _, ok := rd.Peek(); !ok {
		return p.errAt(EmptyTextError, "input is empty")
	}

	for {
		if err := ctx.Err(); err != nil {
			return p.errAt(Canceled, "context canceled")
		}

		if err := sink.StartDocument(cfg); err != nil {
			return p.wrapSinkErr(err)
		}

		r, ok := rd.Peek()
		if !ok {
			return p.errAt(UnexpectedEndError, "unexpected end of input, expected value")
		}
		if r != '{' && r != '[' {
			return p.errAt(ExpectedArrayOrObjectError, "top-level value must be an object or an array")
		}
		if err := p.parseValue(); err != nil {
			return err
		}

		if err := sink.EndDocument(); err != nil {
			return p.wrapSinkErr(err)
		}

		stop, err := p.afterDocument(cfg, sink)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
}

// afterDocument inspects what follows a just-completed document and
// decides whether Parse should stop successfully or loop back for another
// document. In single-document mode without IgnoreSpuriousTrailingBytes,
// trailing content other than U+0000 is instead reported as a
// JSONExtraCharactersAtEnd error.
func (p *parser) afterDocument(cfg Config, sink Sink) (stop bool, err error) {
	if err := p.skipWhitespace(); err != nil {
		return false, err
	}

	next, ok := p.rd.Peek()
	if !ok {
		sink.Logger().Warn("parse loop terminated at end of input following a valid JSON document")
		return true, nil
	}
	if next == 0 {
		sink.Logger().Warn("parse loop terminated on out-of-bound Unicode Null (U+0000) following a valid JSON document")
		return true, nil
	}

	if !cfg.ParseMultipleDocuments {
		if cfg.IgnoreSpuriousTrailingBytes {
			return true, nil
		}
		return false, p.errAt(JSONExtraCharactersAtEnd, "extra characters at end of document")
	}

	if cfg.IgnoreSpuriousTrailingBytes && next != '{' && next != '[' {
		return true, nil
	}
	return false, nil
}

// ParseBytes parses b as JSON text, inferring its encoding from a
// byte-order mark or heuristic.
func ParseBytes(ctx context.Context, b []byte, cfg Config, sink Sink) error {
	return Parse(ctx, bytes.NewReader(b), AnyEncoding, cfg, sink)
}

// ParseString parses s, which must already be UTF-8 (Go's native string
// encoding), as JSON text.
func ParseString(ctx context.Context, s string, cfg Config, sink Sink) error {
	return Parse(ctx, bytes.NewReader([]byte(s)), UTF8, cfg, sink)
}
