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

// Package scanner implements the low-level lexical layer of the JSON
// parser: an input adapter with one-codepoint lookahead and position
// tracking, a number scanner, and a string scanner. None of it knows
// anything about the object/array grammar; that belongs to the parser
// state machine one layer up.
package scanner

import (
	"io"

	"github.com/couchdeveloper/jpjson/internal/unicodeh"
)

// SourceError reports a problem decoding the raw input stream: an
// ill-formed code unit sequence, an unsupported encoding, or an I/O error
// from the underlying reader.
type SourceError struct {
	Offset int64
	Reason string
	Err    error
}

func (e *SourceError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *SourceError) Unwrap() error { return e.Err }

// Reader wraps an io.Reader, decoding it one code point at a time in a
// configured (or inferred) source encoding. It provides the one-codepoint
// lookahead the parser and scanners are built on: Peek never consumes,
// Advance consumes exactly the code point last peeked (or the next one, if
// nothing was peeked), and position never moves backwards.
type Reader struct {
	r          io.Reader
	configured unicodeh.Encoding
	enc        unicodeh.Encoding

	raw    []byte
	rawPos int
	eof    bool

	havePeek  bool
	peekRune  rune
	peekWidth int
	atEnd     bool

	offset int64
	line   int
	column int

	err error
}

// NewReader constructs a Reader over r. If enc is unicodeh.AnyEncoding, the
// encoding is inferred from a BOM, or failing that, a heuristic over the
// first four bytes, the first time enough input has been read to decide.
func NewReader(r io.Reader, enc unicodeh.Encoding) *Reader {
	return &Reader{
		r:          r,
		configured: enc,
		enc:        unicodeh.AnyEncoding,
		line:       1,
		column:     1,
	}
}

// Encoding returns the resolved source encoding. It is unicodeh.AnyEncoding
// until enough input has been buffered to resolve it, which happens no
// later than the first call to Peek or Advance.
func (rd *Reader) Encoding() unicodeh.Encoding { return rd.enc }

// Offset returns the number of source bytes consumed so far.
func (rd *Reader) Offset() int64 { return rd.offset }

// Line and Column report the 1-based position of the next unconsumed code
// point, for error messages. Lines are counted at '\n'.
func (rd *Reader) Line() int   { return rd.line }
func (rd *Reader) Column() int { return rd.column }

// Err returns the sticky error that halted decoding, if any.
func (rd *Reader) Err() error { return rd.err }

// AtEnd reports whether input is exhausted (or a sticky error is set).
func (rd *Reader) AtEnd() bool {
	if err := rd.fillPeek(); err != nil {
		return true
	}
	return rd.atEnd
}

// Peek returns the next code point without consuming it. ok is false at end
// of input or after an error (check Err).
func (rd *Reader) Peek() (r rune, ok bool) {
	if err := rd.fillPeek(); err != nil {
		return 0, false
	}
	if rd.atEnd {
		return 0, false
	}
	return rd.peekRune, true
}

// Advance consumes and returns the next code point. ok is false at end of
// input or after an error.
func (rd *Reader) Advance() (r rune, ok bool) {
	if err := rd.fillPeek(); err != nil {
		return 0, false
	}
	if rd.atEnd {
		return 0, false
	}
	r = rd.peekRune
	width := rd.peekWidth
	rd.rawPos += width
	rd.offset += int64(width)
	if r == '\n' {
		rd.line++
		rd.column = 1
	} else {
		rd.column++
	}
	rd.havePeek = false
	return r, true
}

func (rd *Reader) fillPeek() error {
	if rd.err != nil {
		return rd.err
	}
	if rd.havePeek || rd.atEnd {
		return nil
	}
	if err := rd.ensureEncoding(); err != nil {
		rd.err = err
		return err
	}
	for {
		avail := rd.raw[rd.rawPos:]
		if len(avail) == 0 && rd.eof {
			rd.atEnd = true
			return nil
		}
		r, width, decErr := unicodeh.Decode(rd.enc, avail)
		if decErr == unicodeh.ErrShortSequence {
			if rd.eof {
				rd.err = &SourceError{Offset: rd.offset, Reason: "incomplete code unit sequence at end of input"}
				return rd.err
			}
			if err := rd.fillRaw(len(avail) + rd.enc.CodeUnitSize()); err != nil {
				rd.err = err
				return err
			}
			continue
		}
		if decErr != nil {
			rd.err = &SourceError{Offset: rd.offset, Reason: "ill-formed source sequence", Err: decErr}
			return rd.err
		}
		rd.havePeek = true
		rd.peekRune = r
		rd.peekWidth = width
		return nil
	}
}

func (rd *Reader) ensureEncoding() error {
	if rd.enc != unicodeh.AnyEncoding {
		return nil
	}
	if err := rd.fillRaw(4); err != nil {
		return err
	}
	lookahead := rd.raw[rd.rawPos:]
	if bomEnc, length, found := unicodeh.DetectBOM(lookahead); found {
		rd.enc = bomEnc
		rd.rawPos += length
		rd.offset += int64(length)
		return nil
	}
	if rd.configured != unicodeh.AnyEncoding {
		rd.enc = rd.configured
		return nil
	}
	rd.enc = unicodeh.DetectHeuristic(lookahead)
	return nil
}

func (rd *Reader) fillRaw(n int) error {
	for !rd.eof && len(rd.raw)-rd.rawPos < n {
		if rd.rawPos > 0 {
			copy(rd.raw, rd.raw[rd.rawPos:])
			rd.raw = rd.raw[:len(rd.raw)-rd.rawPos]
			rd.rawPos = 0
		}
		if len(rd.raw) == cap(rd.raw) {
			newCap := cap(rd.raw) * 2
			if newCap < 4096 {
				newCap = 4096
			}
			grown := make([]byte, len(rd.raw), newCap)
			copy(grown, rd.raw)
			rd.raw = grown
		}
		m, err := rd.r.Read(rd.raw[len(rd.raw):cap(rd.raw)])
		rd.raw = rd.raw[:len(rd.raw)+m]
		if err != nil {
			if err == io.EOF {
				rd.eof = true
			} else {
				return &SourceError{Offset: rd.offset, Reason: "input read error", Err: err}
			}
		}
	}
	return nil
}
