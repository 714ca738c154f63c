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
	"strconv"
	"strings"
)

// frameKind distinguishes an array frame from an object frame while a
// RecordingSink is re-serializing nested structure.
type frameKind int

const (
	frameArray frameKind = iota
	frameObject
)

// frame accumulates the already-rendered text of a single open array or
// object while RecordingSink walks its children.
type frame struct {
	kind       frameKind
	parts      []string
	pendingKey string
}

// RecordingSink is a Sink that counts the events it observes, tracks
// maximum nesting depth, rejects duplicate object keys when
// Config.CheckDuplicateKey is set, and re-serializes the parsed document
// into a canonical JSON string available from Result once parsing
// completes. It exists primarily to give the test suite and the jsonlint
// command a default, fully working sink without requiring every caller to
// write one from scratch.
type RecordingSink struct {
	BaseSink
	DuplicateKeySink

	ArrayCount    int
	ObjectCount   int
	StringCount   int
	NumberCount   int
	BooleanCount  int
	NullCount     int
	MaxDepth      int

	stack       []frame
	result      string
	haveResult  bool
	stringParts strings.Builder
	depth       int
}

// NewRecordingSink constructs an empty RecordingSink.
func NewRecordingSink() *RecordingSink { return &RecordingSink{} }

// Result returns the canonical JSON re-serialization of the parsed
// document, valid once EndDocument has been called without error.
func (s *RecordingSink) Result() (string, bool) { return s.result, s.haveResult }

func (s *RecordingSink) enter() {
	s.depth++
	if s.depth > s.MaxDepth {
		s.MaxDepth = s.depth
	}
}

func (s *RecordingSink) leave() { s.depth-- }

func (s *RecordingSink) attach(rendered string) {
	if len(s.stack) == 0 {
		s.result = rendered
		s.haveResult = true
		return
	}
	top := &s.stack[len(s.stack)-1]
	switch top.kind {
	case frameArray:
		top.parts = append(top.parts, rendered)
	case frameObject:
		top.parts = append(top.parts, strconv.Quote(top.pendingKey)+":"+rendered)
		top.pendingKey = ""
	}
}

func (s *RecordingSink) BeginArray() error {
	s.ArrayCount++
	s.enter()
	s.stack = append(s.stack, frame{kind: frameArray})
	return nil
}

func (s *RecordingSink) EndArray() error {
	s.leave()
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.attach("[" + strings.Join(top.parts, ",") + "]")
	return nil
}

func (s *RecordingSink) BeginArrayItem(index int) error { return nil }
func (s *RecordingSink) EndArrayItem(index int) error   { return nil }

func (s *RecordingSink) BeginObject() error {
	s.ObjectCount++
	s.enter()
	s.PushObject()
	s.stack = append(s.stack, frame{kind: frameObject})
	return nil
}

func (s *RecordingSink) EndObject() bool {
	s.leave()
	s.PopObject()
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.attach("{" + strings.Join(top.parts, ",") + "}")
	return true
}

func (s *RecordingSink) BeginKeyValuePair(key string, index int) error {
	if s.Config().CheckDuplicateKey && s.Observe(key) {
		err := &ParseError{Kind: JSONKeyExistsError, Message: "duplicate key " + strconv.Quote(key)}
		s.Error(err)
		return err
	}
	top := &s.stack[len(s.stack)-1]
	top.pendingKey = key
	return nil
}

func (s *RecordingSink) EndKeyValuePair() error { return nil }

func (s *RecordingSink) String(chunk []byte, hasMore bool, isKey bool) error {
	if isKey {
		return nil
	}
	s.stringParts.Write(chunk)
	if !hasMore {
		s.StringCount++
		s.attach(strconv.Quote(s.stringParts.String()))
		s.stringParts.Reset()
	}
	return nil
}

func (s *RecordingSink) Number(desc NumberDescription) error {
	s.NumberCount++
	s.attach(desc.Text)
	return nil
}

func (s *RecordingSink) Boolean(v bool) error {
	s.BooleanCount++
	if v {
		s.attach("true")
	} else {
		s.attach("false")
	}
	return nil
}

func (s *RecordingSink) Null() error {
	s.NullCount++
	s.attach("null")
	return nil
}
