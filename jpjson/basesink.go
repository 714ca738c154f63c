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

// BaseSink is embeddable in a concrete Sink implementation to supply
// every event method as a no-op, storage for the Config a parse started
// with, the first recorded *ParseError, a default Logger, and a
// never-canceled IsCanceled. A concrete sink embeds BaseSink and
// overrides only the events it cares about, mirroring the base-class
// default-implementation pattern the library this package descends from
// uses for its own semantic-actions base.
type BaseSink struct {
	cfg    Config
	err    *ParseError
	logger Logger
}

// SetLogger installs the Logger BaseSink.Logger returns. Passing nil
// installs NopLogger.
func (b *BaseSink) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger()
	}
	b.logger = l
}

func (b *BaseSink) Config() Config { return b.cfg }

// Err returns the first error recorded via Error, or nil.
func (b *BaseSink) Err() *ParseError { return b.err }

// IgnoreSpuriousTrailingBytes returns the Config value StartDocument was
// last called with.
func (b *BaseSink) IgnoreSpuriousTrailingBytes() bool { return b.cfg.IgnoreSpuriousTrailingBytes }

// ParseMultipleDocuments returns the Config value StartDocument was last
// called with.
func (b *BaseSink) ParseMultipleDocuments() bool { return b.cfg.ParseMultipleDocuments }

// CheckDuplicateKey returns the Config value StartDocument was last
// called with.
func (b *BaseSink) CheckDuplicateKey() bool { return b.cfg.CheckDuplicateKey }

// UnicodeNoncharacterHandling returns the Config value StartDocument was
// last called with.
func (b *BaseSink) UnicodeNoncharacterHandling() Policy { return b.cfg.UnicodeNoncharacterHandling }

// UnicodeNullHandling returns the Config value StartDocument was last
// called with.
func (b *BaseSink) UnicodeNullHandling() Policy { return b.cfg.UnicodeNullHandling }

// Extensions returns the Config value StartDocument was last called
// with.
func (b *BaseSink) Extensions() Extensions { return b.cfg.Extensions }

func (b *BaseSink) StartDocument(cfg Config) error {
	b.cfg = cfg
	return nil
}
func (b *BaseSink) EndDocument() error { return nil }

func (b *BaseSink) BeginArray() error             { return nil }
func (b *BaseSink) EndArray() error                { return nil }
func (b *BaseSink) BeginArrayItem(index int) error { return nil }
func (b *BaseSink) EndArrayItem(index int) error   { return nil }

func (b *BaseSink) BeginObject() error                            { return nil }
func (b *BaseSink) EndObject() bool                               { return true }
func (b *BaseSink) BeginKeyValuePair(key string, index int) error { return nil }
func (b *BaseSink) EndKeyValuePair() error                        { return nil }

func (b *BaseSink) String(chunk []byte, hasMore bool, isKey bool) error { return nil }
func (b *BaseSink) Number(desc NumberDescription) error                 { return nil }
func (b *BaseSink) Boolean(v bool) error                                { return nil }
func (b *BaseSink) Null() error                                         { return nil }

// Error records err, if it is the first one seen, and unconditionally
// logs it at error level.
func (b *BaseSink) Error(err *ParseError) {
	if b.err == nil {
		b.err = err
	}
	b.Logger().Error(err.Error())
}

func (b *BaseSink) IsCanceled() bool { return false }

func (b *BaseSink) Logger() Logger {
	if b.logger == nil {
		return NopLogger()
	}
	return b.logger
}

// Finished is the default no-op implementation of Sink.Finished.
func (b *BaseSink) Finished() {}
