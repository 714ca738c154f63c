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

// Package jpjson implements a streaming, push-style JSON parser. Rather
// than building a tree of values, it drives a caller-supplied Sink with a
// sequence of events as it walks the input once, so a caller can decode
// directly into its own data structures, validate without allocating, or
// re-serialize on the fly.
//
// A minimal use looks like:
//
//	sink := jpjson.NewRecordingSink()
//	err := jpjson.ParseString(context.Background(), `{"a":[1,2,3]}`, jpjson.DefaultConfig(), sink)
//
// Config governs the handling of everything conformant JSON leaves open:
// Unicode noncharacters and NULLs, duplicate object keys, multiple
// concatenated documents, and a small set of common non-conformant
// extensions (comments, leading '+', leading zeros). The source encoding
// is chosen by the Encoding argument of Parse.
package jpjson
