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

// DuplicateKeySink tracks the set of keys seen in each currently open
// object so a composing Sink can reject a second occurrence of the same
// key within one object, per Config.CheckDuplicateKey. It is not itself a
// Sink: a concrete sink embeds it alongside BaseSink and calls its methods
// from its own BeginObject/BeginKeyValuePair/EndObject overrides.
type DuplicateKeySink struct {
	frames []map[string]struct{}
}

// PushObject opens a new tracking frame; call from BeginObject.
func (d *DuplicateKeySink) PushObject() {
	d.frames = append(d.frames, make(map[string]struct{}))
}

// PopObject closes the innermost tracking frame; call from EndObject.
func (d *DuplicateKeySink) PopObject() {
	if len(d.frames) == 0 {
		return
	}
	d.frames = d.frames[:len(d.frames)-1]
}

// Observe records key against the innermost open frame and reports
// whether it had already been seen in that same frame. Call from
// BeginKeyValuePair.
func (d *DuplicateKeySink) Observe(key string) (duplicate bool) {
	if len(d.frames) == 0 {
		return false
	}
	top := d.frames[len(d.frames)-1]
	if _, seen := top[key]; seen {
		return true
	}
	top[key] = struct{}{}
	return false
}
