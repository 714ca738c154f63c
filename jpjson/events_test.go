package jpjson_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/couchdeveloper/jpjson/jpjson"
	"github.com/google/go-cmp/cmp"
)

// eventTraceSink records the exact sequence of events a parse produces,
// so ordering guarantees (begin before end, key before value, index
// before item) can be checked as a single structural diff rather than a
// pile of individual assertions.
type eventTraceSink struct {
	jpjson.BaseSink
	events []string
}

func (s *eventTraceSink) BeginArray() error { s.events = append(s.events, "BeginArray"); return nil }
func (s *eventTraceSink) EndArray() error   { s.events = append(s.events, "EndArray"); return nil }
func (s *eventTraceSink) BeginArrayItem(index int) error {
	s.events = append(s.events, fmt.Sprintf("BeginArrayItem(%d)", index))
	return nil
}
func (s *eventTraceSink) EndArrayItem(index int) error {
	s.events = append(s.events, fmt.Sprintf("EndArrayItem(%d)", index))
	return nil
}
func (s *eventTraceSink) BeginObject() error { s.events = append(s.events, "BeginObject"); return nil }
func (s *eventTraceSink) EndObject() bool    { s.events = append(s.events, "EndObject"); return true }
func (s *eventTraceSink) BeginKeyValuePair(key string, index int) error {
	s.events = append(s.events, fmt.Sprintf("BeginKeyValuePair(%q,%d)", key, index))
	return nil
}
func (s *eventTraceSink) EndKeyValuePair() error {
	s.events = append(s.events, "EndKeyValuePair")
	return nil
}
func (s *eventTraceSink) String(chunk []byte, hasMore bool, isKey bool) error {
	if !isKey {
		s.events = append(s.events, fmt.Sprintf("String(%q)", string(chunk)))
	}
	return nil
}
func (s *eventTraceSink) Number(desc jpjson.NumberDescription) error {
	s.events = append(s.events, fmt.Sprintf("Number(%s)", desc.Text))
	return nil
}
func (s *eventTraceSink) Boolean(v bool) error {
	s.events = append(s.events, fmt.Sprintf("Boolean(%v)", v))
	return nil
}
func (s *eventTraceSink) Null() error { s.events = append(s.events, "Null"); return nil }

func TestEventOrdering(t *testing.T) {
	sink := &eventTraceSink{}
	err := jpjson.ParseString(context.Background(), `{"a":1,"b":[true]}`, jpjson.DefaultConfig(), sink)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"BeginObject",
		`BeginKeyValuePair("a",0)`,
		"Number(1)",
		"EndKeyValuePair",
		`BeginKeyValuePair("b",1)`,
		"BeginArray",
		"BeginArrayItem(0)",
		"Boolean(true)",
		"EndArrayItem(0)",
		"EndArray",
		"EndKeyValuePair",
		"EndObject",
	}
	if diff := cmp.Diff(want, sink.events); diff != "" {
		t.Errorf("event trace mismatch (-want +got):\n%s", diff)
	}
}
