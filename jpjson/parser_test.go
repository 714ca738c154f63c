package jpjson_test

import (
	"context"
	"strings"
	"testing"

	"github.com/couchdeveloper/jpjson/jpjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string, cfg jpjson.Config) (*jpjson.RecordingSink, error) {
	t.Helper()
	sink := jpjson.NewRecordingSink()
	err := jpjson.ParseString(context.Background(), input, cfg, sink)
	return sink, err
}

func TestParseObjectRoundTrip(t *testing.T) {
	sink, err := parse(t, `{"a":1,"b":[true,false,null],"c":"hi"}`, jpjson.DefaultConfig())
	require.NoError(t, err)
	result, ok := sink.Result()
	require.True(t, ok)
	assert.Equal(t, `{"a":1,"b":[true,false,null],"c":"hi"}`, result)
	assert.Equal(t, 1, sink.ObjectCount)
	assert.Equal(t, 1, sink.ArrayCount)
	assert.Equal(t, 1, sink.StringCount)
	assert.Equal(t, 1, sink.NumberCount)
	assert.Equal(t, 2, sink.BooleanCount)
	assert.Equal(t, 1, sink.NullCount)
}

func TestParseTopLevelArray(t *testing.T) {
	sink, err := parse(t, `[1,2,3]`, jpjson.DefaultConfig())
	require.NoError(t, err)
	result, _ := sink.Result()
	assert.Equal(t, `[1,2,3]`, result)
}

func TestParseRejectsTopLevelScalar(t *testing.T) {
	_, err := parse(t, `42`, jpjson.DefaultConfig())
	require.Error(t, err)
	pe, ok := err.(*jpjson.ParseError)
	require.True(t, ok)
	assert.Equal(t, jpjson.ExpectedArrayOrObjectError, pe.Kind)
}

func TestParseEmptyInput(t *testing.T) {
	_, err := parse(t, ``, jpjson.DefaultConfig())
	require.Error(t, err)
	pe := err.(*jpjson.ParseError)
	assert.Equal(t, jpjson.EmptyTextError, pe.Kind)
}

func TestParseUnexpectedClosingBracket(t *testing.T) {
	_, err := parse(t, `]`, jpjson.DefaultConfig())
	require.Error(t, err)
	pe := err.(*jpjson.ParseError)
	assert.Equal(t, jpjson.ExpectedArrayOrObjectError, pe.Kind)
}

func TestParseTrailingGarbage(t *testing.T) {
	_, err := parse(t, `{} garbage`, jpjson.DefaultConfig())
	require.Error(t, err)
	pe := err.(*jpjson.ParseError)
	assert.Equal(t, jpjson.JSONExtraCharactersAtEnd, pe.Kind)

	cfg := jpjson.DefaultConfig()
	cfg.IgnoreSpuriousTrailingBytes = true
	_, err = parse(t, `{} garbage`, cfg)
	require.NoError(t, err)
}

func TestParseMultipleDocuments(t *testing.T) {
	cfg := jpjson.DefaultConfig()
	cfg.ParseMultipleDocuments = true
	sink := jpjson.NewRecordingSink()
	err := jpjson.ParseString(context.Background(), `{"a":1} {"b":2}`, cfg, sink)
	require.NoError(t, err)
	assert.Equal(t, 2, sink.ObjectCount)
}

func TestParseDeepNesting(t *testing.T) {
	const depth = 10
	input := strings.Repeat(`{"n":`, depth) + `0` + strings.Repeat(`}`, depth)
	sink, err := parse(t, input, jpjson.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, depth, sink.MaxDepth)
}

func TestParseDuplicateKeyRejected(t *testing.T) {
	cfg := jpjson.DefaultConfig()
	cfg.CheckDuplicateKey = true
	_, err := parse(t, `{"a":1,"a":2}`, cfg)
	require.Error(t, err)
	pe := err.(*jpjson.ParseError)
	assert.Equal(t, jpjson.JSONKeyExistsError, pe.Kind)
}

func TestParseDuplicateKeyAllowedByDefault(t *testing.T) {
	_, err := parse(t, `{"a":1,"a":2}`, jpjson.DefaultConfig())
	require.NoError(t, err)
}

func TestParseLargeStringChunking(t *testing.T) {
	big := strings.Repeat("x", 128*1024)
	input := `"` + big + `"`
	sink := jpjson.NewRecordingSink()
	cfg := jpjson.DefaultConfig()
	// top-level scalars are rejected, so wrap in an array to exercise
	// the chunking path through the ordinary value grammar.
	err := jpjson.ParseString(context.Background(), "["+input+"]", cfg, sink)
	require.NoError(t, err)
	result, _ := sink.Result()
	assert.Equal(t, "["+input+"]", result)
}

func TestParseAllowCommentsExtension(t *testing.T) {
	cfg := jpjson.DefaultConfig()
	cfg.Extensions.AllowComments = true
	input := "{\n  // a comment\n  \"a\": 1 /* inline */\n}"
	sink, err := parse(t, input, cfg)
	require.NoError(t, err)
	result, _ := sink.Result()
	assert.Equal(t, `{"a":1}`, result)
}

func TestParseCommentsRejectedByDefault(t *testing.T) {
	_, err := parse(t, "{\n// nope\n}", jpjson.DefaultConfig())
	require.Error(t, err)
}

func TestParseLeadingZeroExtension(t *testing.T) {
	_, err := parse(t, `[007]`, jpjson.DefaultConfig())
	require.Error(t, err)

	cfg := jpjson.DefaultConfig()
	cfg.Extensions.AllowLeadingZerosInIntegers = true
	sink, err := parse(t, `[007]`, cfg)
	require.NoError(t, err)
	result, _ := sink.Result()
	assert.Equal(t, `[007]`, result)
}

func TestParseCanceledSink(t *testing.T) {
	sink := &canceledAfterFirstBoolean{}
	err := jpjson.ParseString(context.Background(), `[true,false]`, jpjson.DefaultConfig(), sink)
	require.Error(t, err)
	pe := err.(*jpjson.ParseError)
	assert.Equal(t, jpjson.Canceled, pe.Kind)
}

type canceledAfterFirstBoolean struct {
	jpjson.BaseSink
	seen bool
}

func (s *canceledAfterFirstBoolean) Boolean(v bool) error {
	s.seen = true
	return nil
}

func (s *canceledAfterFirstBoolean) IsCanceled() bool { return s.seen }

func TestParseTrailingNulIsNotAnError(t *testing.T) {
	// A trailing Unicode NULL after a complete document ends the parse
	// successfully even in strict, single-document mode - it is not the
	// same thing as the trailing garbage rejected by
	// TestParseTrailingGarbage.
	sink, err := parse(t, "{}\x00", jpjson.DefaultConfig())
	require.NoError(t, err)
	result, ok := sink.Result()
	require.True(t, ok)
	assert.Equal(t, `{}`, result)
}

func TestParseTrailingNulStopsMultipleDocuments(t *testing.T) {
	cfg := jpjson.DefaultConfig()
	cfg.ParseMultipleDocuments = true
	sink := jpjson.NewRecordingSink()
	err := jpjson.ParseString(context.Background(), "{\"a\":1}\x00{\"b\":2}", cfg, sink)
	require.NoError(t, err)
	assert.Equal(t, 1, sink.ObjectCount)
}

func TestParseFinishedCalledExactlyOnce(t *testing.T) {
	sink := &finishCountingSink{}
	err := jpjson.ParseString(context.Background(), `{}`, jpjson.DefaultConfig(), sink)
	require.NoError(t, err)
	assert.Equal(t, 1, sink.finished)

	sink = &finishCountingSink{}
	err = jpjson.ParseString(context.Background(), `]`, jpjson.DefaultConfig(), sink)
	require.Error(t, err)
	assert.Equal(t, 1, sink.finished)
}

func TestParseStartEndDocumentPerDocument(t *testing.T) {
	cfg := jpjson.DefaultConfig()
	cfg.ParseMultipleDocuments = true
	sink := &finishCountingSink{}
	err := jpjson.ParseString(context.Background(), `{} {}`, cfg, sink)
	require.NoError(t, err)
	assert.Equal(t, 2, sink.started)
	assert.Equal(t, 2, sink.ended)
	assert.Equal(t, 1, sink.finished)
}

type finishCountingSink struct {
	jpjson.BaseSink
	started  int
	ended    int
	finished int
}

func (s *finishCountingSink) StartDocument(cfg jpjson.Config) error {
	s.started++
	return s.BaseSink.StartDocument(cfg)
}

func (s *finishCountingSink) EndDocument() error {
	s.ended++
	return nil
}

func (s *finishCountingSink) Finished() { s.finished++ }

func TestParseErrorMatchesSentinelGroup(t *testing.T) {
	_, err := parse(t, `]`, jpjson.DefaultConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, jpjson.ErrSyntax)
	assert.NotErrorIs(t, err, jpjson.ErrUnicode)

	cfg := jpjson.DefaultConfig()
	cfg.CheckDuplicateKey = true
	_, err = parse(t, `{"a":1,"a":2}`, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, jpjson.ErrSemantic)
}
