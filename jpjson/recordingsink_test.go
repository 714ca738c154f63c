package jpjson_test

import (
	"context"
	"testing"

	"github.com/couchdeveloper/jpjson/jpjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordingSinkNestedCounts(t *testing.T) {
	sink := jpjson.NewRecordingSink()
	err := jpjson.ParseString(context.Background(), `{"items":[{"id":1},{"id":2}],"ok":true}`, jpjson.DefaultConfig(), sink)
	require.NoError(t, err)
	assert.Equal(t, 3, sink.ObjectCount)
	assert.Equal(t, 1, sink.ArrayCount)
	assert.Equal(t, 2, sink.NumberCount)
	assert.Equal(t, 3, sink.MaxDepth)
}

func TestRecordingSinkStringEscaping(t *testing.T) {
	sink := jpjson.NewRecordingSink()
	err := jpjson.ParseString(context.Background(), `["line\nbreak"]`, jpjson.DefaultConfig(), sink)
	require.NoError(t, err)
	result, ok := sink.Result()
	require.True(t, ok)
	assert.Equal(t, `["line\nbreak"]`, result)
}

func TestNoopSinkValidatesWithoutRetaining(t *testing.T) {
	sink := jpjson.NewNoopSink()
	err := jpjson.ParseString(context.Background(), `{"a":[1,2,3],"b":"x"}`, jpjson.DefaultConfig(), sink)
	require.NoError(t, err)
}
