package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoMainValid(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := doMain([]string{"--print"}, strings.NewReader(`{"a":1}`), &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Equal(t, "{\"a\":1}\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestDoMainInvalid(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := doMain(nil, strings.NewReader(`{`), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "jsonlint:")
}

func TestDoMainHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := doMain([]string{"-h"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "usage:")
}
