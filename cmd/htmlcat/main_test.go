package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunText(t *testing.T) {
	t.Setenv("HTMLCAT_FORMAT", "")
	t.Setenv("HTMLCAT_LOG_LEVEL", "")

	var stdout, stderr bytes.Buffer
	code := run([]string{"time"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.True(t, strings.HasPrefix(stdout.String(), "<time>"))
	assert.Contains(t, stdout.String(), "datetime")
	assert.Empty(t, stderr.String())
}

func TestRunJSON(t *testing.T) {
	t.Setenv("HTMLCAT_FORMAT", "")
	t.Setenv("HTMLCAT_LOG_LEVEL", "")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-format", "json", "meta"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), `"tag": "meta"`)
	assert.Contains(t, stdout.String(), `"http-equiv"`)
}

func TestRunVerbose(t *testing.T) {
	t.Setenv("HTMLCAT_FORMAT", "yaml")
	t.Setenv("HTMLCAT_LOG_LEVEL", "")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-v", "search"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "- tag: search")
	assert.Contains(t, stderr.String(), "registered element")
}

func TestRunErrors(t *testing.T) {
	t.Setenv("HTMLCAT_FORMAT", "")
	t.Setenv("HTMLCAT_LOG_LEVEL", "")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"marquee"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "unknown element")
	assert.Empty(t, stdout.String())

	stderr.Reset()
	assert.Equal(t, 2, run([]string{"-format", "html"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "invalid configuration")
}
