package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	grammarPath := filepath.Join(dir, "sub", "calc.peg")

	_, ok := readDigestCache(dir, grammarPath)
	assert.False(t, ok, "no cache entry should exist yet")

	require.NoError(t, writeDigestCache(dir, grammarPath, "abc123"))

	got, ok := readDigestCache(dir, grammarPath)
	require.True(t, ok)
	assert.Equal(t, "abc123", got)
}

func TestCacheFilePathUsesBasenameOnly(t *testing.T) {
	p := cacheFilePath("/cache", "/some/nested/dir/calc.peg")
	assert.Equal(t, "/cache/calc.peg.digest", p)
}

func TestWriteDigestCacheCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist", "yet")
	require.NoError(t, writeDigestCache(dir, "g.peg", "deadbeef"))

	got, ok := readDigestCache(dir, "g.peg")
	require.True(t, ok)
	assert.Equal(t, "deadbeef", got)
}
