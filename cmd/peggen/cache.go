package main

import (
	"os"
	"path/filepath"
	"strings"
)

// readDigestCache and writeDigestCache implement the build cache `build`
// uses (with --cache-dir) to skip recompiling an unchanged grammar: a flat
// directory of `<basename>.digest` files, each holding the
// regexcache.Digest of the grammar source bytes that produced it.
func cacheFilePath(cacheDir, grammarPath string) string {
	return filepath.Join(cacheDir, filepath.Base(grammarPath)+".digest")
}

func readDigestCache(cacheDir, grammarPath string) (string, bool) {
	data, err := os.ReadFile(cacheFilePath(cacheDir, grammarPath))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

func writeDigestCache(cacheDir, grammarPath, digest string) error {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(cacheFilePath(cacheDir, grammarPath), []byte(digest), 0o644)
}
