// Package regexcache provides the process-wide compiled-regex cache the
// design notes permit ("implementations may maintain a process-wide
// cache keyed by pattern text"), plus a content digest used by the CLI's
// build cache to detect an unchanged grammar without holding the whole
// source as a map key.
package regexcache

import (
	"encoding/hex"
	"regexp"
	"sync"

	"golang.org/x/crypto/blake2b"
)

var (
	mu    sync.RWMutex
	cache = make(map[string]*regexp.Regexp)
)

// Compile returns the cached compiled form of pattern, compiling and
// caching it on first use. Compilation failure is a programmer error per
// the spec's atomic-matcher design, not a parse error, so it panics rather
// than returning an error a caller would have to thread through the
// evaluator.
func Compile(pattern string) *regexp.Regexp {
	mu.RLock()
	re, ok := cache[pattern]
	mu.RUnlock()
	if ok {
		return re
	}

	mu.Lock()
	defer mu.Unlock()
	if re, ok := cache[pattern]; ok {
		return re
	}
	re = regexp.MustCompile(pattern)
	cache[pattern] = re
	return re
}

// Digest returns a hex-encoded blake2b-256 digest of source, used as a
// build-cache key so a grammar file's content, not its full text, is what
// gets compared between rebuilds.
func Digest(source []byte) string {
	sum := blake2b.Sum256(source)
	return hex.EncodeToString(sum[:])
}
