package main

import (
	"fmt"
	"os"
)

// readGrammarFile reads path, wrapping a missing/unreadable file in a
// message that names the path, the same "reading <path>: %w" shape every
// subcommand that touches a grammar or input file uses.
func readGrammarFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
