// Package storage provides whole-blob persistence for the progress
// document: read the entire collection, write the entire collection,
// under a single fixed key. No partial-document transactions.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Load when no blob has been saved yet.
var ErrNotFound = errors.New("no saved data")

// Blob is a durable single-key byte store.
type Blob interface {
	// Load returns the entire saved blob, or ErrNotFound.
	Load() ([]byte, error)

	// Save replaces the entire blob atomically.
	Save(data []byte) error

	// Delete removes the blob. Deleting an absent blob is a no-op.
	Delete() error

	Close() error
}

// DefaultDataPath resolves the data file path in priority order:
// 1. WORDVENTURE_DATA environment variable
// 2. $XDG_DATA_HOME/wordventure/<file>
// 3. ~/.local/share/wordventure/<file>
func DefaultDataPath(file string) (string, error) {
	if p := os.Getenv("WORDVENTURE_DATA"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "wordventure", file)
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
