package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// Store is the content-addressed artifact store: sha256 → sharded path.
// The report row records the path and the original mime, never the bytes.
type Store struct {
	root string
}

// NewStore creates the store rooted at dir.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &Store{root: dir}, nil
}

// Checksum returns the hex sha256 of data. The same digest is the dedup key
// and the storage address.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Put writes data under its checksum and returns the relative path. Writing
// the same bytes twice is a no-op returning the existing path.
func (s *Store) Put(data []byte, checksum string) (string, error) {
	if checksum == "" {
		checksum = Checksum(data)
	}
	rel := filepath.Join(checksum[:2], checksum[2:4], checksum)
	abs := filepath.Join(s.root, rel)

	if _, err := os.Stat(abs); err == nil {
		return rel, nil
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o750); err != nil {
		return "", fmt.Errorf("failed to create artifact directory: %w", err)
	}

	// Write-then-rename so readers never observe a partial artifact.
	tmp, err := os.CreateTemp(filepath.Dir(abs), ".artifact-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp artifact: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), abs); err != nil {
		return "", fmt.Errorf("failed to place artifact: %w", err)
	}
	return rel, nil
}

// Get reads an artifact back by its relative path.
func (s *Store) Get(rel string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, rel))
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	return data, nil
}
