package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	// sha256 of the empty string is a well-known constant.
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Checksum(nil))
	assert.Equal(t, Checksum([]byte("hello")), Checksum([]byte("hello")))
	assert.NotEqual(t, Checksum([]byte("hello")), Checksum([]byte("hello ")))
	assert.Len(t, Checksum([]byte("x")), 64)
}

func TestStorePutGet(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	data := []byte("%PDF-1.4 fake report")
	sum := Checksum(data)

	rel, err := store.Put(data, sum)
	require.NoError(t, err)

	// Path is sharded by the first two byte pairs of the digest.
	assert.Equal(t, filepath.Join(sum[:2], sum[2:4], sum), rel)

	got, err := store.Get(rel)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestStorePutComputesChecksum(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	data := []byte("some bytes")
	rel, err := store.Put(data, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(rel), Checksum(data))
}

func TestStorePutIdempotent(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root)
	require.NoError(t, err)

	data := []byte("duplicate upload")
	first, err := store.Put(data, "")
	require.NoError(t, err)
	second, err := store.Put(data, "")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// No temp files left behind by either write.
	entries, err := os.ReadDir(filepath.Dir(filepath.Join(root, first)))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreGetMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(filepath.Join("ab", "cd", "nope"))
	assert.Error(t, err)
}
