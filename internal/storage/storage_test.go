package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBlob_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "progress.json")
	blob, err := OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = blob.Close() }()

	_, err = blob.Load()
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, blob.Save([]byte(`{"schemaVersion":2}`)))

	got, err := blob.Load()
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"schemaVersion":2}`), got)

	// Save replaces the whole blob.
	require.NoError(t, blob.Save([]byte(`{}`)))
	got, err = blob.Load()
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), got)
}

func TestFileBlob_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	blob, err := OpenFile(path)
	require.NoError(t, err)

	// Deleting an absent blob is a no-op.
	require.NoError(t, blob.Delete())

	require.NoError(t, blob.Save([]byte("data")))
	require.NoError(t, blob.Delete())

	_, err = blob.Load()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteBlob_RoundTrip(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "progress.db")
	blob, err := OpenSQLite(dsn)
	require.NoError(t, err)
	defer func() { _ = blob.Close() }()

	_, err = blob.Load()
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, blob.Save([]byte("v1")))
	require.NoError(t, blob.Save([]byte("v2"))) // upsert

	got, err := blob.Load()
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	require.NoError(t, blob.Delete())
	_, err = blob.Load()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDefaultDataPath_EnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.json")
	t.Setenv("WORDVENTURE_DATA", custom)

	p, err := DefaultDataPath("progress.json")
	require.NoError(t, err)
	assert.Equal(t, custom, p)
}

func TestDefaultDataPath_XDG(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("WORDVENTURE_DATA", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	p, err := DefaultDataPath("progress.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "wordventure", "progress.json"), p)
}
