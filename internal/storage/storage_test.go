package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	_, ok, err := m.GetItem("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.SetItem("key", []byte("value")))

	got, ok, err := m.GetItem("key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("value"), got)

	require.NoError(t, m.RemoveItem("key"))
	_, ok, err = m.GetItem("key")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is not an error.
	require.NoError(t, m.RemoveItem("key"))
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	val := []byte("original")
	require.NoError(t, m.SetItem("key", val))

	val[0] = 'X'
	got, _, err := m.GetItem("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)

	got[0] = 'Y'
	again, _, err := m.GetItem("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func TestDBInMemoryRoundTrip(t *testing.T) {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, ok, err := db.GetItem("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.SetItem("key", []byte("value")))

	got, ok, err := db.GetItem("key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("value"), got)

	require.NoError(t, db.RemoveItem("key"))
	_, ok, err = db.GetItem("key")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.RemoveItem("key"))
}

func TestDBOnDisk(t *testing.T) {
	dir := t.TempDir()

	db, err := Open(Options{Path: dir})
	require.NoError(t, err)
	require.NoError(t, db.SetItem("key", []byte("persisted")))
	require.NoError(t, db.Close())

	db, err = Open(Options{Path: dir})
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	got, ok, err := db.GetItem("key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("persisted"), got)
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Contains(t, path, "lifeos")
	assert.Contains(t, path, "db")
}
