package conjecture_test

import (
	"os"
	"path/filepath"
	"testing"

	conjecture "github.com/joeycumines/go-conjecture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase_persistsToDirectoryWhenWritable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "examples")
	db := conjecture.NewDatabase(dir, nil)

	require.NoError(t, db.Save("test-a", []byte("seq")))

	got, err := db.Fetch("test-a")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("seq")}, got)

	// The directory tree was actually used, not just the in-memory fallback.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestNewDatabase_fallsBackWhenDirectoryUnwritable(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Chmod(root, 0o555))
	t.Cleanup(func() { _ = os.Chmod(root, 0o755) })

	dir := filepath.Join(root, "examples")
	db := conjecture.NewDatabase(dir, nil)

	require.NoError(t, db.Save("test-a", []byte("seq")))

	got, err := db.Fetch("test-a")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("seq")}, got)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "directory must never have been created")
}
