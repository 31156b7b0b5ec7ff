package database_test

import (
	"path/filepath"
	"testing"

	"github.com/joeycumines/go-conjecture/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryDatabase_saveFetchDelete(t *testing.T) {
	db := database.NewDirectoryDatabase(filepath.Join(t.TempDir(), "db"))

	require.NoError(t, db.Save("test-a", []byte("one")))
	require.NoError(t, db.Save("test-a", []byte("two")))
	require.NoError(t, db.Save("test-a", []byte("one"))) // duplicate save is a no-op

	got, err := db.Fetch("test-a")
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]byte{[]byte("one"), []byte("two")}, got)

	require.NoError(t, db.Delete("test-a", []byte("one")))
	got, err = db.Fetch("test-a")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("two")}, got)
}

func TestDirectoryDatabase_fetchMissingKeyIsNotAnError(t *testing.T) {
	db := database.NewDirectoryDatabase(filepath.Join(t.TempDir(), "db"))
	got, err := db.Fetch("never-saved")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDirectoryDatabase_deleteMissingValueIsNotAnError(t *testing.T) {
	db := database.NewDirectoryDatabase(filepath.Join(t.TempDir(), "db"))
	assert.NoError(t, db.Delete("test-a", []byte("never-existed")))
}

func TestInMemoryDatabase_saveFetchDelete(t *testing.T) {
	db := database.NewInMemoryDatabase()

	require.NoError(t, db.Save("test-a", []byte("one")))
	got, err := db.Fetch("test-a")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("one")}, got)

	require.NoError(t, db.Delete("test-a", []byte("one")))
	got, err = db.Fetch("test-a")
	require.NoError(t, err)
	assert.Empty(t, got)
}
