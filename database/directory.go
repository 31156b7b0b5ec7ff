package database

import (
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/renameio/v2"
)

// defaultCapPerKey bounds how many entries DirectoryDatabase keeps per
// TestID before evicting the largest - spec.md §4.9 wants the database
// biased toward keeping small, easy-to-replay reproducers.
const defaultCapPerKey = 16

// DirectoryDatabase is the persistent Database implementation: one
// subdirectory per TestID (named by the hex SHA-1 of the key, so arbitrary
// caller-supplied TestID strings are always filesystem-safe), one file per
// stored sequence (named by the hex SHA-1 of its bytes).
type DirectoryDatabase struct {
	root      string
	capPerKey int
}

// NewDirectoryDatabase returns a DirectoryDatabase rooted at root, creating
// it lazily on first Save.
func NewDirectoryDatabase(root string) *DirectoryDatabase {
	return &DirectoryDatabase{root: root, capPerKey: defaultCapPerKey}
}

func (d *DirectoryDatabase) keyDir(key string) string {
	sum := sha1.Sum([]byte(key))
	return filepath.Join(d.root, hex.EncodeToString(sum[:]))
}

func entryName(value []byte) string {
	sum := sha1.Sum(value)
	return hex.EncodeToString(sum[:])
}

// Fetch lists the key's directory once and reads every entry, tolerating a
// concurrent Delete racing the listing (a missing file after ReadDir is
// silently skipped, not an error) and tolerating a corrupt entry (content
// hash doesn't match its filename) by deleting it and moving on, per
// spec.md §4.9's multi-reader model.
func (d *DirectoryDatabase) Fetch(key string) ([][]byte, error) {
	dir := d.keyDir(key)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	out := make([][]byte, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		b, err := os.ReadFile(path)
		if err != nil {
			continue // deleted or unreadable since the listing; skip it
		}
		if e.Name() != entryName(b) {
			_ = os.Remove(path) // corrupt entry: name/content mismatch
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// Save writes value under key if not already present, atomically via
// renameio (temp file + fsync + rename), then evicts the largest entries
// past the per-key cap.
func (d *DirectoryDatabase) Save(key string, value []byte) error {
	dir := d.keyDir(key)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, entryName(value))
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := renameio.WriteFile(path, value, 0o644); err != nil {
		return err
	}
	return d.evictOverCap(dir)
}

// Delete removes value from key, if present; deleting an absent value is
// not an error.
func (d *DirectoryDatabase) Delete(key string, value []byte) error {
	path := filepath.Join(d.keyDir(key), entryName(value))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (d *DirectoryDatabase) evictOverCap(dir string) error {
	capPerKey := d.capPerKey
	if capPerKey <= 0 {
		capPerKey = defaultCapPerKey
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(entries) <= capPerKey {
		return nil
	}

	type sized struct {
		name string
		size int64
	}
	byName := make([]sized, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		byName = append(byName, sized{e.Name(), info.Size()})
	}
	sort.Slice(byName, func(i, j int) bool { return byName[i].size > byName[j].size })

	for len(byName) > capPerKey {
		_ = os.Remove(filepath.Join(dir, byName[0].name))
		byName = byName[1:]
	}
	return nil
}
