package engine

// Database is the storage contract the controller persists failing and
// shrunk choice sequences through, keyed by a caller-supplied TestID. It's
// declared here (rather than package database importing engine) so that
// package database stays a leaf: any type satisfying this interface,
// including database.DirectoryDatabase and database.InMemoryDatabase, can be
// plugged into Settings.Database without either package importing the other.
type Database interface {
	// Fetch returns every value stored under key, in unspecified order.
	// A missing key returns (nil, nil), not an error.
	Fetch(key string) ([][]byte, error)
	// Save adds value under key, if not already present.
	Save(key string, value []byte) error
	// Delete removes value from key, if present. Deleting a value that
	// isn't present is not an error.
	Delete(key string, value []byte) error
}
