// Package database implements the content-addressed example database
// spec.md §4.9/§6.5 describes: a directory per TestID, one file per stored
// choice sequence named by the lowercase hex SHA-1 of its bytes, written
// atomically via github.com/google/renameio/v2 so a concurrent reader never
// observes a partially-written entry.
//
// DirectoryDatabase is the persistent implementation; InMemoryDatabase is a
// bare in-process implementation with no persistence, used directly by
// callers that never want filesystem storage. Neither wires the other in
// automatically - the automatic DirectoryDatabase-to-InMemoryDatabase
// fallback spec.md §4.9 describes is engine.NewFallbackDatabase (see
// conjecture.NewDatabase), one layer up, since surfacing its one-time
// warning needs engine.Reporter, which this package doesn't import.
package database
