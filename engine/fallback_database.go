package engine

import "sync"

// FallbackDatabase wraps a primary Database with a fallback that takes over
// permanently the first time primary.Save fails, per spec.md §4.9: "If the
// default directory is not writable, the engine falls back to an in-memory
// database for the process, and emits a single warning (no persistence)."
// Declared against the Database and Reporter interfaces only, so it has no
// dependency on package database's concrete types.
type FallbackDatabase struct {
	primary  Database
	fallback Database
	reporter Reporter

	mu     sync.Mutex
	failed bool
}

// NewFallbackDatabase returns a Database that prefers primary, switching to
// fallback for the rest of the process once primary.Save returns an error,
// and reporting that switch exactly once via reporter.OnWarning. reporter
// may be nil, in which case the warning is simply dropped.
func NewFallbackDatabase(primary, fallback Database, reporter Reporter) *FallbackDatabase {
	return &FallbackDatabase{primary: primary, fallback: fallback, reporter: reporter}
}

func (d *FallbackDatabase) active() Database {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failed {
		return d.fallback
	}
	return d.primary
}

// Fetch reads through whichever database is currently active.
func (d *FallbackDatabase) Fetch(key string) ([][]byte, error) {
	return d.active().Fetch(key)
}

// Delete deletes through whichever database is currently active.
func (d *FallbackDatabase) Delete(key string, value []byte) error {
	return d.active().Delete(key, value)
}

// Save tries primary first. On error it switches to fallback permanently -
// so later Fetch/Delete calls also see it, keeping this process's view of
// the database consistent - and emits a single OnWarning before retrying
// against fallback.
func (d *FallbackDatabase) Save(key string, value []byte) error {
	if d.active() == d.fallback {
		return d.fallback.Save(key, value)
	}

	if err := d.primary.Save(key, value); err != nil {
		d.mu.Lock()
		justFailed := !d.failed
		d.failed = true
		d.mu.Unlock()
		if justFailed && d.reporter != nil {
			d.reporter.OnWarning("conjecture: database unavailable (" + err.Error() + "), falling back to in-memory storage for this process")
		}
		return d.fallback.Save(key, value)
	}
	return nil
}
