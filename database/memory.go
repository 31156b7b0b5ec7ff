package database

import "sync"

// InMemoryDatabase is the no-database-available fallback (spec.md §4.9,
// §7): it implements the same Database contract with no persistence across
// process restarts. Guarded by a mutex, following package choice's
// labelInterner pattern for a small shared map any caller might touch from
// more than one goroutine within the process.
type InMemoryDatabase struct {
	mu      sync.Mutex
	entries map[string]map[string][]byte
}

// NewInMemoryDatabase returns an empty InMemoryDatabase.
func NewInMemoryDatabase() *InMemoryDatabase {
	return &InMemoryDatabase{entries: make(map[string]map[string][]byte)}
}

func (d *InMemoryDatabase) Fetch(key string) ([][]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	m := d.entries[key]
	if m == nil {
		return nil, nil
	}
	out := make([][]byte, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out, nil
}

func (d *InMemoryDatabase) Save(key string, value []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	m := d.entries[key]
	if m == nil {
		m = make(map[string][]byte)
		d.entries[key] = m
	}
	m[entryName(value)] = append([]byte(nil), value...)
	return nil
}

func (d *InMemoryDatabase) Delete(key string, value []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if m := d.entries[key]; m != nil {
		delete(m, entryName(value))
	}
	return nil
}
