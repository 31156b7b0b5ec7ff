package choice

import "sync"

// Label is an interned identifier for a hierarchical draw scope, e.g. "the
// body of a list strategy" or "the left-hand element of a tuple". Labels are
// compared by value, which is why they're interned: two Scope calls with the
// same name always yield the same Label, letting the shrinker match up
// sibling blocks produced by the same combinator without string comparison.
type Label uint32

// labelInterner is process-global and append-only. Label identity only needs
// to be stable within a single process's evaluation of one test (labels are
// never persisted; only raw bytes are), so a shared registry across every
// Provider in the process is both safe and cheap - it mirrors the teacher
// corpus's use of package-level registries (e.g. catrate's category map,
// logiface's builder pool) for state that's naturally process-wide.
var labelInterner = struct {
	mu   sync.Mutex
	ids  map[string]Label
	name []string
}{ids: make(map[string]Label)}

// Intern returns the Label for name, assigning a new one on first use.
func Intern(name string) Label {
	labelInterner.mu.Lock()
	defer labelInterner.mu.Unlock()

	if id, ok := labelInterner.ids[name]; ok {
		return id
	}

	id := Label(len(labelInterner.name))
	labelInterner.ids[name] = id
	labelInterner.name = append(labelInterner.name, name)
	return id
}

// Name returns the string a Label was interned from. It panics if the Label
// was never returned by Intern - this indicates a bug in the caller, not a
// runtime condition to recover from.
func Name(l Label) string {
	labelInterner.mu.Lock()
	defer labelInterner.mu.Unlock()

	if int(l) >= len(labelInterner.name) {
		panic("choice: unknown label")
	}
	return labelInterner.name[l]
}
