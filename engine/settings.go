package engine

import "time"

// Phase is a bitmask selecting which phases Controller.Run executes.
type Phase uint8

const (
	PhaseReuse Phase = 1 << iota
	PhaseGenerate
	PhaseShrink

	PhaseAll = PhaseReuse | PhaseGenerate | PhaseShrink
)

// Settings collects every option spec.md §6.4 defines. The zero value is not
// valid; use DefaultSettings and override fields, matching the teacher
// corpus's preference for plain option structs over a builder for types with
// this many independent knobs (e.g. inprocgrpc's channelOptions, assembled
// via functional Option for *behavioral* hooks only - Settings here is pure
// configuration data, so a struct literal is the simpler fit).
type Settings struct {
	// MaxExamples bounds the number of distinct (non-duplicate) valid
	// candidates evaluated during GENERATE.
	MaxExamples int
	// MaxIterations bounds the total number of candidates attempted during
	// GENERATE, including duplicates and invalid draws. Zero derives a
	// default from MaxExamples.
	MaxIterations int
	// Deadline is the per-candidate soft deadline: a candidate whose executor
	// call takes longer is counted as slow, but is not interrupted. Zero
	// disables the per-candidate deadline.
	Deadline time.Duration
	// Timeout bounds the whole run's wall-clock time, checked only between
	// candidates (never inside the executor call) per spec.md §5. Zero
	// disables the overall timeout.
	Timeout time.Duration
	// Seed explicitly seeds the controller's entropy source. Meaningless if
	// Derandomize is true.
	Seed uint64
	// Derandomize replaces Seed with a seed derived from the test's TestID
	// (its FNV-1a hash), so repeated runs of the same test draw the same
	// candidates (at the cost of losing the extra coverage a fresh seed
	// gives across runs).
	Derandomize bool
	// Database persists failing and shrunk examples across runs, keyed by
	// TestID. Nil disables persistence (every run starts from GENERATE).
	Database Database
	// Reporter receives the run's progress narration. Nil installs a
	// no-op Reporter.
	Reporter Reporter
	// SuppressHealthCheck disables the named health checks (package
	// health's exported check names) for this test only.
	SuppressHealthCheck map[string]bool
	// ReportMultipleBugs keeps shrinking and reporting every distinct bug
	// key found, instead of stopping at the first.
	ReportMultipleBugs bool
	// PrintBlob appends the shrunk choice sequence's raw bytes, base64
	// encoded, to the failure message the conjecture Given* decorators
	// report, so a CI failure can be replayed without the database.
	// FlakyTest and other errors do not include it.
	PrintBlob bool
	// Phases selects which phases Controller.Run executes. Zero means
	// PhaseAll.
	Phases Phase
}

// DefaultSettings returns the engine's baseline configuration: 100 examples,
// a generous iteration budget, a 200ms per-candidate deadline, no database,
// no reporter, and all phases enabled.
func DefaultSettings() Settings {
	return Settings{
		MaxExamples: 100,
		Deadline:    200 * time.Millisecond,
		Phases:      PhaseAll,
	}
}

// phases returns s.Phases, defaulting to PhaseAll if unset.
func (s Settings) phases() Phase {
	if s.Phases == 0 {
		return PhaseAll
	}
	return s.Phases
}

func (s Settings) phaseEnabled(p Phase) bool { return s.phases()&p != 0 }

// maxIterations returns s.MaxIterations, deriving a default of
// 10*MaxExamples (floored at 1000) when unset - generous enough that a
// filter-heavy strategy doesn't starve GENERATE of distinct examples before
// the health check catches it.
func (s Settings) maxIterations() int {
	if s.MaxIterations > 0 {
		return s.MaxIterations
	}
	if n := s.MaxExamples * 10; n > 1000 {
		return n
	}
	return 1000
}

func (s Settings) reporter() Reporter {
	if s.Reporter == nil {
		return nopReporter{}
	}
	return s.Reporter
}

func (s Settings) suppressed(tag string) bool {
	return s.SuppressHealthCheck != nil && s.SuppressHealthCheck[tag]
}
