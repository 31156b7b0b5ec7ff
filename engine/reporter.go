package engine

// Reporter receives a running narration of one test's evaluation, for
// embedders that want progress output or structured logging (package
// report's LogReporter). Declared here for the same leaf-package reason as
// Database: package report implements this without engine importing it.
type Reporter interface {
	// OnStart fires once, before the first candidate of a phase.
	OnStart(id string, phase string)
	// OnExampleDrawn fires after every candidate evaluation in GENERATE.
	OnExampleDrawn(o Outcome)
	// OnShrink fires after every successful shrink step.
	OnShrink(o Outcome, step int)
	// OnFailure fires once per distinct bug key first found during
	// GENERATE, with the unshrunk Outcome that first exhibited it. It is not
	// called again after shrinking, and bugs found during REUSE do not
	// trigger it.
	OnFailure(key string, o Outcome)
	// OnStatistics fires once, at the end of the run.
	OnStatistics(s Statistics)
	// OnWarning fires for a degraded-but-not-fatal condition, e.g. the
	// database directory falling back to in-memory storage (spec.md §4.9).
	OnWarning(msg string)
}

// Statistics summarizes one run, reported once via Reporter.OnStatistics.
type Statistics struct {
	Attempts         int
	ValidCount       int
	InvalidCount     int
	OverrunCount     int
	InterestingCount int
	ShrinkSteps      int
	DistinctBugs     int
}

// nopReporter is used when Settings.Reporter is nil.
type nopReporter struct{}

func (nopReporter) OnStart(string, string)    {}
func (nopReporter) OnExampleDrawn(Outcome)     {}
func (nopReporter) OnShrink(Outcome, int)      {}
func (nopReporter) OnFailure(string, Outcome) {}
func (nopReporter) OnStatistics(Statistics)    {}
func (nopReporter) OnWarning(string)           {}
