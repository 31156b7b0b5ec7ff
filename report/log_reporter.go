package report

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/joeycumines/go-conjecture/engine"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// NopReporter implements engine.Reporter with no-ops, for embedders that
// have no use for progress narration.
type NopReporter struct{}

func (NopReporter) OnStart(string, string)    {}
func (NopReporter) OnExampleDrawn(engine.Outcome) {}
func (NopReporter) OnShrink(engine.Outcome, int)  {}
func (NopReporter) OnFailure(string, engine.Outcome) {}
func (NopReporter) OnStatistics(engine.Statistics) {}
func (NopReporter) OnWarning(string)           {}

// cheapRepr is a best-effort, display-only representation of a value -
// never parsed back, matching spec.md §3.1's drawn_value_cheap_repr. It's
// produced with spew.Sdump, mirroring the teacher corpus's use of go-spew
// for debug-oriented formatting in test assertions.
func cheapRepr(v any) string {
	if v == nil {
		return ""
	}
	return spew.Sdump(v)
}

// LogReporter logs every engine.Reporter callback as a structured event via
// a logiface.Logger[*stumpy.Event], constructed with the teacher's
// `stumpy.L.New(stumpy.L.WithStumpy(...))` pattern.
type LogReporter struct {
	logger *logiface.Logger[*stumpy.Event]
}

// NewLogReporter returns a LogReporter writing structured events through
// logger. If logger is nil, a default stumpy-backed logger is constructed.
func NewLogReporter(logger *logiface.Logger[*stumpy.Event]) *LogReporter {
	if logger == nil {
		logger = stumpy.L.New(stumpy.L.WithStumpy())
	}
	return &LogReporter{logger: logger}
}

func (r *LogReporter) OnStart(id string, phase string) {
	r.logger.Info().
		Str(`test_id`, id).
		Str(`phase`, phase).
		Log(`starting phase`)
}

func (r *LogReporter) OnExampleDrawn(o engine.Outcome) {
	r.logger.Debug().
		Str(`status`, o.Status.String()).
		Int(`choice_len`, o.ChoiceLen).
		Log(`example drawn`)
}

func (r *LogReporter) OnShrink(o engine.Outcome, step int) {
	r.logger.Info().
		Int(`step`, step).
		Int(`choice_len`, o.ChoiceLen).
		Log(`shrink step accepted`)
}

func (r *LogReporter) OnFailure(key string, o engine.Outcome) {
	b := r.logger.Err().
		Str(`bug_key`, key).
		Int(`choice_len`, o.ChoiceLen)
	if o.Err != nil {
		b = b.Err(o.Err)
	}
	if o.Panic != nil {
		b = b.Str(`panic`, cheapRepr(o.Panic))
	}
	b.Log(`counterexample found`)
}

func (r *LogReporter) OnWarning(msg string) {
	r.logger.Warning().Log(msg)
}

func (r *LogReporter) OnStatistics(s engine.Statistics) {
	r.logger.Info().
		Int(`attempts`, s.Attempts).
		Int(`valid`, s.ValidCount).
		Int(`invalid`, s.InvalidCount).
		Int(`interesting`, s.InterestingCount).
		Int(`shrink_steps`, s.ShrinkSteps).
		Int(`distinct_bugs`, s.DistinctBugs).
		Log(`run statistics`)
}
