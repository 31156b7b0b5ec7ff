package engine

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/joeycumines/go-conjecture/choice"
	"github.com/joeycumines/go-conjecture/dedup"
	"github.com/joeycumines/go-conjecture/health"
	"github.com/joeycumines/go-conjecture/internal/window"
	"github.com/joeycumines/go-conjecture/shrink"
	"github.com/joeycumines/go-conjecture/swarm"
)

// slowWindowCap bounds the trailing window of slow-candidate indices kept
// for diagnostics.
const slowWindowCap = 32

// Failure is one distinct bug the controller found, after whatever shrinking
// PhaseShrink managed to do within its budget.
type Failure struct {
	Key       string
	Outcome   Outcome
	Candidate shrink.Candidate
}

func (f *Failure) Error() string {
	if f.Outcome.Err != nil {
		return f.Outcome.Err.Error()
	}
	return "engine: " + f.Key
}

// Controller drives one TestID through REUSE, GENERATE, and SHRINK, per
// spec.md §4.5. It owns no goroutines: every blocking operation (the
// executor call, database I/O, the overall timeout check) happens on the
// calling goroutine, and the timeout is only ever checked between
// candidates, never inside the executor call.
type Controller struct {
	id       string
	settings Settings
	runner   *Runner

	ledger *dedup.Ledger
	tree   *dedup.Tree
	pool   *swarm.Pool

	acc      window.Accumulator
	slowIdx  *window.Trailing[int64]
	seen     map[string]Outcome
	bugs     map[string]*Failure
	bugOrder []string

	candidateIndex int64
	shrinkSteps    int
}

// New constructs a Controller for id (the embedder-supplied test identity),
// evaluating candidates through runner under settings.
func New(id string, settings Settings, runner *Runner) *Controller {
	if runner == nil {
		runner = NewRunner(nil)
	}
	return &Controller{
		id:       id,
		settings: settings,
		runner:   runner,
		ledger:   dedup.NewLedger(),
		tree:     dedup.NewTree(),
		pool:     swarm.NewPool(swarm.DefaultOptions()),
		slowIdx:  window.NewTrailing[int64](slowWindowCap),
		seen:     make(map[string]Outcome),
		bugs:     make(map[string]*Failure),
	}
}

// entropyFor derives a deterministic, independent entropy stream for
// candidate index - per spec.md §5.1, two Controllers with the same Seed
// and database contents evaluate the same equivalence class of candidates,
// without any process-global RNG mutation.
func (c *Controller) entropyFor(index int64) choice.Entropy {
	seed := c.settings.Seed
	if c.settings.Derandomize {
		h := fnv.New64a()
		_, _ = h.Write([]byte(c.id))
		seed = h.Sum64()
	}
	return choice.NewEntropy(seed ^ splitmix(uint64(index)))
}

func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// observe records bytesKey's outcome the first time it's seen, and reports
// FlakyTest if a later replay of the same exact bytes disagrees on whether
// the candidate was Interesting - the shrinker's correctness depends on
// every replay of one sequence producing the same verdict.
func (c *Controller) observe(bytes []byte, o Outcome) error {
	key := string(bytes)
	prev, ok := c.seen[key]
	c.seen[key] = o
	if !ok {
		return nil
	}
	if (prev.Status == choice.Interesting) != (o.Status == choice.Interesting) {
		return &FlakyTest{Key: c.id, First: prev, Second: o}
	}
	return nil
}

// Run drives the configured phases to completion, returning every distinct
// Failure found (shrunk, if PhaseShrink ran) or a control-flow error
// (InvalidArgument, Unsatisfiable, HealthCheckFailed, FlakyTest).
func (c *Controller) Run(body Body) ([]*Failure, error) {
	if c.settings.MaxExamples <= 0 {
		return nil, &InvalidArgument{Message: "MaxExamples must be positive"}
	}

	reporter := c.settings.reporter()
	db := c.settings.Database

	if c.settings.phaseEnabled(PhaseReuse) && db != nil {
		reporter.OnStart(c.id, "reuse")
		if err := c.reusePhase(body, db); err != nil {
			return nil, err
		}
	}

	if len(c.bugs) == 0 || c.settings.ReportMultipleBugs {
		if c.settings.phaseEnabled(PhaseGenerate) {
			reporter.OnStart(c.id, "generate")
			if err := c.generatePhase(body, reporter); err != nil {
				return c.failures(), err
			}
		}
	}

	if len(c.bugs) > 0 && c.settings.phaseEnabled(PhaseShrink) {
		reporter.OnStart(c.id, "shrink")
		if err := c.shrinkPhase(body, reporter); err != nil {
			return c.failures(), err
		}
	}

	if db != nil {
		for _, key := range c.bugOrder {
			f := c.bugs[key]
			if err := db.Save(c.id, f.Candidate.Bytes); err != nil {
				reporter.OnWarning("conjecture: failed to persist counterexample for " + key + ": " + err.Error())
			}
		}
	}

	reporter.OnStatistics(Statistics{
		Attempts:         c.acc.Attempts,
		ValidCount:       c.acc.ValidCount,
		InvalidCount:     c.acc.InvalidCount,
		OverrunCount:     c.acc.OverrunCount,
		InterestingCount: c.acc.InterestingCount,
		ShrinkSteps:      c.shrinkSteps,
		DistinctBugs:     len(c.bugs),
	})

	return c.failures(), nil
}

func (c *Controller) failures() []*Failure {
	out := make([]*Failure, 0, len(c.bugOrder))
	for _, key := range c.bugOrder {
		out = append(out, c.bugs[key])
	}
	return out
}

// reusePhase replays every stored sequence for c.id in strict mode. A
// replay that's still Interesting seeds c.bugs (so GENERATE/SHRINK can be
// skipped or focused elsewhere); one that's no longer Interesting is a
// stale entry and is pruned.
func (c *Controller) reusePhase(body Body, db Database) error {
	entries, err := db.Fetch(c.id)
	if err != nil {
		return nil // a database read failure degrades to a fresh GENERATE, not a hard error
	}
	for _, raw := range entries {
		c.candidateIndex++
		p := choice.NewProvider(raw, nil, true)
		o := c.runner.Evaluate(p, body)
		if err := c.observe(o.Bytes, o); err != nil {
			return err
		}
		if o.Status != choice.Interesting {
			_ = db.Delete(c.id, raw)
			continue
		}
		key := BugKey(o)
		if _, ok := c.bugs[key]; !ok {
			c.bugs[key] = &Failure{Key: key, Outcome: o, Candidate: shrink.Candidate{Bytes: o.Bytes, Blocks: o.Blocks}}
			c.bugOrder = append(c.bugOrder, key)
		}
	}
	return nil
}

// generatePhase draws fresh candidates (swarm-biased, per spec.md §4.6)
// until MaxExamples distinct valid examples have been seen, the iteration
// or time budget runs out, or (absent ReportMultipleBugs) the first bug is
// found.
func (c *Controller) generatePhase(body Body, reporter Reporter) error {
	maxIter := c.settings.maxIterations()
	var deadlineAt time.Time
	if c.settings.Timeout > 0 {
		deadlineAt = time.Now().Add(c.settings.Timeout)
	}

	distinct := 0
	iterations := 0

	for iterations < maxIter && distinct < c.settings.MaxExamples {
		if !deadlineAt.IsZero() && time.Now().After(deadlineAt) {
			break
		}
		iterations++
		c.candidateIndex++

		entropy := c.entropyFor(c.candidateIndex)
		param := c.pool.Select(entropy)
		p := choice.NewProvider(param.Bytes, entropy, false)

		start := time.Now()
		o := c.runner.Evaluate(p, body)
		elapsed := time.Since(start)

		if err := c.observe(o.Bytes, o); err != nil {
			return err
		}

		duplicate := c.ledger.SeenOrRecord(o.Bytes)
		slow := c.settings.Deadline > 0 && elapsed > c.settings.Deadline
		c.acc.Record(o.ChoiceLen, slow, 0, elapsed)
		if slow {
			c.recordSlow(c.candidateIndex)
		}

		switch o.Status {
		case choice.Valid:
			c.acc.ValidCount++
			if !duplicate {
				distinct++
			}
			c.pool.Update(param, boolReward(!duplicate))
		case choice.Invalid:
			c.acc.InvalidCount++
			c.tree.MarkDead(o.Bytes)
			c.pool.Update(param, 0)
		case choice.Overrun:
			c.acc.OverrunCount++
			c.tree.MarkDead(o.Bytes)
			c.pool.Update(param, 0)
		case choice.Interesting:
			c.acc.InterestingCount++
			c.pool.Update(param, 1)
			key := BugKey(o)
			if _, ok := c.bugs[key]; !ok {
				c.bugs[key] = &Failure{Key: key, Outcome: o, Candidate: shrink.Candidate{Bytes: o.Bytes, Blocks: o.Blocks}}
				c.bugOrder = append(c.bugOrder, key)
				reporter.OnFailure(key, o)
				if !c.settings.ReportMultipleBugs {
					return nil
				}
			}
		}

		reporter.OnExampleDrawn(o)

		if c.tree.Saturated(nil) {
			break
		}

		if r := health.Run(health.Sample{Acc: c.acc, BaseExampleLen: c.baseExampleLen()}, c.settings.suppressed); len(r) > 0 {
			detail := r[0].Detail
			if r[0].Tag == health.TooSlowDataGeneration && c.slowIdx.Len() > 0 {
				detail = fmt.Sprintf("%s (recent slow candidates: %v)", detail, c.slowIdx.Slice())
			}
			return &HealthCheckFailed{Tag: r[0].Tag, Detail: detail}
		}
	}

	if distinct == 0 && len(c.bugs) == 0 {
		return &Unsatisfiable{Attempts: iterations, Valid: c.acc.ValidCount}
	}
	return nil
}

// recordSlow keeps a bounded trailing window of candidate indices whose
// executor call exceeded Settings.Deadline, surfaced in HealthCheckFailed's
// Detail if too_slow_data_generation trips. generatePhase records every
// candidate's generation time as zero, so from this controller that check
// does not trip and the window is not surfaced.
func (c *Controller) recordSlow(index int64) {
	c.slowIdx.Push(index)
}

func boolReward(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// baseExampleLen returns the shortest choice sequence among any bug found so
// far, for health.CheckLargeBaseExample - 0 (meaning "no opinion yet") if no
// bug has been found.
func (c *Controller) baseExampleLen() int {
	best := 0
	for _, f := range c.bugs {
		if best == 0 || f.Candidate.Bytes != nil && len(f.Candidate.Bytes) < best {
			best = len(f.Candidate.Bytes)
		}
	}
	return best
}

// shrinkPhase runs package shrink's driver once per distinct bug found,
// replaying candidates in strict mode against the same bug key so an
// unrelated failure encountered mid-shrink doesn't get adopted as progress.
func (c *Controller) shrinkPhase(body Body, reporter Reporter) error {
	for _, key := range c.bugOrder {
		f := c.bugs[key]
		var replayErr error

		replay := func(bytes []byte) shrink.ReplayResult {
			c.candidateIndex++
			p := choice.NewProvider(bytes, nil, true)
			o := c.runner.Evaluate(p, body)
			if err := c.observe(o.Bytes, o); err != nil && replayErr == nil {
				replayErr = err
			}
			return shrink.ReplayResult{
				Interesting: o.Status == choice.Interesting && BugKey(o) == key,
				Blocks:      o.Blocks,
				Bytes:       o.Bytes,
			}
		}

		// Re-run the bug's own bytes once before shrinking: every pass below
		// only ever proposes strictly smaller candidates, so without this
		// replay the original sequence is never observed a second time and
		// a flaky property (spec.md §7, §8 scenario 5) goes undetected.
		replay(f.Candidate.Bytes)
		if replayErr != nil {
			return replayErr
		}

		shrunk := shrink.Run(f.Candidate, replay, shrink.Options{
			Entropy: c.entropyFor(c.candidateIndex + 1),
			OnStep: func(cand shrink.Candidate) {
				c.shrinkSteps++
				reporter.OnShrink(Outcome{Status: choice.Interesting, ChoiceLen: len(cand.Bytes), Bytes: cand.Bytes}, c.shrinkSteps)
			},
		})
		if replayErr != nil {
			return replayErr
		}

		f.Candidate = shrunk
		f.Outcome.Bytes = shrunk.Bytes
		f.Outcome.Blocks = shrunk.Blocks
		f.Outcome.ChoiceLen = len(shrunk.Bytes)
	}
	return nil
}
