package shrink

import "github.com/joeycumines/go-conjecture/choice"

// Options configures the shrink driver.
type Options struct {
	// MaxCycles bounds the number of full passes-in-order cycles the driver
	// runs before giving up, guaranteeing termination even if some pass
	// keeps finding marginal (but real) progress forever.
	MaxCycles int
	// Entropy backs the stuck-escape perturbation: when one full cycle
	// makes no progress, the driver tries a handful of random block
	// mutations before concluding it has reached a local minimum.
	Entropy choice.Entropy
	// EscapeAttempts bounds how many random perturbations the stuck-escape
	// heuristic tries per stall before giving up.
	EscapeAttempts int
	// OnStep, if set, is called once per accepted shrink step (including
	// stuck-escape perturbations) with the newly accepted Candidate - the
	// caller's hook for progress reporting (engine.Reporter.OnShrink).
	OnStep func(Candidate)
}

func (o Options) withDefaults() Options {
	if o.MaxCycles <= 0 {
		o.MaxCycles = 50
	}
	if o.EscapeAttempts <= 0 {
		o.EscapeAttempts = 10
	}
	return o
}

// Run drives start through Passes() to a local shortlex minimum, replaying
// every candidate via replay. It always terminates: MaxCycles bounds the
// number of full cycles, and each cycle itself only applies passes that are
// individually fixpoint-bounded (no pass can loop forever, since every
// accepted step is strictly shortlex-smaller and byte sequences are
// well-ordered below the starting length).
func Run(start Candidate, replay ReplayFunc, opts Options) Candidate {
	opts = opts.withDefaults()
	current := start
	passes := Passes()

	for cycle := 0; cycle < opts.MaxCycles; cycle++ {
		progressed := false
		for _, pass := range passes {
			next, ok := pass(current, replay)
			if ok {
				current = next
				progressed = true
				if opts.OnStep != nil {
					opts.OnStep(current)
				}
			}
		}
		if progressed {
			continue
		}
		if opts.Entropy == nil {
			break
		}
		if !escape(&current, replay, opts) {
			break
		}
		if opts.OnStep != nil {
			opts.OnStep(current)
		}
	}

	return current
}

// escape tries a bounded number of random single-block mutations, accepting
// the first one that still replays Interesting and is shortlex-smaller. It
// exists to nudge the search out of a local minimum two declarative passes
// alone can't leave (e.g. two blocks whose relationship only a specific,
// non-monotonic joint mutation would break).
func escape(current *Candidate, replay ReplayFunc, opts Options) bool {
	target := *current
	if len(target.Blocks) == 0 {
		return false
	}
	for attempt := 0; attempt < opts.EscapeAttempts; attempt++ {
		idx := int(opts.Entropy.Uint64() % uint64(len(target.Blocks)))
		b := target.Blocks[idx]
		if b.Len() == 0 {
			continue
		}
		mutated := make([]byte, b.Len())
		v := opts.Entropy.Uint64()
		for i := range mutated {
			mutated[i] = byte(v)
			v >>= 8
		}
		candidateBytes := replaceRange(target.Bytes, b.Start, b.End, mutated)
		if c, ok := tryAccept(target, candidateBytes, replay); ok {
			*current = c
			return true
		}
	}
	return false
}
