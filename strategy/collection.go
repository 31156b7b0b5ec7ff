package strategy

import "github.com/joeycumines/go-conjecture/choice"

const (
	// collectionRetries mirrors Filter's retry budget: a duplicate element
	// under Unique gets this many fresh attempts before the position is
	// abandoned.
	collectionRetries = 3
	// hardIterationCap bounds the loop regardless of Max/continuation
	// draws, as a last-resort guard against pathological element strategies.
	hardIterationCap = 1 << 20
)

// SliceOptions configures Slice.
type SliceOptions struct {
	// MinLen and MaxLen bound the produced slice's length. MaxLen <= 0 means
	// unbounded (subject only to hardIterationCap).
	MinLen, MaxLen int

	// Average is the target expected length of unbounded generation; it
	// determines the per-element continuation probability. Defaults to 10
	// if <= 0.
	Average float64

	// Unique, if set, rejects (and retries, up to collectionRetries times)
	// any element whose Key collides with one already produced.
	Unique bool
	// Key extracts the comparable identity used when Unique is set. Required
	// if Unique is true.
	Key func(v any) any
}

// Slice draws a variable-length collection: a "continue?" coin is flipped
// before each element (weighted so the expected length matches
// opts.Average), MinLen elements are always forced, and MaxLen (if > 0)
// forces termination.
func Slice[T any](elem Strategy[T], opts SliceOptions) Strategy[[]T] {
	average := opts.Average
	if average <= 0 {
		average = 10
	}
	// expected length L under per-step continue probability q satisfies
	// L = q/(1-q), so q = L/(L+1).
	pContinue := average / (average + 1)

	return Func[[]T](func(p *choice.Provider) []T {
		defer p.Scope("collection")()

		var out []T
		seen := map[any]struct{}{}

		for i := 0; i < hardIterationCap; i++ {
			forced := i < opts.MinLen
			if !forced {
				if opts.MaxLen > 0 && len(out) >= opts.MaxLen {
					break
				}
				if !p.WeightedBool(pContinue) {
					break
				}
			}

			var (
				v  T
				ok bool
			)
			for attempt := 0; attempt < collectionRetries; attempt++ {
				v = elem.DoDraw(p)
				if !opts.Unique || opts.Key == nil {
					ok = true
					break
				}
				key := opts.Key(v)
				if _, dup := seen[key]; !dup {
					seen[key] = struct{}{}
					ok = true
					break
				}
			}
			if !ok {
				if forced {
					// couldn't satisfy MinLen with unique elements; give up
					// on uniqueness for this slot rather than violate MinLen.
					out = append(out, v)
				}
				continue
			}
			out = append(out, v)
		}

		return out
	})
}

// RecursiveOptions bounds Recursive.
type RecursiveOptions struct {
	// MaxLeaves caps the nesting depth of recursive expansions along any one
	// branch (the "leaf budget"), forcing the base case once exhausted. Each
	// child strategy gets the parent's remaining budget minus one, so
	// sibling branches are budgeted separately and the total number of
	// expansions in one value is not capped.
	MaxLeaves int
}

// Recursive builds values of a self-referential shape: extend receives a
// strategy for "one smaller instance" and must return a strategy for a full
// instance built from zero or more smaller instances. base is used once the
// leaf budget is exhausted.
func Recursive[T any](base Strategy[T], extend func(child Strategy[T]) Strategy[T], opts RecursiveOptions) Strategy[T] {
	maxLeaves := opts.MaxLeaves
	if maxLeaves <= 0 {
		maxLeaves = 10
	}
	return Func[T](func(p *choice.Provider) T {
		return recurse(p, base, extend, maxLeaves)
	})
}

func recurse[T any](p *choice.Provider, base Strategy[T], extend func(Strategy[T]) Strategy[T], budget int) T {
	if budget <= 0 || !p.WeightedBool(float64(budget)/float64(budget+1)) {
		return base.DoDraw(p)
	}
	child := Func[T](func(p *choice.Provider) T {
		return recurse(p, base, extend, budget-1)
	})
	return extend(child).DoDraw(p)
}
