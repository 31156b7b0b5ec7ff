package strategy

import "github.com/joeycumines/go-conjecture/choice"

// defaultFilterRetries is the small, fixed retry budget for Filter: filter
// is not a search primitive, so it must not be tempted into one.
const defaultFilterRetries = 3

// Map draws from s and applies f. f must be pure and side-effect free, for
// shrink stability - the shrinker replays s's bytes and expects f to be
// deterministic in terms of them.
func Map[T, U any](s Strategy[T], f func(T) U) Strategy[U] {
	return Func[U](func(p *choice.Provider) U {
		return f(s.DoDraw(p))
	})
}

// Filter draws from s, retrying (consuming fresh bytes each time) up to
// retries times (default 3, if <= 0) until pred holds. If every attempt
// fails, the evaluation is marked INVALID via p.Reject.
func Filter[T any](s Strategy[T], pred func(T) bool, retries int) Strategy[T] {
	if retries <= 0 {
		retries = defaultFilterRetries
	}
	return Func[T](func(p *choice.Provider) T {
		for i := 0; i < retries; i++ {
			if v := s.DoDraw(p); pred(v) {
				return v
			}
		}
		p.Reject()
		panic("unreachable: Reject always unwinds")
	})
}

// FlatMap draws x from s, then draws from k(x). k(x)'s draws consume bytes
// following x's, so shrinking x may change what k(x) draws - the shrinker
// doesn't need to know this, since it only ever operates on bytes and
// blocks, but flatmap'd strategies are known to shrink less cleanly than
// non-flatmap'd ones (see DESIGN.md).
func FlatMap[T, U any](s Strategy[T], k func(T) Strategy[U]) Strategy[U] {
	return Func[U](func(p *choice.Provider) U {
		x := s.DoDraw(p)
		return k(x).DoDraw(p)
	})
}

// OneOf draws a biased index over the given strategies and defers to the
// chosen one, under a "one_of" label. The shrinker prefers earlier indices,
// because shrinking the index block toward zero is itself admissible
// whenever the earlier branch is still INTERESTING.
func OneOf[T any](opts ...Strategy[T]) Strategy[T] {
	if len(opts) == 0 {
		panic("strategy: OneOf requires at least one option")
	}
	return Func[T](func(p *choice.Provider) T {
		defer p.Scope("one_of")()
		idx := p.BiasedInt(uint64(len(opts) - 1))
		return opts[idx].DoDraw(p)
	})
}

// SampledFrom draws a uniform-ish index over values and returns the element.
func SampledFrom[T any](values ...T) Strategy[T] {
	if len(values) == 0 {
		panic("strategy: SampledFrom requires at least one value")
	}
	return Func[T](func(p *choice.Provider) T {
		defer p.Scope("sampled_from")()
		idx := p.BiasedInt(uint64(len(values) - 1))
		return values[idx]
	})
}

// Permutation draws a permutation of values using an in-place Fisher-Yates
// shuffle driven by BiasedInt draws, one per remaining element.
func Permutation[T any](values []T) Strategy[[]T] {
	return Func[[]T](func(p *choice.Provider) []T {
		defer p.Scope("permutation")()
		out := make([]T, len(values))
		copy(out, values)
		for i := len(out) - 1; i > 0; i-- {
			j := p.BiasedInt(uint64(i))
			out[i], out[j] = out[j], out[i]
		}
		return out
	})
}
