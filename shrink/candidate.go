package shrink

import "github.com/joeycumines/go-conjecture/choice"

type (
	// Candidate is one point in the shrink search: a choice sequence plus
	// the block structure the provider recorded while replaying it.
	Candidate struct {
		Bytes  []byte
		Blocks []choice.Block
	}

	// ReplayResult is what replaying a candidate byte sequence against the
	// original test (strict mode, so no fresh entropy is consumed) produces.
	ReplayResult struct {
		// Interesting is true if the replay still reproduces the same bug
		// (same Status == choice.Interesting and same bug key) the shrinker
		// is targeting.
		Interesting bool
		// Blocks is the block structure recorded during this replay -
		// shrunk bytes can change block boundaries (e.g. a Collection
		// drawing fewer elements), so the shrinker always re-derives them
		// rather than reusing the parent's.
		Blocks []choice.Block
		// Bytes is the trimmed choice sequence actually consumed by the
		// replay (trailing unconsumed bytes, if any, are dropped).
		Bytes []byte
	}

	// ReplayFunc replays a candidate byte sequence and reports whether it
	// still reproduces the target failure. Supplied by the caller (package
	// engine's Controller), which owns the Provider/Runner/bug-key
	// machinery this package deliberately knows nothing about.
	ReplayFunc func(bytes []byte) ReplayResult

	// Pass is one shrink transformation. It must not mutate target.Bytes or
	// target.Blocks; it returns a new Candidate and true if it found and
	// accepted a strictly smaller (shortlex) interesting replay.
	Pass func(target Candidate, replay ReplayFunc) (Candidate, bool)
)

// less implements shortlex order: shorter sequences first, ties broken by
// byte-wise lexicographic comparison.
func less(a, b []byte) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// tryAccept replays candidate bytes and, if the result is still Interesting
// and strictly shortlex-smaller than current, returns the accepted
// Candidate and true.
func tryAccept(current Candidate, candidateBytes []byte, replay ReplayFunc) (Candidate, bool) {
	if !less(candidateBytes, current.Bytes) {
		return current, false
	}
	res := replay(candidateBytes)
	if !res.Interesting {
		return current, false
	}
	return Candidate{Bytes: res.Bytes, Blocks: res.Blocks}, true
}

// withoutRange returns bytes with [start,end) removed.
func withoutRange(bytes []byte, start, end int) []byte {
	out := make([]byte, 0, len(bytes)-(end-start))
	out = append(out, bytes[:start]...)
	out = append(out, bytes[end:]...)
	return out
}

// replaceRange returns a copy of bytes with [start,end) replaced by repl.
func replaceRange(bytes []byte, start, end int, repl []byte) []byte {
	out := make([]byte, 0, len(bytes)-(end-start)+len(repl))
	out = append(out, bytes[:start]...)
	out = append(out, repl...)
	out = append(out, bytes[end:]...)
	return out
}
