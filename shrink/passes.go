package shrink

import "github.com/joeycumines/go-conjecture/choice"

// blockValue reads a block's bytes as a big-endian unsigned integer. Blocks
// longer than 8 bytes are read only on their trailing (least significant) 8
// bytes, which is enough for the passes below to make monotonic progress -
// the leading bytes still shrink via PassZeroBlock and PassDeleteBlocks.
func blockValue(bytes []byte, b choice.Block) uint64 {
	var v uint64
	raw := bytes[b.Start:b.End]
	if len(raw) > 8 {
		raw = raw[len(raw)-8:]
	}
	for _, c := range raw {
		v = v<<8 | uint64(c)
	}
	return v
}

func writeBlockValue(length int, v uint64) []byte {
	out := make([]byte, length)
	for i := length - 1; i >= 0 && length-i <= 8; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

func runFixpoint(target Candidate, replay ReplayFunc, step func(Candidate, ReplayFunc) (Candidate, bool)) (Candidate, bool) {
	progressed := false
	for {
		next, ok := step(target, replay)
		if !ok {
			return target, progressed
		}
		target = next
		progressed = true
	}
}

// PassDeleteBlocks tries deleting one block at a time, and - the
// matched-label variant - the longest contiguous run of blocks with the
// deleted block's exact label stack (choice.SameLabel), which collapses an entire Collection
// element or Recursive branch in one step instead of byte-at-a-time.
func PassDeleteBlocks(target Candidate, replay ReplayFunc) (Candidate, bool) {
	return runFixpoint(target, replay, func(target Candidate, replay ReplayFunc) (Candidate, bool) {
		for i := len(target.Blocks) - 1; i >= 0; i-- {
			b := target.Blocks[i]
			if b.Len() == 0 {
				continue
			}

			// matched-label variant: extend the deletion to cover every
			// immediately following block with b's exact label stack.
			end := i
			for end+1 < len(target.Blocks) && choice.SameLabel(target.Blocks[end+1], b) {
				end++
			}
			start := b.Start
			stop := target.Blocks[end].End

			candidateBytes := withoutRange(target.Bytes, start, stop)
			if c, ok := tryAccept(target, candidateBytes, replay); ok {
				return c, true
			}

			// fall back to deleting just this one block
			if end != i {
				candidateBytes = withoutRange(target.Bytes, b.Start, b.End)
				if c, ok := tryAccept(target, candidateBytes, replay); ok {
					return c, true
				}
			}
		}
		return target, false
	})
}

// PassZeroBlock tries replacing each block's bytes with all zeros.
func PassZeroBlock(target Candidate, replay ReplayFunc) (Candidate, bool) {
	return runFixpoint(target, replay, func(target Candidate, replay ReplayFunc) (Candidate, bool) {
		for _, b := range target.Blocks {
			if b.Len() == 0 || allZero(target.Bytes[b.Start:b.End]) {
				continue
			}
			zero := make([]byte, b.Len())
			candidateBytes := replaceRange(target.Bytes, b.Start, b.End, zero)
			if c, ok := tryAccept(target, candidateBytes, replay); ok {
				return c, true
			}
		}
		return target, false
	})
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// PassBlockReduction binary-searches each block's big-endian integer value
// toward zero, independent of PassZeroBlock's direct jump - this finds
// intermediate values a jump-to-zero would skip over (e.g. a bound that must
// stay above some threshold to remain Interesting).
func PassBlockReduction(target Candidate, replay ReplayFunc) (Candidate, bool) {
	return runFixpoint(target, replay, func(target Candidate, replay ReplayFunc) (Candidate, bool) {
		for _, b := range target.Blocks {
			if b.Len() == 0 {
				continue
			}
			v := blockValue(target.Bytes, b)
			if v == 0 {
				continue
			}
			lo, hi := uint64(0), v
			best := v
			for lo < hi {
				mid := lo + (hi-lo)/2
				candidateBytes := replaceRange(target.Bytes, b.Start, b.End, writeBlockValue(b.Len(), mid))
				if !less(candidateBytes, target.Bytes) {
					lo = mid + 1
					continue
				}
				res := replay(candidateBytes)
				if res.Interesting {
					best = mid
					hi = mid
				} else {
					lo = mid + 1
				}
			}
			if best < v {
				candidateBytes := replaceRange(target.Bytes, b.Start, b.End, writeBlockValue(b.Len(), best))
				if c, ok := tryAccept(target, candidateBytes, replay); ok {
					return c, true
				}
			}
		}
		return target, false
	})
}

// PassAdjacentMerge tries redistributing value mass between two adjacent,
// equal-length blocks - transferring all of one into the other, or splitting
// their sum evenly - which finds reductions neither block alone could reach
// (e.g. a pair of fields whose *sum* must exceed a threshold).
func PassAdjacentMerge(target Candidate, replay ReplayFunc) (Candidate, bool) {
	return runFixpoint(target, replay, func(target Candidate, replay ReplayFunc) (Candidate, bool) {
		for i := 0; i+1 < len(target.Blocks); i++ {
			a, b := target.Blocks[i], target.Blocks[i+1]
			if a.Len() == 0 || a.Len() != b.Len() {
				continue
			}
			va, vb := blockValue(target.Bytes, a), blockValue(target.Bytes, b)
			sum := va + vb
			candidates := [][2]uint64{
				{0, sum},
				{sum, 0},
				{sum / 2, sum - sum/2},
			}
			for _, c := range candidates {
				if c[0] == va && c[1] == vb {
					continue
				}
				repl := append(writeBlockValue(a.Len(), c[0]), writeBlockValue(b.Len(), c[1])...)
				candidateBytes := replaceRange(target.Bytes, a.Start, b.End, repl)
				if cand, ok := tryAccept(target, candidateBytes, replay); ok {
					return cand, true
				}
			}
		}
		return target, false
	})
}

// PassSort sorts each maximal run of equal-length, same-label blocks
// ascending by byte content, which both reduces shortlex order directly and
// exposes further duplicate-propagate opportunities.
func PassSort(target Candidate, replay ReplayFunc) (Candidate, bool) {
	return runFixpoint(target, replay, func(target Candidate, replay ReplayFunc) (Candidate, bool) {
		i := 0
		for i < len(target.Blocks) {
			j := i + 1
			for j < len(target.Blocks) &&
				target.Blocks[j].Len() == target.Blocks[i].Len() &&
				choice.SameLabel(target.Blocks[j], target.Blocks[i]) {
				j++
			}
			if j-i >= 2 {
				start, stop := target.Blocks[i].Start, target.Blocks[j-1].End
				width := target.Blocks[i].Len()
				n := j - i
				elems := make([][]byte, n)
				for k := 0; k < n; k++ {
					b := target.Blocks[i+k]
					elems[k] = target.Bytes[b.Start:b.End]
				}
				sorted := make([][]byte, n)
				copy(sorted, elems)
				for a := 1; a < n; a++ {
					for c := a; c > 0 && bytesLess(sorted[c], sorted[c-1]); c-- {
						sorted[c], sorted[c-1] = sorted[c-1], sorted[c]
					}
				}
				if !sameOrder(elems, sorted) {
					flat := make([]byte, 0, width*n)
					for _, e := range sorted {
						flat = append(flat, e...)
					}
					candidateBytes := replaceRange(target.Bytes, start, stop, flat)
					if c, ok := tryAccept(target, candidateBytes, replay); ok {
						return c, true
					}
				}
			}
			i = j
		}
		return target, false
	})
}

func bytesLess(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func sameOrder(a, b [][]byte) bool {
	for i := range a {
		if string(a[i]) != string(b[i]) {
			return false
		}
	}
	return true
}

// PassPairEqualize tries collapsing two blocks of equal length to identical
// content (copying the lexicographically smaller of the two over the
// other), which often lets an otherwise-irrelevant distinction between two
// drawn values disappear from the minimized example.
func PassPairEqualize(target Candidate, replay ReplayFunc) (Candidate, bool) {
	return runFixpoint(target, replay, func(target Candidate, replay ReplayFunc) (Candidate, bool) {
		for i := 0; i < len(target.Blocks); i++ {
			for j := i + 1; j < len(target.Blocks); j++ {
				a, b := target.Blocks[i], target.Blocks[j]
				if a.Len() == 0 || a.Len() != b.Len() {
					continue
				}
				av, bv := target.Bytes[a.Start:a.End], target.Bytes[b.Start:b.End]
				if string(av) == string(bv) {
					continue
				}
				src, dstStart, dstEnd := av, b.Start, b.End
				if bytesLess(bv, av) {
					src, dstStart, dstEnd = bv, a.Start, a.End
				}
				candidateBytes := replaceRange(target.Bytes, dstStart, dstEnd, append([]byte(nil), src...))
				if c, ok := tryAccept(target, candidateBytes, replay); ok {
					return c, true
				}
			}
		}
		return target, false
	})
}

// PassDuplicatePropagate finds blocks that already share identical bytes and
// tries zeroing every member of the group in one atomic replay - a
// synchronized edit across duplicated blocks is more likely to preserve the
// failure than shrinking one copy alone, when the property's root cause
// depends on the values staying equal to each other.
func PassDuplicatePropagate(target Candidate, replay ReplayFunc) (Candidate, bool) {
	return runFixpoint(target, replay, func(target Candidate, replay ReplayFunc) (Candidate, bool) {
		groups := make(map[string][]int)
		for i, b := range target.Blocks {
			if b.Len() == 0 {
				continue
			}
			groups[string(target.Bytes[b.Start:b.End])] = append(groups[string(target.Bytes[b.Start:b.End])], i)
		}
		for _, idxs := range groups {
			if len(idxs) < 2 || allZero(target.Bytes[target.Blocks[idxs[0]].Start:target.Blocks[idxs[0]].End]) {
				continue
			}
			candidateBytes := append([]byte(nil), target.Bytes...)
			for _, i := range idxs {
				b := target.Blocks[i]
				for k := b.Start; k < b.End; k++ {
					candidateBytes[k] = 0
				}
			}
			if c, ok := tryAccept(target, candidateBytes, replay); ok {
				return c, true
			}
		}
		return target, false
	})
}

// PassReorder tries swapping two equal-length, same-label blocks' positions
// (as opposed to PassSort's whole-run ascending sort), which can shrink
// examples where an earlier occurrence of a larger value is what matters,
// not the run's overall order.
func PassReorder(target Candidate, replay ReplayFunc) (Candidate, bool) {
	return runFixpoint(target, replay, func(target Candidate, replay ReplayFunc) (Candidate, bool) {
		for i := 0; i+1 < len(target.Blocks); i++ {
			a, b := target.Blocks[i], target.Blocks[i+1]
			if a.Len() == 0 || a.Len() != b.Len() || !choice.SameLabel(a, b) {
				continue
			}
			av, bv := target.Bytes[a.Start:a.End], target.Bytes[b.Start:b.End]
			if string(av) == string(bv) {
				continue
			}
			swapped := append(append([]byte(nil), bv...), av...)
			candidateBytes := replaceRange(target.Bytes, a.Start, b.End, swapped)
			if c, ok := tryAccept(target, candidateBytes, replay); ok {
				return c, true
			}
		}
		return target, false
	})
}

// Passes returns the eight passes in the order the driver applies them each
// cycle.
func Passes() []Pass {
	return []Pass{
		PassDeleteBlocks,
		PassZeroBlock,
		PassBlockReduction,
		PassAdjacentMerge,
		PassSort,
		PassPairEqualize,
		PassDuplicatePropagate,
		PassReorder,
	}
}
