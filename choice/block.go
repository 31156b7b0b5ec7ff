package choice

// Block is a half-open interval [Start, End) into a choice sequence,
// corresponding to one primitive draw (or, for Just/zero-byte draws, an
// empty interval at the current cursor). Labels records the label stack in
// effect when the block was opened, outermost first.
//
// Blocks form a non-overlapping, contiguous partition of a completed
// evaluation's byte buffer (spec invariant: Block partition). Index into the
// owning Provider's block slice rather than holding pointers between
// blocks - there's no pointer graph to maintain, per the Design Notes.
type Block struct {
	Start, End int
	Labels     []Label
	// Repr is a best-effort, never-parsed human representation of the value
	// this block decoded to, populated lazily by strategies that choose to
	// (drawn_value_cheap_repr in the spec's data model). Empty if unset.
	Repr string
}

// Len returns the number of bytes the block spans.
func (b Block) Len() int { return b.End - b.Start }

// SameLabel reports whether a and b were opened under an identical label
// stack - the condition the shrinker's label-aware passes (block deletion's
// matched-label variant, sort, reorder) require before treating two blocks
// as structurally related.
func SameLabel(a, b Block) bool {
	if len(a.Labels) != len(b.Labels) {
		return false
	}
	for i, l := range a.Labels {
		if b.Labels[i] != l {
			return false
		}
	}
	return true
}
