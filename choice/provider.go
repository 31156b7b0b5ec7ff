package choice

import "errors"

type (
	// Provider wraps a prefix (if replaying) and an entropy source, and
	// answers primitive draw calls on behalf of strategies, recording block
	// boundaries and the active label stack as it goes. One Provider is
	// created per candidate evaluation and discarded after use.
	Provider struct {
		prefix  []byte
		entropy Entropy
		strict  bool

		pos    int
		buf    []byte
		blocks []Block
		labels []Label
		events map[string]struct{}

		status Status
		frozen bool
	}

	// OverrunError is recovered by the engine's executor loop when a strict
	// Provider runs off the end of its prefix.
	OverrunError struct{}

	// RejectError is recovered by the engine's executor loop when a strategy
	// or test body calls Provider.Reject.
	RejectError struct{}
)

func (OverrunError) Error() string { return "choice: overrun" }
func (RejectError) Error() string  { return "choice: rejected" }

// NewProvider constructs a Provider. If strict is true, running out of
// prefix bytes panics with OverrunError instead of consulting entropy -
// entropy may be nil in that case. If strict is false, entropy must be
// non-nil: once prefix is exhausted, further draws pull fresh bytes from it
// and append them to the recorded buffer.
func NewProvider(prefix []byte, entropy Entropy, strict bool) *Provider {
	if !strict && entropy == nil {
		panic(errors.New("choice: non-strict provider requires entropy"))
	}
	return &Provider{
		prefix:  prefix,
		entropy: entropy,
		strict:  strict,
	}
}

// next returns n fresh bytes, consuming from the prefix first and falling
// back to entropy (or panicking with OverrunError, if strict). It's the only
// place new bytes enter buf.
func (p *Provider) next(n int) []byte {
	if p.frozen {
		panic(errors.New("choice: provider already finished"))
	}

	out := make([]byte, n)
	i := 0

	if p.pos < len(p.prefix) {
		i = copy(out, p.prefix[p.pos:])
		p.pos += i
	}

	if i < n {
		if p.strict {
			panic(OverrunError{})
		}
		for i < n {
			var word [8]byte
			v := p.entropy.Uint64()
			for b := 0; b < 8; b++ {
				word[b] = byte(v)
				v >>= 8
			}
			i += copy(out[i:], word[:])
		}
	}

	p.buf = append(p.buf, out...)
	return out
}

// openBlock records a new Block spanning the last n bytes appended to buf,
// under the current label stack.
func (p *Provider) openBlock(n int) {
	labels := make([]Label, len(p.labels))
	copy(labels, p.labels)
	end := len(p.buf)
	p.blocks = append(p.blocks, Block{Start: end - n, End: end, Labels: labels})
}

// Scope pushes name as a label for the duration of the returned closure;
// callers are expected to `defer p.Scope(name)()`, mirroring a "with" block.
func (p *Provider) Scope(name string) func() {
	p.labels = append(p.labels, Intern(name))
	return func() {
		p.labels = p.labels[:len(p.labels)-1]
	}
}

// Reject marks the evaluation INVALID by unwinding to the engine's executor
// via panic; it must only be called from within strategy or test code that
// the executor wraps.
func (p *Provider) Reject() {
	panic(RejectError{})
}

// Event records a user-reported tag, for statistics - it has no effect on
// classification.
func (p *Provider) Event(tag string) {
	if p.events == nil {
		p.events = make(map[string]struct{})
	}
	p.events[tag] = struct{}{}
}

// Events returns the recorded event tags in unspecified order.
func (p *Provider) Events() []string {
	out := make([]string, 0, len(p.events))
	for e := range p.events {
		out = append(out, e)
	}
	return out
}

// Finish freezes the Provider with the given final Status. The byte buffer
// is immutable from this point on.
func (p *Provider) Finish(status Status) {
	p.status = status
	p.frozen = true
}

// Status returns the Status set by Finish, or Overrun if not yet finished.
func (p *Provider) Status() Status { return p.status }

// Bytes returns the choice sequence recorded so far (or in full, once
// Finish has been called). Callers must not modify the returned slice.
func (p *Provider) Bytes() []byte { return p.buf }

// Blocks returns the recorded blocks so far (or in full, once Finish has
// been called). Callers must not modify the returned slice.
func (p *Provider) Blocks() []Block { return p.blocks }

// AnnotateLastBlock sets Repr on the most recently opened block, if any.
// It's a no-op if no block has been opened yet.
func (p *Provider) AnnotateLastBlock(repr string) {
	if len(p.blocks) == 0 {
		return
	}
	p.blocks[len(p.blocks)-1].Repr = repr
}
