package choice

import "math/bits"

// DrawBits draws an unsigned integer in [0, 2^n), consuming ceil(n/8) bytes.
// Bytes are read big-endian, and the unused high bits of the most
// significant (first-drawn) byte are masked off. n must be in [1, 64].
func (p *Provider) DrawBits(n uint8) uint64 {
	if n == 0 || n > 64 {
		panic("choice: DrawBits: n must be in [1, 64]")
	}

	nbytes := int(n+7) / 8
	raw := p.next(nbytes)
	p.openBlock(nbytes)

	var v uint64
	for _, b := range raw {
		v = v<<8 | uint64(b)
	}

	if rem := n % 8; rem != 0 {
		// mask off the high bits of the most significant byte drawn
		shift := uint(nbytes-1) * 8
		mask := (uint64(1) << (shift + uint(rem))) - 1
		v &= mask
	} else if n < 64 {
		v &= (uint64(1) << n) - 1
	}

	return v
}

// DrawBytes draws k raw bytes.
func (p *Provider) DrawBytes(k int) []byte {
	if k < 0 {
		panic("choice: DrawBytes: k must be >= 0")
	}
	if k == 0 {
		p.openBlock(0)
		return nil
	}
	raw := p.next(k)
	p.openBlock(k)
	out := make([]byte, k)
	copy(out, raw)
	return out
}

// WeightedBool draws one byte and interprets it as a coin with P(true) = p,
// clamped to [0, 1].
func (p *Provider) WeightedBool(prob float64) bool {
	if prob <= 0 {
		p.openForcedBool(false)
		return false
	}
	if prob >= 1 {
		p.openForcedBool(true)
		return true
	}

	raw := p.next(1)
	p.openBlock(1)
	return float64(raw[0])/256 < prob
}

// openForcedBool still consumes a block for structural consistency (every
// primitive call opens exactly one block), even though prob forced the
// outcome without needing entropy.
func (p *Provider) openForcedBool(_ bool) {
	p.next(0)
	p.openBlock(0)
}

// BiasedUint draws an unsigned integer with no fixed bound, via a 3-bit size
// class selecting how many of the subsequent bytes are significant (1..8),
// biased toward small values, then that many value bits.
func (p *Provider) BiasedUint() uint64 {
	size := 1 + p.DrawBits(3) // 1..8 bytes
	return p.DrawBits(uint8(size) * 8)
}

// BiasedInt draws an unsigned integer in [0, max], for unbounded integer
// ranges per the spec's primitive table: it draws a size-class prefix via
// BiasedUint, then reduces into range. max == 0 always yields 0 (but still
// consumes the same blocks, for structural consistency across replays).
func (p *Provider) BiasedInt(max uint64) uint64 {
	v := p.BiasedUint()
	if max == 0 {
		return 0
	}
	if max == ^uint64(0) {
		return v
	}
	return v % (max + 1)
}

// bitLen is exposed for strategies that need to size a BiasedInt draw to a
// known upper bound ahead of time (e.g. bounded integer strategies).
func bitLen(max uint64) int { return bits.Len64(max) }
