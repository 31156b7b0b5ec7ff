package choice

import "math/rand/v2"

// Entropy is the minimal source of fresh bytes a Provider draws from once a
// replay prefix (if any) is exhausted. It's satisfied by *rand.ChaCha8 and
// *rand.Rand (math/rand/v2), kept narrow so callers aren't forced onto a
// particular generator.
type Entropy interface {
	Uint64() uint64
}

// NewEntropy returns a deterministic Entropy seeded from seed. Per the
// engine's no-global-mutable-state design, every Controller constructs its
// own Entropy explicitly rather than touching a process-global RNG.
func NewEntropy(seed uint64) Entropy {
	var seed32 [32]byte
	s := seed
	for i := 0; i < 4; i++ {
		for b := 0; b < 8; b++ {
			seed32[i*8+b] = byte(s)
			s >>= 8
		}
		// mix in the lane index so a zero seed doesn't produce a zero key
		s = seed ^ (seed * uint64(i+1)) ^ (uint64(i) + 0x9e3779b97f4a7c15)
	}
	return rand.NewChaCha8(seed32)
}
