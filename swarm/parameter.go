package swarm

import "github.com/joeycumines/go-conjecture/choice"

// Parameter is one swarm-testing bias: a fixed byte sequence layered as a
// prefix under a candidate's Provider, plus the running score that decides
// how often it gets reused.
type Parameter struct {
	Bytes []byte
	score float64
	uses  int
}

// Score returns the parameter's current exponential moving average.
func (p *Parameter) Score() float64 { return p.score }

// Uses returns how many times the parameter has been selected.
func (p *Parameter) Uses() int { return p.uses }

func newParameter(entropy choice.Entropy, n int) *Parameter {
	return &Parameter{Bytes: drawBytes(entropy, n)}
}

// drawBytes pulls n fresh bytes straight from entropy, independent of any
// Provider - swarm manages its own bias sequences outside the choice
// sequence a candidate records.
func drawBytes(entropy choice.Entropy, n int) []byte {
	out := make([]byte, n)
	i := 0
	for i < n {
		v := entropy.Uint64()
		for b := 0; b < 8 && i < n; b++ {
			out[i] = byte(v)
			v >>= 8
			i++
		}
	}
	return out
}

// uniformFloat returns a value in [0, 1), using the top 53 bits of entropy
// as the mantissa - the same technique math/rand/v2 uses internally for
// Float64.
func uniformFloat(entropy choice.Entropy) float64 {
	return float64(entropy.Uint64()>>11) / (1 << 53)
}
