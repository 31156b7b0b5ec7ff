package swarm

import (
	"math"

	"github.com/joeycumines/go-conjecture/choice"
)

// Options configures a Pool.
type Options struct {
	// MaxParameters bounds the pool size; the lowest-scoring parameter is
	// evicted to make room for a newly spawned one past this cap.
	MaxParameters int
	// Alpha is the EMA decay applied on every Update:
	// score = Alpha*score + (1-Alpha)*reward. Closer to 1 remembers longer.
	Alpha float64
	// SpawnProbability is the chance Select creates a brand-new parameter
	// instead of reusing one from the live pool.
	SpawnProbability float64
	// ParameterLen is the byte length of a freshly spawned parameter's bias
	// sequence.
	ParameterLen int
}

// DefaultOptions returns a conservative baseline: a pool of 20 parameters,
// an 8-byte bias sequence, a 0.2 EMA decay, and a 10% spawn rate.
func DefaultOptions() Options {
	return Options{
		MaxParameters:    20,
		Alpha:            0.2,
		SpawnProbability: 0.1,
		ParameterLen:     8,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxParameters <= 0 {
		o.MaxParameters = 20
	}
	if o.Alpha <= 0 || o.Alpha >= 1 {
		o.Alpha = 0.2
	}
	if o.ParameterLen <= 0 {
		o.ParameterLen = 8
	}
	return o
}

// Pool holds the live set of swarm Parameters for one GENERATE phase. It is
// not safe for concurrent use - the controller that owns it drives
// evaluation synchronously, per spec.md §5.
type Pool struct {
	opts Options
	live []*Parameter
}

// NewPool returns an empty Pool configured by opts.
func NewPool(opts Options) *Pool {
	return &Pool{opts: opts.withDefaults()}
}

// Len returns the number of live parameters.
func (pl *Pool) Len() int { return len(pl.live) }

// Select returns the Parameter to bias the next candidate with, spawning a
// fresh one with probability Options.SpawnProbability (always, if the pool
// is currently empty), otherwise reusing an existing one via weighted random
// sampling skewed toward higher-scoring parameters - every live parameter
// keeps non-zero selection probability, so a temporarily unlucky parameter
// is never permanently starved.
func (pl *Pool) Select(entropy choice.Entropy) *Parameter {
	if len(pl.live) == 0 || uniformFloat(entropy) < pl.opts.SpawnProbability {
		p := newParameter(entropy, pl.opts.ParameterLen)
		pl.add(p)
		return p
	}
	return pl.weightedPick(entropy)
}

// Update folds reward (typically 1 if the candidate biased by p was useful -
// Interesting, or a new distinct valid example - 0 otherwise) into p's score
// via the pool's configured EMA.
func (pl *Pool) Update(p *Parameter, reward float64) {
	p.score = pl.opts.Alpha*p.score + (1-pl.opts.Alpha)*reward
	p.uses++
}

// Parameters returns a snapshot of the live pool, ordered by descending
// score.
func (pl *Pool) Parameters() []*Parameter {
	out := make([]*Parameter, len(pl.live))
	copy(out, pl.live)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].score > out[j-1].score; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func (pl *Pool) add(p *Parameter) {
	if len(pl.live) >= pl.opts.MaxParameters {
		pl.evictWorst()
	}
	pl.live = append(pl.live, p)
}

func (pl *Pool) evictWorst() {
	worst := 0
	for i := 1; i < len(pl.live); i++ {
		if pl.live[i].score < pl.live[worst].score {
			worst = i
		}
	}
	pl.live = append(pl.live[:worst], pl.live[worst+1:]...)
}

// scoreWeightFloor keeps every live parameter reachable by weightedPick,
// regardless of how negative its score has drifted.
const scoreWeightFloor = 0.01

func (pl *Pool) weightedPick(entropy choice.Entropy) *Parameter {
	weights := make([]float64, len(pl.live))
	var total float64
	for i, p := range pl.live {
		w := math.Exp(p.score) + scoreWeightFloor
		weights[i] = w
		total += w
	}

	r := uniformFloat(entropy) * total
	for i, w := range weights {
		if r < w {
			return pl.live[i]
		}
		r -= w
	}
	return pl.live[len(pl.live)-1]
}
