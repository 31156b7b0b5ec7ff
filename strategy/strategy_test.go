package strategy_test

import (
	"testing"

	"github.com/joeycumines/go-conjecture/choice"
	"github.com/joeycumines/go-conjecture/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draw[T any](t *testing.T, s strategy.Strategy[T], seq []byte) T {
	t.Helper()
	p := choice.NewProvider(seq, choice.NewEntropy(1), seq == nil)
	v := s.DoDraw(p)
	p.Finish(choice.Valid)
	return v
}

func TestJust(t *testing.T) {
	s := strategy.Just(42)
	assert.Equal(t, 42, draw(t, s, []byte{}))
}

func TestMap(t *testing.T) {
	base := strategy.Func[int](func(p *choice.Provider) int { return int(p.DrawBits(8)) })
	s := strategy.Map(base, func(v int) string { return "x" })
	assert.Equal(t, "x", draw(t, s, []byte{5}))
}

func TestFilter_rejectsAfterRetries(t *testing.T) {
	base := strategy.Func[int](func(p *choice.Provider) int { return int(p.DrawBits(8)) })
	s := strategy.Filter(base, func(int) bool { return false }, 2)

	p := choice.NewProvider([]byte{1, 2, 3}, nil, true)
	assert.PanicsWithValue(t, choice.RejectError{}, func() {
		s.DoDraw(p)
	})
}

func TestFlatMap_secondDrawFollowsFirst(t *testing.T) {
	first := strategy.Func[int](func(p *choice.Provider) int { return int(p.DrawBits(8)) })
	s := strategy.FlatMap(first, func(n int) strategy.Strategy[[]byte] {
		return strategy.Func[[]byte](func(p *choice.Provider) []byte { return p.DrawBytes(n) })
	})

	p := choice.NewProvider([]byte{2, 0xAA, 0xBB}, nil, true)
	got := s.DoDraw(p)
	assert.Equal(t, []byte{0xAA, 0xBB}, got)
}

func TestOneOf_prefersEarlierIndexWhenReplayingZero(t *testing.T) {
	opts := []strategy.Strategy[string]{
		strategy.Just("a"),
		strategy.Just("b"),
		strategy.Just("c"),
	}
	s := strategy.OneOf(opts...)
	p := choice.NewProvider([]byte{0, 0, 0, 0}, nil, true)
	assert.Equal(t, "a", s.DoDraw(p))
}

func TestTuple2_ordersComponents(t *testing.T) {
	a := strategy.Func[int](func(p *choice.Provider) int { return int(p.DrawBits(8)) })
	b := strategy.Func[int](func(p *choice.Provider) int { return int(p.DrawBits(8)) })
	s := strategy.Tuple2(a, b)

	p := choice.NewProvider([]byte{1, 2}, nil, true)
	got := s.DoDraw(p)
	assert.Equal(t, strategy.Pair[int, int]{A: 1, B: 2}, got)
}

func TestSlice_respectsMinMax(t *testing.T) {
	elem := strategy.Func[int](func(p *choice.Provider) int { return int(p.DrawBits(8)) })
	s := strategy.Slice(elem, strategy.SliceOptions{MinLen: 2, MaxLen: 3, Average: 2})

	p := choice.NewProvider(nil, choice.NewEntropy(99), false)
	got := s.DoDraw(p)
	require.GreaterOrEqual(t, len(got), 2)
	require.LessOrEqual(t, len(got), 3)
}

func TestSlice_uniqueAvoidsDuplicateKeys(t *testing.T) {
	elem := strategy.SampledFrom(1, 2)
	s := strategy.Slice(elem, strategy.SliceOptions{
		MinLen: 0, MaxLen: 2, Average: 2,
		Unique: true,
		Key:    func(v any) any { return v },
	})

	p := choice.NewProvider(nil, choice.NewEntropy(3), false)
	got := s.DoDraw(p)
	seen := map[int]bool{}
	for _, v := range got {
		assert.False(t, seen[v], "unexpected duplicate %v in %v", v, got)
		seen[v] = true
	}
}

func TestRecursive_terminatesWithinBudget(t *testing.T) {
	type node struct {
		leaf     bool
		children []node
	}
	leaf := strategy.Just(node{leaf: true})
	var s strategy.Strategy[node]
	s = strategy.Recursive(leaf, func(child strategy.Strategy[node]) strategy.Strategy[node] {
		return strategy.Map(child, func(c node) node {
			return node{children: []node{c}}
		})
	}, strategy.RecursiveOptions{MaxLeaves: 3})

	p := choice.NewProvider(nil, choice.NewEntropy(5), false)

	depth := 0
	v := s.DoDraw(p)
	for !v.leaf {
		depth++
		require.Len(t, v.children, 1)
		v = v.children[0]
	}
	assert.LessOrEqual(t, depth, 3)
}
