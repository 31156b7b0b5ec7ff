package choice

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_DrawBits_masksHighBits(t *testing.T) {
	p := NewProvider([]byte{0xFF, 0xFF}, nil, true)
	v := p.DrawBits(10)
	assert.LessOrEqual(t, v, uint64(1<<10-1))
	assert.Equal(t, uint64(1<<10-1), v)
}

func TestProvider_blockPartition(t *testing.T) {
	p := NewProvider([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, nil, true)
	defer p.Scope("root")()
	p.DrawBits(8)
	p.DrawBytes(3)
	p.WeightedBool(0.5)
	p.DrawBits(16)
	p.Finish(Valid)

	blocks := p.Blocks()
	require.NotEmpty(t, blocks)
	want := 0
	for i, b := range blocks {
		assert.Equal(t, want, b.Start, "block %d should start where the previous ended", i)
		assert.LessOrEqual(t, b.Start, b.End)
		want = b.End
	}
	assert.Equal(t, len(p.Bytes()), want, "blocks must partition the whole buffer")
}

func TestProvider_strictOverrun(t *testing.T) {
	p := NewProvider([]byte{1}, nil, true)
	assert.PanicsWithValue(t, OverrunError{}, func() {
		p.DrawBits(64)
	})
}

func TestProvider_nonStrictExtendsFromEntropy(t *testing.T) {
	p := NewProvider([]byte{1}, NewEntropy(42), false)
	v := p.DrawBits(64)
	assert.NotZero(t, v)
	assert.Len(t, p.Bytes(), 8)
}

func TestProvider_determinism(t *testing.T) {
	seq := []byte{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 1, 2}
	run := func() (uint64, []byte, []Block) {
		p := NewProvider(seq, nil, true)
		a := p.DrawBits(20)
		b := p.DrawBytes(4)
		p.Finish(Valid)
		return a, b, p.Blocks()
	}

	a1, b1, blk1 := run()
	a2, b2, blk2 := run()

	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	if diff := cmp.Diff(blk1, blk2); diff != "" {
		t.Errorf("replayed block structure differs (-first +second):\n%s", diff)
	}
}

func TestProvider_scopeLabelsNest(t *testing.T) {
	p := NewProvider([]byte{1, 2, 3}, nil, true)
	close1 := p.Scope("outer")
	p.DrawBits(8)
	close2 := p.Scope("inner")
	p.DrawBits(8)
	close2()
	close1()

	blocks := p.Blocks()
	require.Len(t, blocks, 2)
	assert.Len(t, blocks[0].Labels, 1)
	assert.Len(t, blocks[1].Labels, 2)
	assert.Equal(t, blocks[0].Labels[0], blocks[1].Labels[0])
}

func TestWeightedBool_extremes(t *testing.T) {
	p := NewProvider(nil, NewEntropy(1), false)
	assert.False(t, p.WeightedBool(0))
	assert.True(t, p.WeightedBool(1))
}

func TestBiasedInt_withinBounds(t *testing.T) {
	p := NewProvider(nil, NewEntropy(7), false)
	for i := 0; i < 100; i++ {
		v := p.BiasedInt(10)
		assert.LessOrEqual(t, v, uint64(10))
	}
}
