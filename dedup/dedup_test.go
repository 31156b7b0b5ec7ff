package dedup_test

import (
	"testing"

	"github.com/joeycumines/go-conjecture/dedup"
	"github.com/stretchr/testify/assert"
)

func TestLedger_smallAndLargeSequences(t *testing.T) {
	l := dedup.NewLedger()

	small := []byte{1, 2, 3}
	assert.False(t, l.SeenOrRecord(small))
	assert.True(t, l.SeenOrRecord(small))

	large := make([]byte, 32)
	for i := range large {
		large[i] = byte(i)
	}
	assert.False(t, l.SeenOrRecord(large))
	assert.True(t, l.SeenOrRecord(large))

	assert.Equal(t, 2, l.Len())
}

func TestTree_saturationIsConservative(t *testing.T) {
	tr := dedup.NewTree()

	assert.False(t, tr.Saturated([]byte{1, 2, 3}), "unexplored prefix must not read as saturated")

	tr.MarkDead([]byte{1, 2})
	assert.True(t, tr.Saturated([]byte{1, 2}))
	assert.False(t, tr.Saturated([]byte{1, 3}), "sibling prefix must remain unaffected")
	assert.False(t, tr.Saturated([]byte{1}), "ancestor must not be dead until fully explored")
}

func TestTree_bubblesSaturationWhenFullyExplored(t *testing.T) {
	tr := dedup.NewTree()
	for b := 0; b < 256; b++ {
		tr.MarkDead([]byte{byte(b)})
	}
	assert.True(t, tr.Saturated(nil), "root should be dead once every byte value is dead")
}
