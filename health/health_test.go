package health_test

import (
	"testing"

	"github.com/joeycumines/go-conjecture/health"
	"github.com/joeycumines/go-conjecture/internal/window"
	"github.com/stretchr/testify/assert"
)

func TestRun_suppressesNamedChecks(t *testing.T) {
	var acc window.Accumulator
	for i := 0; i < 20; i++ {
		acc.InvalidCount++
		acc.Record(10, false, 0, 0)
	}

	results := health.Run(health.Sample{Acc: acc}, func(tag string) bool {
		return tag == health.FilterTooMuch
	})

	for _, r := range results {
		assert.NotEqual(t, health.FilterTooMuch, r.Tag)
	}
}

func TestCheckFilterTooMuch_triggersPastThreshold(t *testing.T) {
	var acc window.Accumulator
	for i := 0; i < 20; i++ {
		acc.InvalidCount++
		acc.Record(10, false, 0, 0)
	}

	r := health.CheckFilterTooMuch(health.Sample{Acc: acc})
	assert.True(t, r.Triggered)
}

func TestCheckFilterTooMuch_quietBelowMinimumAttempts(t *testing.T) {
	var acc window.Accumulator
	acc.InvalidCount = 2
	acc.Record(10, false, 0, 0)
	acc.Record(10, false, 0, 0)

	r := health.CheckFilterTooMuch(health.Sample{Acc: acc})
	assert.False(t, r.Triggered)
}

func TestCheckLargeBaseExample_triggersOnBloatedMinimal(t *testing.T) {
	r := health.CheckLargeBaseExample(health.Sample{BaseExampleLen: 1 << 20})
	assert.True(t, r.Triggered)
}

func TestCheckReturnValue_triggersOnDiscardedResults(t *testing.T) {
	r := health.CheckReturnValue(health.Sample{NonErrorTruthyReturns: 3})
	assert.True(t, r.Triggered)
	assert.Contains(t, r.Detail, "3 candidates")
}
