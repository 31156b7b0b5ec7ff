package engine_test

import (
	"errors"
	"testing"

	"github.com/joeycumines/go-conjecture/choice"
	"github.com/joeycumines/go-conjecture/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, prefix []byte) *choice.Provider {
	t.Helper()
	return choice.NewProvider(prefix, choice.NewEntropy(1), false)
}

func TestRunner_valid(t *testing.T) {
	r := engine.NewRunner(nil)
	p := newProvider(t, nil)

	o := r.Evaluate(p, func(p *choice.Provider) error {
		p.DrawBits(8)
		return nil
	})

	assert.Equal(t, choice.Valid, o.Status)
	assert.NoError(t, o.Err)
	assert.Equal(t, 1, o.ChoiceLen)
}

func TestRunner_interestingFromError(t *testing.T) {
	r := engine.NewRunner(nil)
	p := newProvider(t, nil)
	wantErr := errors.New("boom")

	o := r.Evaluate(p, func(p *choice.Provider) error { return wantErr })

	assert.Equal(t, choice.Interesting, o.Status)
	assert.Equal(t, wantErr, o.Err)
	assert.Equal(t, "error:*errors.errorString:boom", engine.BugKey(o))
}

func TestRunner_interestingFromPanic(t *testing.T) {
	r := engine.NewRunner(nil)
	p := newProvider(t, nil)

	o := r.Evaluate(p, func(p *choice.Provider) error {
		panic("unexpected")
	})

	assert.Equal(t, choice.Interesting, o.Status)
	require.NotNil(t, o.Panic)
	assert.Equal(t, "unexpected", o.Panic)
}

func TestRunner_rejectYieldsInvalid(t *testing.T) {
	r := engine.NewRunner(nil)
	p := newProvider(t, nil)

	o := r.Evaluate(p, func(p *choice.Provider) error {
		p.Reject()
		return nil
	})

	assert.Equal(t, choice.Invalid, o.Status)
}

func TestRunner_strictOverrunYieldsOverrun(t *testing.T) {
	r := engine.NewRunner(nil)
	p := choice.NewProvider([]byte{1}, nil, true)

	o := r.Evaluate(p, func(p *choice.Provider) error {
		p.DrawBits(8)
		p.DrawBits(8)
		return nil
	})

	assert.Equal(t, choice.Overrun, o.Status)
}

func TestRunner_customExecutorWraps(t *testing.T) {
	var wrapped bool
	r := engine.NewRunner(func(run func() engine.Outcome) engine.Outcome {
		wrapped = true
		return run()
	})
	p := newProvider(t, nil)

	o := r.Evaluate(p, func(p *choice.Provider) error { return nil })

	assert.True(t, wrapped)
	assert.Equal(t, choice.Valid, o.Status)
}
