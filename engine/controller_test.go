package engine_test

import (
	"errors"
	"testing"

	"github.com/joeycumines/go-conjecture/choice"
	"github.com/joeycumines/go-conjecture/database"
	"github.com/joeycumines/go-conjecture/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sumBody draws two bytes and fails whenever their sum exceeds threshold -
// a minimal property used to exercise the controller end to end.
func sumBody(threshold int) engine.Body {
	return func(p *choice.Provider) error {
		a := p.DrawBits(8)
		b := p.DrawBits(8)
		if int(a)+int(b) > threshold {
			return errors.New("sum exceeded threshold")
		}
		return nil
	}
}

func TestController_findsAndShrinksFailure(t *testing.T) {
	settings := engine.DefaultSettings()
	settings.MaxExamples = 200
	settings.Seed = 1

	c := engine.New("TestSum", settings, engine.NewRunner(nil))
	failures, err := c.Run(sumBody(10))

	require.NoError(t, err)
	require.Len(t, failures, 1)
	f := failures[0]
	a, b := int(f.Candidate.Bytes[0]), int(f.Candidate.Bytes[1])
	assert.Greater(t, a+b, 10)
	assert.LessOrEqual(t, a+b, 12, "shrinking should land close to the threshold")
}

func TestController_passingPropertyReturnsNoFailures(t *testing.T) {
	settings := engine.DefaultSettings()
	settings.MaxExamples = 50
	settings.Seed = 2

	c := engine.New("TestAlwaysPasses", settings, engine.NewRunner(nil))
	failures, err := c.Run(func(p *choice.Provider) error {
		p.DrawBits(8)
		return nil
	})

	require.NoError(t, err)
	assert.Empty(t, failures)
}

func TestController_reusePhaseReplaysDatabaseEntries(t *testing.T) {
	db := database.NewInMemoryDatabase()
	// a sequence that reproduces the failure directly, stored up front
	require.NoError(t, db.Save("TestSum", []byte{200, 200}))

	settings := engine.DefaultSettings()
	settings.MaxExamples = 1
	settings.Phases = engine.PhaseReuse
	settings.Database = db

	c := engine.New("TestSum", settings, engine.NewRunner(nil))
	failures, err := c.Run(sumBody(10))

	require.NoError(t, err)
	require.Len(t, failures, 1)
}

func TestController_invalidArgumentOnNonPositiveMaxExamples(t *testing.T) {
	settings := engine.DefaultSettings()
	settings.MaxExamples = 0

	c := engine.New("TestZero", settings, engine.NewRunner(nil))
	_, err := c.Run(sumBody(10))

	var invalidArg *engine.InvalidArgument
	assert.ErrorAs(t, err, &invalidArg)
}

func TestController_unsatisfiableWhenEveryCandidateIsInvalid(t *testing.T) {
	settings := engine.DefaultSettings()
	settings.MaxExamples = 5
	settings.MaxIterations = 20
	settings.Seed = 3

	c := engine.New("TestAlwaysRejects", settings, engine.NewRunner(nil))
	_, err := c.Run(func(p *choice.Provider) error {
		p.Reject()
		return nil
	})

	var unsat *engine.Unsatisfiable
	assert.ErrorAs(t, err, &unsat)
}
