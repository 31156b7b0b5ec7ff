package conjecture_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	conjecture "github.com/joeycumines/go-conjecture"
	"github.com/joeycumines/go-conjecture/choice"
	"github.com/joeycumines/go-conjecture/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTB records Fatalf calls instead of aborting the goroutine, so
// Given*'s failure path can be asserted on directly.
type fakeTB struct {
	name    string
	failed  bool
	message string
}

func (f *fakeTB) Helper()      {}
func (f *fakeTB) Name() string { return f.name }
func (f *fakeTB) Fatalf(format string, args ...any) {
	f.failed = true
	f.message = fmt.Sprintf(format, args...)
}

func byteStrategy(max uint64) strategy.Strategy[int] {
	return strategy.Func[int](func(p *choice.Provider) int {
		return int(p.BiasedInt(max))
	})
}

func TestGiven1_passingPropertyDoesNotFail(t *testing.T) {
	ft := &fakeTB{name: "TestGiven1_pass"}
	settings := conjecture.DefaultSettings()
	settings.MaxExamples = 30

	conjecture.Given1(ft, settings, byteStrategy(1000), func(a int) error {
		if a < 0 {
			return errors.New("must be non-negative")
		}
		return nil
	})

	assert.False(t, ft.failed)
}

func TestGiven1_falsifiablePropertyFails(t *testing.T) {
	ft := &fakeTB{name: "TestGiven1_fail"}
	settings := conjecture.DefaultSettings()
	settings.MaxExamples = 100
	settings.Seed = 7

	conjecture.Given1(ft, settings, byteStrategy(1000), func(a int) error {
		if a > 5 {
			return errors.New("too big")
		}
		return nil
	})

	assert.True(t, ft.failed)
	assert.Contains(t, ft.message, "falsified")
}

func TestGiven1_failingExplicitExampleShortCircuits(t *testing.T) {
	ft := &fakeTB{name: "TestGiven1_explicit"}
	settings := conjecture.DefaultSettings()

	conjecture.Given1(ft, settings, byteStrategy(1000), func(a int) error {
		return errors.New("never reached for generated values")
	}, 0)

	assert.True(t, ft.failed)
	assert.Contains(t, ft.message, "explicit example")
}

func TestGiven2_commutativeAdditionPasses(t *testing.T) {
	ft := &fakeTB{name: "TestGiven2_commutative"}
	settings := conjecture.DefaultSettings()
	settings.MaxExamples = 30

	conjecture.Given2(ft, settings, byteStrategy(500), byteStrategy(500), func(a, b int) error {
		if a+b != b+a {
			return fmt.Errorf("%d+%d != %d+%d", a, b, b, a)
		}
		return nil
	})

	assert.False(t, ft.failed)
}

func TestLoadProfiles_registersNamedSettings(t *testing.T) {
	path := t.TempDir() + "/profiles.yaml"
	require.NoError(t, os.WriteFile(path, []byte(`
ci:
  max_examples: 500
  derandomize: true
  suppress_health_check: ["filter_too_much"]
`), 0o644))

	require.NoError(t, conjecture.LoadProfiles(path))

	s, ok := conjecture.Profile("ci")
	require.True(t, ok)
	assert.Equal(t, 500, s.MaxExamples)
	assert.True(t, s.Derandomize)
	assert.True(t, s.SuppressHealthCheck["filter_too_much"])
}
