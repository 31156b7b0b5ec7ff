package conjecture

import (
	"encoding/base64"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/joeycumines/go-conjecture/choice"
	"github.com/joeycumines/go-conjecture/engine"
	"github.com/joeycumines/go-conjecture/strategy"
)

// TB is the slice of *testing.T the engine actually needs - small
// enough that a caller can satisfy it from any test framework's own
// handle, not just the standard library's.
type TB interface {
	Helper()
	Name() string
	Fatalf(format string, args ...any)
}

// run drives id through settings against body, reporting any failure
// (or controller-level error) via t.Fatalf. It's the shared tail of
// every Given* decorator.
func run(t TB, settings Settings, id string, body engine.Body) {
	t.Helper()

	c := engine.New(id, settings, engine.NewRunner(nil))
	failures, err := c.Run(body)
	if err != nil {
		t.Fatalf("conjecture: %v", err)
		return
	}
	if len(failures) == 0 {
		return
	}

	f := failures[0]
	msg := fmt.Sprintf("conjecture: falsified %q after shrinking, with %s", f.Key, spew.Sdump(f.Candidate.Bytes))
	if settings.PrintBlob {
		msg += "\nblob: " + base64.StdEncoding.EncodeToString(f.Candidate.Bytes)
	}
	if f.Outcome.Err != nil {
		msg += "\nerror: " + f.Outcome.Err.Error()
	}
	t.Fatalf("%s", msg)
}

// Given1 runs prop against values drawn from sa, per spec.md §6.2-§6.3.
// Any examples are run first, in order; a failing explicit example
// short-circuits the engine entirely.
func Given1[A any](t TB, settings Settings, sa strategy.Strategy[A], prop func(A) error, examples ...A) {
	t.Helper()
	for _, ex := range examples {
		if err := prop(ex); err != nil {
			t.Fatalf("conjecture: explicit example %+v failed: %v", ex, err)
			return
		}
	}
	run(t, settings, t.Name(), func(p *choice.Provider) error {
		return prop(sa.DoDraw(p))
	})
}

// Given2 is Given1 for a two-argument property.
func Given2[A, B any](t TB, settings Settings, sa strategy.Strategy[A], sb strategy.Strategy[B], prop func(A, B) error, examples ...strategy.Pair[A, B]) {
	t.Helper()
	for _, ex := range examples {
		if err := prop(ex.A, ex.B); err != nil {
			t.Fatalf("conjecture: explicit example %+v failed: %v", ex, err)
			return
		}
	}
	run(t, settings, t.Name(), func(p *choice.Provider) error {
		return prop(sa.DoDraw(p), sb.DoDraw(p))
	})
}

// Given3 is Given1 for a three-argument property.
func Given3[A, B, C any](t TB, settings Settings, sa strategy.Strategy[A], sb strategy.Strategy[B], sc strategy.Strategy[C], prop func(A, B, C) error, examples ...strategy.Triple[A, B, C]) {
	t.Helper()
	for _, ex := range examples {
		if err := prop(ex.A, ex.B, ex.C); err != nil {
			t.Fatalf("conjecture: explicit example %+v failed: %v", ex, err)
			return
		}
	}
	run(t, settings, t.Name(), func(p *choice.Provider) error {
		return prop(sa.DoDraw(p), sb.DoDraw(p), sc.DoDraw(p))
	})
}

// Given4 is Given1 for a four-argument property.
func Given4[A, B, C, D any](t TB, settings Settings, sa strategy.Strategy[A], sb strategy.Strategy[B], sc strategy.Strategy[C], sd strategy.Strategy[D], prop func(A, B, C, D) error, examples ...strategy.Quad[A, B, C, D]) {
	t.Helper()
	for _, ex := range examples {
		if err := prop(ex.A, ex.B, ex.C, ex.D); err != nil {
			t.Fatalf("conjecture: explicit example %+v failed: %v", ex, err)
			return
		}
	}
	run(t, settings, t.Name(), func(p *choice.Provider) error {
		return prop(sa.DoDraw(p), sb.DoDraw(p), sc.DoDraw(p), sd.DoDraw(p))
	})
}

// GivenRaw is the escape hatch for callers that already have an
// engine.Body (e.g. a hand-assembled tuple of more than four
// strategies, composed via strategy.Tuple2-of-Tuple2 nesting).
func GivenRaw(t TB, settings Settings, body engine.Body) {
	t.Helper()
	run(t, settings, t.Name(), body)
}
