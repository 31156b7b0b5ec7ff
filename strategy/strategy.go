// Package strategy provides the strategy contract and the kernel of
// combinators every higher-level (domain-specific) strategy is built from.
//
// A Strategy[T] is a parser of a choice.Provider into a value of type T; it
// has no notion of test outcomes (see package engine) or shrinking (see
// package shrink) - it only ever draws.
package strategy

import "github.com/joeycumines/go-conjecture/choice"

type (
	// Strategy parses a choice.Provider into a value. Implementations may
	// call other strategies' DoDraw recursively, open a labeled scope via
	// p.Scope, and call p.Reject to mark the evaluation INVALID.
	Strategy[T any] interface {
		DoDraw(p *choice.Provider) T
	}

	// Func implements Strategy via a plain function, mirroring the teacher
	// corpus's "named function type implements single-method interface"
	// idiom (e.g. logiface.ModifierFunc, logiface.WriterFunc).
	Func[T any] func(p *choice.Provider) T

	// Validatable is an optional capability: strategies that can detect
	// invalid construction arguments eagerly (but still only raise at first
	// draw, per the strategy contract) implement this to let Validate run
	// the check without a live Provider.
	Validatable interface {
		Validate() error
	}

	// EmptyAware is an optional capability: a conservative "this strategy
	// provably produces no values" predicate, read via IsEmpty. The
	// combinators in this package do not consult it.
	EmptyAware interface {
		IsEmpty() bool
	}
)

// DoDraw implements Strategy.
func (f Func[T]) DoDraw(p *choice.Provider) T { return f(p) }

// Validate runs s's Validate method, if it implements Validatable, returning
// nil otherwise.
func Validate[T any](s Strategy[T]) error {
	if v, ok := s.(Validatable); ok {
		return v.Validate()
	}
	return nil
}

// IsEmpty reports s's IsEmpty, if it implements EmptyAware, false otherwise.
func IsEmpty[T any](s Strategy[T]) bool {
	if v, ok := s.(EmptyAware); ok {
		return v.IsEmpty()
	}
	return false
}

// Just returns a strategy that consumes no bytes and always yields v.
func Just[T any](v T) Strategy[T] {
	return Func[T](func(*choice.Provider) T { return v })
}
