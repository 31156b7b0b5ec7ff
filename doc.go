// Package conjecture is the embedder-facing entry point: it wires
// package strategy's combinators and package engine's Controller into
// decorators a Go test function can call directly, following spec.md
// §6.1-§6.4 (the parts explicitly left to "the embedding framework").
//
// A property test is written as:
//
//	func TestAdditionCommutes(t *testing.T) {
//		conjecture.Given2(t, conjecture.DefaultSettings(),
//			ints.Between(-1000, 1000), ints.Between(-1000, 1000),
//			func(a, b int) error {
//				if a+b != b+a {
//					return fmt.Errorf("%d+%d != %d+%d", a, b, b, a)
//				}
//				return nil
//			},
//		)
//	}
//
// Concrete domain strategies (bounded integers, text, collections) are
// out of scope here, per spec.md §1 - only the contract (package
// strategy) and this thin decorator layer are provided. ints.Between in
// the example stands for such an embedder-supplied strategy; this module
// does not provide it.
package conjecture
