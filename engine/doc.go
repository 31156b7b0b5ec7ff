// Package engine drives one test's candidate evaluations: it owns the
// executor hook, the panic/recover-based outcome classification, and the
// REUSE/GENERATE/SHRINK/DONE phase controller. It has no notion of strategy
// combinators (package strategy) or shrink passes (package shrink) beyond the
// interfaces it needs to drive them - this package is the coordinator, not
// the implementation of any one phase.
package engine
