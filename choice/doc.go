// Package choice implements the choice sequence and data provider at the
// base of the engine: a finite byte sequence, consumed positionally by a
// small kernel of primitive draws, with block and label bookkeeping the
// shrinker later exploits.
//
// Every higher-level strategy combinator is defined in terms of the
// primitives in this package; choice itself has no notion of strategies,
// values, or test outcomes.
package choice
