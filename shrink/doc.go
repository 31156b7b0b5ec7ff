// Package shrink reduces an Interesting choice sequence to a local minimum
// under shortlex order, without any knowledge of the strategy that produced
// it - it operates only on raw bytes and the choice.Block structure the
// provider recorded while replaying them (spec.md §1, §4.8).
//
// Eight declarative passes each run to their own fixpoint before the driver
// moves to the next; the whole pass list repeats until a full cycle makes no
// further progress, at which point a bounded random perturbation is tried to
// escape a local minimum before giving up (spec.md §4.8.3).
package shrink
