// Package swarm implements swarm testing's parameter pool: a small set of
// candidate "biasing" byte sequences, each scored by an exponential moving
// average of how often it has led to Interesting or otherwise useful
// outcomes, and selected with a weighted-random scheme that never starves a
// live parameter entirely.
//
// A Parameter's bytes are consumed as a prefix bias layered underneath a
// candidate's real choice sequence: strategies that draw from a biased
// Provider see the parameter's choices first (e.g. a reduced OneOf option
// set, or a narrower integer range), then fall through to full entropy.
// Package swarm itself has no notion of Provider - it only manages the pool
// and its scores, matching the "no strategy-specific knowledge" separation
// spec.md keeps throughout the engine.
package swarm
