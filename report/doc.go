// Package report provides engine.Reporter implementations: NopReporter (the
// zero-cost default) and LogReporter, a structured-logging implementation on
// github.com/joeycumines/logiface + github.com/joeycumines/stumpy, following
// the teacher corpus's `stumpy.L.New(stumpy.L.WithStumpy(...))` wiring.
package report
