// Package health implements the five end-of-generation health checks
// spec.md §4.7 defines, as pure functions over a Sample snapshot built from
// internal/window's running Accumulator. Each check is independently
// suppressible by tag (engine.Settings.SuppressHealthCheck), and none of
// them mutate state - Run just reports which, if any, tripped.
package health
