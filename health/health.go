package health

import (
	"fmt"

	"github.com/joeycumines/go-conjecture/internal/window"
)

// Check tags, matching the keys engine.Settings.SuppressHealthCheck expects.
const (
	TooSlowDataGeneration = "too_slow_data_generation"
	FilterTooMuch         = "filter_too_much"
	DataTooLarge          = "data_too_large"
	ReturnValue           = "return_value"
	LargeBaseExample      = "large_base_example"
)

// Minimum attempt counts and thresholds below which a check stays quiet -
// tuned to avoid false positives on short runs, mirroring the conservative
// minimums property-based testing frameworks use for these same checks.
const (
	minAttemptsForRatioChecks = 10
	invalidRatioThreshold     = 0.5
	generationRatioThreshold  = 5.0
	largeChoiceLenBytes       = 8192
)

type (
	// Sample is a read-only snapshot handed to every check. Acc is the
	// running per-run accumulator; the remaining fields are filled in by the
	// controller from state Accumulator doesn't track.
	Sample struct {
		Acc window.Accumulator
		// BaseExampleLen is the choice sequence length of the smallest known
		// failing (Interesting) example found so far this run, or 0 if none.
		BaseExampleLen int
		// NonErrorTruthyReturns counts candidates whose test body returned a
		// non-error value that looked like it was meant to signal failure
		// (e.g. a bound `func(A) bool` adapter returning false) - a sign the
		// embedder's decorator is discarding a meaningful result instead of
		// turning it into an error.
		NonErrorTruthyReturns int
	}

	// Result reports one check's outcome.
	Result struct {
		Tag       string
		Triggered bool
		Detail    string
	}
)

// Run evaluates every check not named by suppressed, returning only the
// triggered ones.
func Run(s Sample, suppressed func(tag string) bool) []Result {
	if suppressed == nil {
		suppressed = func(string) bool { return false }
	}
	var out []Result
	for _, check := range []func(Sample) Result{
		CheckTooSlowDataGeneration,
		CheckFilterTooMuch,
		CheckDataTooLarge,
		CheckReturnValue,
		CheckLargeBaseExample,
	} {
		r := check(s)
		if r.Triggered && !suppressed(r.Tag) {
			out = append(out, r)
		}
	}
	return out
}

// CheckTooSlowDataGeneration flags a run where drawing candidates takes much
// longer than actually running the test body, which usually means a
// strategy is doing expensive work (I/O, heavy allocation) it shouldn't.
func CheckTooSlowDataGeneration(s Sample) Result {
	const tag = TooSlowDataGeneration
	if s.Acc.Attempts < minAttemptsForRatioChecks {
		return Result{Tag: tag}
	}
	ratio := s.Acc.GenerationRatio()
	if ratio <= generationRatioThreshold {
		return Result{Tag: tag}
	}
	return Result{
		Tag:       tag,
		Triggered: true,
		Detail:    fmt.Sprintf("data generation took %.1fx as long as the test body over %d attempts", ratio, s.Acc.Attempts),
	}
}

// CheckFilterTooMuch flags a run where most draws are rejected (Filter,
// Assume, or an explicit Reject), which starves GENERATE of distinct valid
// examples.
func CheckFilterTooMuch(s Sample) Result {
	const tag = FilterTooMuch
	if s.Acc.Attempts < minAttemptsForRatioChecks {
		return Result{Tag: tag}
	}
	ratio := s.Acc.InvalidRatio()
	if ratio <= invalidRatioThreshold {
		return Result{Tag: tag}
	}
	return Result{
		Tag:       tag,
		Triggered: true,
		Detail:    fmt.Sprintf("%.0f%% of %d attempts were rejected as invalid", ratio*100, s.Acc.Attempts),
	}
}

// CheckDataTooLarge flags a run whose average choice sequence length is
// implausibly large, which usually means an unbounded Collection or
// Recursive strategy is generating far bigger values than intended.
func CheckDataTooLarge(s Sample) Result {
	const tag = DataTooLarge
	if s.Acc.Attempts < minAttemptsForRatioChecks {
		return Result{Tag: tag}
	}
	avg := s.Acc.AverageChoiceLen()
	if avg <= largeChoiceLenBytes {
		return Result{Tag: tag}
	}
	return Result{
		Tag:       tag,
		Triggered: true,
		Detail:    fmt.Sprintf("average choice sequence length was %.0f bytes over %d attempts", avg, s.Acc.Attempts),
	}
}

// CheckReturnValue flags a test body whose adapter is discarding a
// meaningful non-error return instead of turning it into a failure.
func CheckReturnValue(s Sample) Result {
	const tag = ReturnValue
	if s.NonErrorTruthyReturns == 0 {
		return Result{Tag: tag}
	}
	return Result{
		Tag:       tag,
		Triggered: true,
		Detail:    fmt.Sprintf("%d candidates returned a non-error value that looked meaningful but was discarded", s.NonErrorTruthyReturns),
	}
}

// CheckLargeBaseExample flags a run whose smallest known failing example is
// itself implausibly large, which usually means the strategy can't produce
// small values at all (a missing or ineffective shrink-friendly base case).
func CheckLargeBaseExample(s Sample) Result {
	const tag = LargeBaseExample
	if s.BaseExampleLen <= largeChoiceLenBytes {
		return Result{Tag: tag}
	}
	return Result{
		Tag:       tag,
		Triggered: true,
		Detail:    fmt.Sprintf("smallest known failing example is %d bytes of choice sequence", s.BaseExampleLen),
	}
}
