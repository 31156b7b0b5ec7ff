package window

import "time"

// Accumulator tracks the running totals package health's checks need. It's a
// plain counter set - unlike Trailing, it has no sliding/expiring behavior,
// since every ratio the spec defines
// (filter_too_much, too_slow_data_generation, data_too_large) is over the
// whole GENERATE phase, not a trailing window.
type Accumulator struct {
	Attempts        int
	ValidCount      int
	InvalidCount    int
	OverrunCount    int
	InterestingCount int
	SlowCount       int
	TotalChoiceLen  int64
	GenerationTime  time.Duration
	TestTime        time.Duration
}

// Record folds one candidate's outcome into the running totals.
func (a *Accumulator) Record(choiceLen int, slow bool, generation, test time.Duration) {
	a.Attempts++
	a.TotalChoiceLen += int64(choiceLen)
	a.GenerationTime += generation
	a.TestTime += test
	if slow {
		a.SlowCount++
	}
}

// InvalidRatio returns InvalidCount/Attempts, or 0 if no attempts yet.
func (a *Accumulator) InvalidRatio() float64 {
	if a.Attempts == 0 {
		return 0
	}
	return float64(a.InvalidCount) / float64(a.Attempts)
}

// GenerationRatio returns GenerationTime/TestTime, or 0 if TestTime is 0.
func (a *Accumulator) GenerationRatio() float64 {
	if a.TestTime == 0 {
		return 0
	}
	return float64(a.GenerationTime) / float64(a.TestTime)
}

// AverageChoiceLen returns TotalChoiceLen/Attempts, or 0 if no attempts yet.
func (a *Accumulator) AverageChoiceLen() float64 {
	if a.Attempts == 0 {
		return 0
	}
	return float64(a.TotalChoiceLen) / float64(a.Attempts)
}
