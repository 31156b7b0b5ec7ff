package engine

import "fmt"

type (
	// InvalidArgument reports a programmer error in how a strategy or
	// Settings was constructed - not a test failure.
	InvalidArgument struct {
		Message string
		Cause   error
	}

	// Unsatisfiable reports that GENERATE exhausted its iteration budget
	// without finding enough distinct valid examples, usually because a
	// Filter or Assume rejects almost everything.
	Unsatisfiable struct {
		Attempts int
		Valid    int
	}

	// HealthCheckFailed reports that one of package health's checks tripped;
	// Tag matches the name Settings.SuppressHealthCheck expects.
	HealthCheckFailed struct {
		Tag    string
		Detail string
	}

	// FlakyTest reports that the same choice sequence produced two different
	// outcomes on replay - the test body (or a strategy) is not
	// deterministic, which breaks the shrinker's core assumption.
	FlakyTest struct {
		Key             string
		First, Second   Outcome
	}

	// TestSkipped reports that the test body itself requested a skip (via
	// whatever embedder-specific convention maps onto it); the controller
	// treats it as neither pass nor fail.
	TestSkipped struct {
		Reason string
	}
)

func (e *InvalidArgument) Error() string {
	if e.Message == "" {
		return "engine: invalid argument"
	}
	return "engine: invalid argument: " + e.Message
}
func (e *InvalidArgument) Unwrap() error { return e.Cause }

func (e *Unsatisfiable) Error() string {
	return fmt.Sprintf("engine: unsatisfiable: %d valid of %d attempts", e.Valid, e.Attempts)
}

func (e *HealthCheckFailed) Error() string {
	return fmt.Sprintf("engine: health check failed (%s): %s", e.Tag, e.Detail)
}

func (e *FlakyTest) Error() string {
	return fmt.Sprintf("engine: flaky test: replaying %s produced a different outcome", e.Key)
}

func (e *TestSkipped) Error() string {
	if e.Reason == "" {
		return "engine: test skipped"
	}
	return "engine: test skipped: " + e.Reason
}
