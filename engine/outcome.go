package engine

import "github.com/joeycumines/go-conjecture/choice"

type (
	// Body is one candidate's test function: it draws whatever it needs from
	// p (directly, or via strategy.Strategy.DoDraw) and returns a non-nil
	// error to mark the candidate Interesting. Rejection and overrun are
	// signalled by panicking with choice.RejectError / choice.OverrunError
	// (normally via p.Reject, or a strict Provider running dry), not by a
	// return value - Body itself never needs to distinguish them.
	Body func(p *choice.Provider) error

	// Executor wraps one candidate evaluation. The default Executor (used
	// when Settings.Executor is nil) simply calls run. An embedder may
	// substitute its own, e.g. to recover from a panic escaping Go's test
	// harness itself, or to add per-candidate instrumentation - matching the
	// Design Notes' `Fn(&dyn Fn() -> Option<Value>) -> Option<Value>` executor
	// hook shape.
	Executor func(run func() Outcome) Outcome

	// Outcome is the fully classified result of one candidate evaluation.
	Outcome struct {
		Status    choice.Status
		Err       error
		Panic     any
		Events    []string
		ChoiceLen int
		Blocks    []choice.Block
		Bytes     []byte
	}
)

// defaultExecutor calls run directly.
func defaultExecutor(run func() Outcome) Outcome { return run() }

// Runner evaluates one candidate: constructing the Outcome from a Body's
// return value, or from a recovered panic, via the configured Executor.
type Runner struct {
	executor Executor
}

// NewRunner returns a Runner using executor, or the default (direct-call)
// executor if executor is nil.
func NewRunner(executor Executor) *Runner {
	if executor == nil {
		executor = defaultExecutor
	}
	return &Runner{executor: executor}
}

// Evaluate runs body against p through the configured Executor, classifying
// the result. p must not have been finished already.
func (r *Runner) Evaluate(p *choice.Provider, body Body) Outcome {
	return r.executor(func() Outcome { return evaluate(p, body) })
}

func evaluate(p *choice.Provider, body Body) (outcome Outcome) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		switch rec.(type) {
		case choice.OverrunError:
			p.Finish(choice.Overrun)
			outcome = Outcome{Status: choice.Overrun}
		case choice.RejectError:
			p.Finish(choice.Invalid)
			outcome = Outcome{Status: choice.Invalid, Events: p.Events()}
		default:
			p.Finish(choice.Interesting)
			outcome = Outcome{Status: choice.Interesting, Panic: rec, Events: p.Events()}
		}
		outcome.ChoiceLen = len(p.Bytes())
		outcome.Blocks = p.Blocks()
		outcome.Bytes = p.Bytes()
	}()

	err := body(p)
	status := choice.Valid
	if err != nil {
		status = choice.Interesting
	}
	p.Finish(status)
	return Outcome{
		Status:    status,
		Err:       err,
		Events:    p.Events(),
		ChoiceLen: len(p.Bytes()),
		Blocks:    p.Blocks(),
		Bytes:     p.Bytes(),
	}
}
