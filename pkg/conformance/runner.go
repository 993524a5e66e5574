package conformance

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Runner executes suites sequentially with per-check isolation: a failing
// or panicking check is recorded and its siblings still run, so one broken
// example never masks the rest.
type Runner struct {
	logger zerolog.Logger
}

// NewRunner creates a runner that logs check progress to the given logger.
func NewRunner(logger zerolog.Logger) *Runner {
	return &Runner{logger: logger}
}

// RunSuite executes every check in the suite in declared order and returns
// the suite's report.
func (r *Runner) RunSuite(ctx context.Context, binding string, suite Suite) SuiteReport {
	report := SuiteReport{
		Suite:   suite.Name,
		Binding: binding,
		Results: make([]Result, 0, len(suite.Checks)),
	}

	start := time.Now()
	for _, check := range suite.Checks {
		result := r.runCheck(ctx, check)
		report.Tally.Record(result.Outcome)
		report.Results = append(report.Results, result)

		event := r.logger.Debug()
		if result.Outcome == OutcomeFail {
			event = r.logger.Warn()
		}
		event.
			Str("binding", binding).
			Str("suite", suite.Name).
			Str("check", check.Name).
			Str("outcome", string(result.Outcome)).
			Str("detail", result.Detail).
			Msg("check finished")
	}
	report.Duration = time.Since(start)

	return report
}

// RunSuites executes suites in declared order and returns one report per
// suite. A failing suite does not stop the ones after it.
func (r *Runner) RunSuites(ctx context.Context, binding string, suites []Suite) []SuiteReport {
	reports := make([]SuiteReport, 0, len(suites))
	for _, suite := range suites {
		reports = append(reports, r.RunSuite(ctx, binding, suite))
	}
	return reports
}

// runCheck executes one check, converting panics and errors into a Result.
func (r *Runner) runCheck(ctx context.Context, check Check) (result Result) {
	result = Result{Name: check.Name}
	start := time.Now()

	defer func() {
		result.Elapsed = time.Since(start)
		if recovered := recover(); recovered != nil {
			result.Outcome = OutcomeFail
			result.Detail = fmt.Sprintf("panic: %v", recovered)
		}
	}()

	err := check.Fn(ctx)
	switch {
	case err == nil:
		result.Outcome = OutcomePass
	default:
		if reason, skipped := IsSkip(err); skipped {
			result.Outcome = OutcomeSkip
			result.Detail = reason
			return result
		}
		result.Outcome = OutcomeFail
		result.Detail = err.Error()
		result.Hint = HintOf(err)
	}

	return result
}
