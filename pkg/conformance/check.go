// Package conformance provides the structured result-aggregation model for
// documentation conformance runs: checks grouped into suites, a runner that
// isolates each check, and reports that roll tallies up from check to suite
// to binding to the whole run.
//
// The model replaces shell exit-code plumbing: every outcome is a value
// threaded explicitly through the suite runner and the orchestrator, and
// nothing escapes past the run report.
package conformance

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/vaultsfyi/sextant/pkg/errors"
)

// CheckFunc is a single assertion. It fails by returning an error and may
// report a tolerated absence by returning Skip.
type CheckFunc func(ctx context.Context) error

// Check is one named assertion inside a suite. Checks are created at
// suite-definition time and never mutated.
type Check struct {
	Name        string
	Description string
	Fn          CheckFunc
}

// skipError marks a check outcome as skipped rather than failed. Used for
// tolerated absences, such as optional operations a binding does not expose.
type skipError struct {
	reason string
}

func (e *skipError) Error() string {
	return "skipped: " + e.reason
}

// Skip returns an error that records the check as skipped.
func Skip(reason string) error {
	return &skipError{reason: reason}
}

// Skipf returns a formatted skip error.
func Skipf(format string, args ...any) error {
	return &skipError{reason: fmt.Sprintf(format, args...)}
}

// IsSkip reports whether err marks a skipped check, and returns the reason.
func IsSkip(err error) (string, bool) {
	var skip *skipError
	if stderrors.As(err, &skip) {
		return skip.reason, true
	}
	return "", false
}

// hintError attaches a remediation hint to a failure.
type hintError struct {
	err  error
	hint string
}

func (e *hintError) Error() string { return e.err.Error() }

func (e *hintError) Unwrap() error { return e.err }

// WithHint attaches a remediation hint to an error. The hint surfaces in
// the check's result and in the final summary.
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return &hintError{err: err, hint: hint}
}

// HintOf extracts a remediation hint from an error chain, if any.
func HintOf(err error) string {
	var hinted *hintError
	if stderrors.As(err, &hinted) {
		return hinted.hint
	}
	var dep *errors.DependencyError
	if stderrors.As(err, &dep) {
		return dep.Hint
	}
	return ""
}
