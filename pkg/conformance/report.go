package conformance

import (
	"fmt"
	"strings"
	"time"

	"github.com/agentstation/utc"
	"github.com/google/uuid"
)

// Exit codes for a conformance run.
const (
	// ExitOK means every binding's every suite passed.
	ExitOK = 0
	// ExitFailures means at least one check or suite failed.
	ExitFailures = 1
	// ExitFatal means a hard precondition (a language runtime) was missing
	// and the run could not meaningfully proceed for that binding.
	ExitFatal = 2
)

// SuiteReport is the outcome of one suite for one binding.
type SuiteReport struct {
	Suite    string        `json:"suite"`
	Binding  string        `json:"binding"`
	Results  []Result      `json:"results"`
	Tally    Tally         `json:"tally"`
	Duration time.Duration `json:"duration_ns"`
}

// Passed reports whether no check in the suite failed.
func (s SuiteReport) Passed() bool {
	return s.Tally.AllPassed()
}

// RuntimeStatus records the detection result for one language runtime
// requirement.
type RuntimeStatus struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
	Path      string `json:"path,omitempty"`
}

// BindingReport aggregates one binding's run: detected runtimes, any
// dependency-install warning, and every suite outcome.
type BindingReport struct {
	Binding        string          `json:"binding"`
	Runtimes       []RuntimeStatus `json:"runtimes,omitempty"`
	InstallWarning string          `json:"install_warning,omitempty"`
	Suites         []SuiteReport   `json:"suites"`
	Fatal          string          `json:"fatal,omitempty"`
}

// Tally rolls up every suite's tally.
func (b BindingReport) Tally() Tally {
	var tally Tally
	for _, suite := range b.Suites {
		tally.Merge(suite.Tally)
	}
	return tally
}

// Passed reports whether the binding ran without fatals and every suite
// passed.
func (b BindingReport) Passed() bool {
	if b.Fatal != "" {
		return false
	}
	for _, suite := range b.Suites {
		if !suite.Passed() {
			return false
		}
	}
	return true
}

// SuitesPassed counts the suites with no failed checks.
func (b BindingReport) SuitesPassed() int {
	passed := 0
	for _, suite := range b.Suites {
		if suite.Passed() {
			passed++
		}
	}
	return passed
}

// RunReport is the structured outcome of a whole conformance run across
// every binding. It is the only thing the orchestrator lets escape.
type RunReport struct {
	ID         string          `json:"id"`
	StartedAt  utc.Time        `json:"started_at"`
	FinishedAt utc.Time        `json:"finished_at"`
	Bindings   []BindingReport `json:"bindings"`
}

// NewRunReport creates a run report with a fresh run id and start time.
func NewRunReport() *RunReport {
	return &RunReport{
		ID:        uuid.New().String(),
		StartedAt: utc.Now(),
	}
}

// Add appends one binding's report.
func (r *RunReport) Add(binding BindingReport) {
	r.Bindings = append(r.Bindings, binding)
}

// Finish stamps the completion time.
func (r *RunReport) Finish() {
	r.FinishedAt = utc.Now()
}

// Tally rolls up every binding's tally.
func (r *RunReport) Tally() Tally {
	var tally Tally
	for _, binding := range r.Bindings {
		tally.Merge(binding.Tally())
	}
	return tally
}

// Passed reports whether every binding passed.
func (r *RunReport) Passed() bool {
	for _, binding := range r.Bindings {
		if !binding.Passed() {
			return false
		}
	}
	return true
}

// ExitCode maps the run outcome onto the documented process exit status:
// 0 when everything passed, 2 when a hard precondition failed, 1 for any
// other failure.
func (r *RunReport) ExitCode() int {
	code := ExitOK
	for _, binding := range r.Bindings {
		if binding.Fatal != "" {
			return ExitFatal
		}
		if !binding.Passed() {
			code = ExitFailures
		}
	}
	return code
}

// Summary renders the human-readable pass/fail matrix: one line per suite
// grouped by binding, then per-binding and aggregate tallies.
func (r *RunReport) Summary() string {
	var b strings.Builder

	for _, binding := range r.Bindings {
		tally := binding.Tally()
		fmt.Fprintf(&b, "%s: %d/%d suites passed, %s\n",
			binding.Binding, binding.SuitesPassed(), len(binding.Suites), tally.String())
		for _, suite := range binding.Suites {
			status := "PASS"
			if !suite.Passed() {
				status = "FAIL"
			}
			fmt.Fprintf(&b, "  [%s] %-12s %s\n", status, suite.Suite, suite.Tally.String())
		}
		if binding.InstallWarning != "" {
			fmt.Fprintf(&b, "  warning: %s\n", binding.InstallWarning)
		}
		if binding.Fatal != "" {
			fmt.Fprintf(&b, "  fatal: %s\n", binding.Fatal)
		}
	}

	total := r.Tally()
	fmt.Fprintf(&b, "total: %s\n", total.String())

	return b.String()
}

// FailureHints collects the distinct remediation hints attached to failed
// checks, in first-seen order.
func (r *RunReport) FailureHints() []string {
	var hints []string
	seen := make(map[string]bool)
	for _, binding := range r.Bindings {
		for _, suite := range binding.Suites {
			for _, result := range suite.Results {
				if result.Outcome != OutcomeFail || result.Hint == "" || seen[result.Hint] {
					continue
				}
				seen[result.Hint] = true
				hints = append(hints, result.Hint)
			}
		}
	}
	return hints
}
