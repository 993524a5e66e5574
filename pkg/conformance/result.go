package conformance

import (
	"fmt"
	"time"
)

// Outcome classifies a single check result.
type Outcome string

// Check outcomes.
const (
	OutcomePass Outcome = "pass"
	OutcomeFail Outcome = "fail"
	OutcomeSkip Outcome = "skip"
)

// Result records the outcome of one check.
type Result struct {
	Name    string        `json:"name"`
	Outcome Outcome       `json:"outcome"`
	Detail  string        `json:"detail,omitempty"`
	Hint    string        `json:"hint,omitempty"`
	Elapsed time.Duration `json:"elapsed_ns,omitempty"`
}

// Tally counts check outcomes. The invariant Passed + Failed + Skipped ==
// Total holds after every Record call.
type Tally struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// Record adds one outcome to the tally.
func (t *Tally) Record(outcome Outcome) {
	t.Total++
	switch outcome {
	case OutcomePass:
		t.Passed++
	case OutcomeFail:
		t.Failed++
	case OutcomeSkip:
		t.Skipped++
	}
}

// Merge folds another tally into this one.
func (t *Tally) Merge(other Tally) {
	t.Passed += other.Passed
	t.Failed += other.Failed
	t.Skipped += other.Skipped
	t.Total += other.Total
}

// AllPassed reports whether no check failed. Skips are tolerated absences
// and do not count against success.
func (t Tally) AllPassed() bool {
	return t.Failed == 0
}

// String renders the tally as "passed/total" with a skip note when present.
func (t Tally) String() string {
	if t.Skipped > 0 {
		return fmt.Sprintf("%d/%d passed (%d skipped)", t.Passed, t.Total, t.Skipped)
	}
	return fmt.Sprintf("%d/%d passed", t.Passed, t.Total)
}
