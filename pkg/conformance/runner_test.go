package conformance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsfyi/sextant/pkg/errors"
	"github.com/vaultsfyi/sextant/pkg/logging"
)

func pass(_ context.Context) error { return nil }

func fail(_ context.Context) error { return errors.New("boom") }

func TestRunSuiteTally(t *testing.T) {
	runner := NewRunner(logging.Nop)
	suite := Suite{
		Name: "surface",
		Checks: []Check{
			{Name: "a", Fn: pass},
			{Name: "b", Fn: fail},
			{Name: "c", Fn: func(_ context.Context) error { return Skip("optional") }},
			{Name: "d", Fn: pass},
		},
	}

	report := runner.RunSuite(context.Background(), "go", suite)

	assert.Equal(t, Tally{Passed: 2, Failed: 1, Skipped: 1, Total: 4}, report.Tally)
	assert.False(t, report.Passed())
	require.Len(t, report.Results, 4)
	assert.Equal(t, OutcomeFail, report.Results[1].Outcome)
	assert.Equal(t, "boom", report.Results[1].Detail)
	assert.Equal(t, OutcomeSkip, report.Results[2].Outcome)
	assert.Equal(t, "optional", report.Results[2].Detail)
}

func TestPanickingCheckIsIsolated(t *testing.T) {
	runner := NewRunner(logging.Nop)
	suite := Suite{
		Name: "parameters",
		Checks: []Check{
			{Name: "explodes", Fn: func(_ context.Context) error { panic("nil map write") }},
			{Name: "survives", Fn: pass},
		},
	}

	report := runner.RunSuite(context.Background(), "go", suite)

	require.Len(t, report.Results, 2)
	assert.Equal(t, OutcomeFail, report.Results[0].Outcome)
	assert.Contains(t, report.Results[0].Detail, "panic: nil map write")
	assert.Equal(t, OutcomePass, report.Results[1].Outcome, "sibling check still ran")
}

func TestPartialFailureIsolationAcrossSuites(t *testing.T) {
	runner := NewRunner(logging.Nop)

	healthy := Suite{Name: "vocabulary", Checks: []Check{{Name: "ok", Fn: pass}}}
	broken := Suite{Name: "surface", Checks: []Check{{Name: "bad", Fn: fail}}}

	baseline := runner.RunSuite(context.Background(), "go", healthy)
	reports := runner.RunSuites(context.Background(), "go", []Suite{broken, healthy})

	require.Len(t, reports, 2)
	assert.Equal(t, baseline.Tally, reports[1].Tally,
		"a failing suite must not change any other suite's tally")
}

func TestHintPropagation(t *testing.T) {
	runner := NewRunner(logging.Nop)
	suite := Suite{
		Name: "binding",
		Checks: []Check{{
			Name: "import",
			Fn: func(_ context.Context) error {
				return WithHint(errors.New("module not found"), "npm install @vaultsfyi/sdk")
			},
		}},
	}

	report := runner.RunSuite(context.Background(), "javascript", suite)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "npm install @vaultsfyi/sdk", report.Results[0].Hint)
}

func TestRunReportExitCodes(t *testing.T) {
	passing := SuiteReport{Suite: "s", Tally: Tally{Passed: 1, Total: 1}}
	failing := SuiteReport{Suite: "s", Tally: Tally{Failed: 1, Total: 1}}

	tests := []struct {
		name     string
		bindings []BindingReport
		want     int
	}{
		{
			name: "all green",
			bindings: []BindingReport{
				{Binding: "go", Suites: []SuiteReport{passing}},
				{Binding: "python", Suites: []SuiteReport{passing}},
			},
			want: ExitOK,
		},
		{
			name: "one failure",
			bindings: []BindingReport{
				{Binding: "go", Suites: []SuiteReport{passing}},
				{Binding: "python", Suites: []SuiteReport{failing}},
			},
			want: ExitFailures,
		},
		{
			name: "fatal precondition wins",
			bindings: []BindingReport{
				{Binding: "go", Suites: []SuiteReport{failing}},
				{Binding: "python", Fatal: "python3 not found in PATH"},
			},
			want: ExitFatal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := NewRunReport()
			for _, binding := range tt.bindings {
				report.Add(binding)
			}
			report.Finish()
			assert.Equal(t, tt.want, report.ExitCode())
		})
	}
}

func TestRunReportSummary(t *testing.T) {
	report := NewRunReport()
	report.Add(BindingReport{
		Binding: "go",
		Suites: []SuiteReport{
			{Suite: "surface", Tally: Tally{Passed: 12, Total: 13, Skipped: 1}},
		},
	})
	report.Add(BindingReport{
		Binding:        "python",
		InstallWarning: "pip install vaultsfyi failed",
		Suites: []SuiteReport{
			{Suite: "binding", Tally: Tally{Failed: 1, Total: 1}},
		},
	})
	report.Finish()

	summary := report.Summary()
	assert.Contains(t, summary, "go: 1/1 suites passed")
	assert.Contains(t, summary, "[FAIL] binding")
	assert.Contains(t, summary, "warning: pip install vaultsfyi failed")
	assert.Contains(t, summary, "total:")
}

func TestFailureHintsDeduplicated(t *testing.T) {
	report := NewRunReport()
	report.Add(BindingReport{
		Binding: "javascript",
		Suites: []SuiteReport{{
			Suite: "binding",
			Results: []Result{
				{Name: "a", Outcome: OutcomeFail, Hint: "npm install @vaultsfyi/sdk"},
				{Name: "b", Outcome: OutcomeFail, Hint: "npm install @vaultsfyi/sdk"},
				{Name: "c", Outcome: OutcomePass, Hint: "ignored"},
			},
		}},
	})

	assert.Equal(t, []string{"npm install @vaultsfyi/sdk"}, report.FailureHints())
}
