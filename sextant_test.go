package sextant

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsfyi/sextant/internal/bindings"
	"github.com/vaultsfyi/sextant/internal/deps"
	"github.com/vaultsfyi/sextant/internal/sandbox"
	"github.com/vaultsfyi/sextant/pkg/conformance"
	"github.com/vaultsfyi/sextant/pkg/logging"
	"github.com/vaultsfyi/sextant/pkg/registry"
)

func TestNewDefaults(t *testing.T) {
	s, err := New(WithLogger(logging.Nop))
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "javascript", "python"}, s.Bindings())
	assert.Equal(t, 13, s.Registry().Operations().Len())
}

func TestNewSelectsBindingsByName(t *testing.T) {
	s, err := New(WithLogger(logging.Nop), WithBindingNames("python", "go"))
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "go"}, s.Bindings())
}

func TestNewRejectsUnknownBinding(t *testing.T) {
	_, err := New(WithLogger(logging.Nop), WithBindingNames("ruby"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ruby")
}

func TestVerifyGoBindingPasses(t *testing.T) {
	s, err := New(WithLogger(logging.Nop), WithBindingNames("go"))
	require.NoError(t, err)

	report, err := s.Verify(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Bindings, 1)
	br := report.Bindings[0]
	assert.Equal(t, "go", br.Binding)
	assert.Empty(t, br.Fatal)
	assert.True(t, br.Passed(), report.Summary())
	assert.Equal(t, conformance.ExitOK, report.ExitCode())
	assert.False(t, report.FinishedAt.IsZero())
}

func TestVerifyIsRepeatable(t *testing.T) {
	s, err := New(WithLogger(logging.Nop), WithBindingNames("go"))
	require.NoError(t, err)

	first, err := s.Verify(context.Background())
	require.NoError(t, err)
	second, err := s.Verify(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Tally(), second.Tally())
}

func TestVerifySavesReport(t *testing.T) {
	dir := t.TempDir()
	s, err := New(WithLogger(logging.Nop), WithBindingNames("go"), WithResultsPath(dir))
	require.NoError(t, err)

	_, err = s.Verify(context.Background())
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// phantomBinding requires a runtime that cannot exist, driving the fatal
// path without touching the host.
type phantomBinding struct{}

func (phantomBinding) Name() string { return "phantom" }

func (phantomBinding) Runtime() []deps.Requirement {
	return []deps.Requirement{{
		Name:        "phantomlang",
		DisplayName: "Phantomlang",
		Commands:    []string{"phantomlang-definitely-not-installed"},
		Hint:        "install phantomlang",
	}}
}

func (phantomBinding) SandboxKind() sandbox.Kind { return "" }

func (phantomBinding) Install(ctx context.Context, sb *sandbox.Sandbox) error { return nil }

func (phantomBinding) Run(ctx context.Context, reg registry.Registry, apiKey string, sb *sandbox.Sandbox) ([]conformance.SuiteReport, error) {
	return nil, nil
}

func TestVerifyMissingRuntimeIsFatalButSiblingsRun(t *testing.T) {
	s, err := New(
		WithLogger(logging.Nop),
		WithBindings(phantomBinding{}, bindings.NewGo(logging.Nop)),
	)
	require.NoError(t, err)

	report, err := s.Verify(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Bindings, 2)

	phantom := report.Bindings[0]
	assert.Contains(t, phantom.Fatal, "Phantomlang")
	assert.Contains(t, phantom.Fatal, "install phantomlang")

	sibling := report.Bindings[1]
	assert.Empty(t, sibling.Fatal)
	assert.True(t, sibling.Passed())

	assert.Equal(t, conformance.ExitFatal, report.ExitCode())
}

func TestWithAPIKeyOverridesPlaceholder(t *testing.T) {
	s, err := New(WithLogger(logging.Nop), WithBindingNames("go"), WithAPIKey("real-key"))
	require.NoError(t, err)

	report, err := s.Verify(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Passed(), report.Summary())
}

func TestBrokenSuiteReportRollsUp(t *testing.T) {
	report := brokenSuiteReport("python", "probe",
		conformance.WithHint(assert.AnError, "pip install vaultsfyi"))

	assert.Equal(t, "probe", report.Suite)
	assert.Equal(t, 1, report.Tally.Failed)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "pip install vaultsfyi", report.Results[0].Hint)
}
