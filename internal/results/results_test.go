package results

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsfyi/sextant/pkg/conformance"
)

func sampleReport() *conformance.RunReport {
	report := conformance.NewRunReport()
	report.Add(conformance.BindingReport{
		Binding: "go",
		Suites: []conformance.SuiteReport{
			{
				Suite:   "binding",
				Binding: "go",
				Results: []conformance.Result{
					{Name: "construct", Outcome: conformance.OutcomePass},
				},
				Tally: conformance.Tally{Passed: 1, Total: 1},
			},
		},
	})
	report.Finish()
	return report
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	report := sampleReport()

	path, err := Save(report, dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "run-"))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, report.ID, loaded.ID)
	require.Len(t, loaded.Bindings, 1)
	assert.Equal(t, "go", loaded.Bindings[0].Binding)
	assert.Equal(t, 1, loaded.Tally().Passed)
	assert.True(t, loaded.Passed())
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")
	_, err := Save(sampleReport(), dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLatestPicksNewestRun(t *testing.T) {
	dir := t.TempDir()

	older := sampleReport()
	_, err := Save(older, dir)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	newer := sampleReport()
	_, err = Save(newer, dir)
	require.NoError(t, err)

	latest, err := Latest(dir)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, latest.ID)
}

func TestLatestEmptyDir(t *testing.T) {
	_, err := Latest(t.TempDir())
	assert.Error(t, err)
}
