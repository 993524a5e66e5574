package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := New("test", "none", "never")
	require.NoError(t, err)
	return a
}

func TestNewAppDefaults(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, "test", a.Version())
	assert.NotNil(t, a.Config())
	assert.NotNil(t, a.Logger())
}

func TestSextantIsSingleton(t *testing.T) {
	a := newTestApp(t)

	first, err := a.Sextant()
	require.NoError(t, err)
	second, err := a.Sextant()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestRegistryListCommand(t *testing.T) {
	a := newTestApp(t)
	a.config.Format = "table"

	var out bytes.Buffer
	cmd := a.createRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"registry", "list"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "get_vault_total_returns")
	assert.Contains(t, out.String(), "/v2/networks")
}

func TestRegistryShowUnknownOperation(t *testing.T) {
	a := newTestApp(t)

	var out bytes.Buffer
	cmd := a.createRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"registry", "show", "get_nonsense"})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get_nonsense")
	assert.Contains(t, err.Error(), "get_vault")
}

func TestRegistryValidateEmbedded(t *testing.T) {
	a := newTestApp(t)

	var out bytes.Buffer
	cmd := a.createRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"registry", "validate"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "13 operations")
}

func TestCheckCommandGoBinding(t *testing.T) {
	a := newTestApp(t)
	a.config.NoColor = true
	a.config.Quiet = true

	var out bytes.Buffer
	cmd := a.createRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check", "--bindings", "go", "--quiet", "--no-color"})

	err := cmd.ExecuteContext(context.Background())
	require.NoError(t, err, out.String())
	assert.Contains(t, out.String(), "go:")
	assert.Contains(t, out.String(), "PASS")
}

func TestResultsShowLatest(t *testing.T) {
	a := newTestApp(t)
	a.config.NoColor = true
	a.config.Quiet = true
	dir := t.TempDir()

	var out bytes.Buffer
	cmd := a.createRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check", "--bindings", "go", "--results", dir, "--quiet", "--no-color"})
	require.NoError(t, cmd.ExecuteContext(context.Background()), out.String())

	out.Reset()
	cmd = a.createRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"results", "show", "--results", dir})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "run ")
	assert.Contains(t, out.String(), "go:")
}

func TestResultsShowMissingFile(t *testing.T) {
	a := newTestApp(t)

	var out bytes.Buffer
	cmd := a.createRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"results", "show", "absent.json"})

	assert.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestVersionCommand(t *testing.T) {
	a := newTestApp(t)

	var out bytes.Buffer
	cmd := a.createRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.True(t, strings.HasPrefix(out.String(), "sextant test"))
}

func TestSplitRegistryPath(t *testing.T) {
	dir, file := splitRegistryPath("testdata/registry.yaml")
	assert.Equal(t, "testdata", dir)
	assert.Equal(t, "registry.yaml", file)

	dir, file = splitRegistryPath("registry.yaml")
	assert.Equal(t, ".", dir)
	assert.Equal(t, "registry.yaml", file)
}
