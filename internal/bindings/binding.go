// Package bindings implements the per-language SDK bindings the harness
// verifies: Go in-process, JavaScript and Python through sandboxed
// subprocess probes. Each binding declares its runtime requirements,
// installs its SDK into a sandbox, and runs its assertion suites.
package bindings

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vaultsfyi/sextant/internal/deps"
	"github.com/vaultsfyi/sextant/internal/sandbox"
	"github.com/vaultsfyi/sextant/pkg/conformance"
	"github.com/vaultsfyi/sextant/pkg/registry"
)

// Binding is one language's SDK under verification.
type Binding interface {
	// Name is the binding's identifier, e.g. "go" or "javascript".
	Name() string

	// Runtime returns the language runtimes the binding needs before
	// anything else can proceed. Empty means in-process.
	Runtime() []deps.Requirement

	// SandboxKind returns the sandbox flavor the binding installs into,
	// or "" when it needs none.
	SandboxKind() sandbox.Kind

	// Install provisions the binding's SDK inside the sandbox.
	Install(ctx context.Context, sb *sandbox.Sandbox) error

	// Run executes the binding's assertion suites and returns one report
	// per suite. A returned error means the probe itself broke, not that
	// checks failed; failed checks travel inside the reports.
	Run(ctx context.Context, reg registry.Registry, apiKey string, sb *sandbox.Sandbox) ([]conformance.SuiteReport, error)
}

// Names lists the bindings in their fixed run order.
func Names() []string {
	return []string{"go", "javascript", "python"}
}

// ByName returns the named binding, or false for an unknown name.
func ByName(name string, logger zerolog.Logger) (Binding, bool) {
	switch name {
	case "go", "golang":
		return NewGo(logger), true
	case "javascript", "js", "node":
		return NewNode(logger), true
	case "python", "py":
		return NewPython(logger), true
	}
	return nil, false
}

// All returns every binding in run order.
func All(logger zerolog.Logger) []Binding {
	return []Binding{NewGo(logger), NewNode(logger), NewPython(logger)}
}
