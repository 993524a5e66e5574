package bindings

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vaultsfyi/sextant/internal/deps"
	"github.com/vaultsfyi/sextant/internal/sandbox"
	"github.com/vaultsfyi/sextant/internal/suites"
	"github.com/vaultsfyi/sextant/pkg/conformance"
	"github.com/vaultsfyi/sextant/pkg/registry"
)

// goBinding verifies the Go SDK in-process: the binding is compiled into
// the harness, so there is no runtime to detect and nothing to install.
type goBinding struct {
	logger zerolog.Logger
}

// NewGo returns the in-process Go binding.
func NewGo(logger zerolog.Logger) Binding {
	return &goBinding{logger: logger}
}

func (b *goBinding) Name() string { return "go" }

func (b *goBinding) Runtime() []deps.Requirement { return nil }

func (b *goBinding) SandboxKind() sandbox.Kind { return "" }

func (b *goBinding) Install(ctx context.Context, sb *sandbox.Sandbox) error { return nil }

func (b *goBinding) Run(ctx context.Context, reg registry.Registry, apiKey string, sb *sandbox.Sandbox) ([]conformance.SuiteReport, error) {
	runner := conformance.NewRunner(b.logger)
	return runner.RunSuites(ctx, b.Name(), suites.All(reg, apiKey)), nil
}
