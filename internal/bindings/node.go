package bindings

import (
	"context"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vaultsfyi/sextant/internal/deps"
	"github.com/vaultsfyi/sextant/internal/sandbox"
	"github.com/vaultsfyi/sextant/pkg/conformance"
	"github.com/vaultsfyi/sextant/pkg/constants"
	"github.com/vaultsfyi/sextant/pkg/errors"
	"github.com/vaultsfyi/sextant/pkg/registry"
)

// Documented facts about the JavaScript SDK.
const (
	nodeModule       = "@vaultsfyi/sdk"
	nodeClientSymbol = "VaultsSdk"
	nodeInstallHint  = "npm install @vaultsfyi/sdk"
	nodeAPIKeyArg    = "apiKey"
)

// nodeBinding verifies the JavaScript SDK through the embedded probe.js
// running against an npm-prefix sandbox.
type nodeBinding struct {
	logger zerolog.Logger
}

// NewNode returns the JavaScript binding.
func NewNode(logger zerolog.Logger) Binding {
	return &nodeBinding{logger: logger}
}

func (b *nodeBinding) Name() string { return "javascript" }

func (b *nodeBinding) Runtime() []deps.Requirement {
	return []deps.Requirement{
		{
			Name:        "node",
			DisplayName: "Node.js",
			Commands:    []string{"node"},
			Hint:        "install Node.js 18+ from https://nodejs.org",
		},
		{
			Name:        "npm",
			DisplayName: "npm",
			Commands:    []string{"npm"},
			Hint:        "npm ships with Node.js; reinstall Node.js if missing",
		},
	}
}

func (b *nodeBinding) SandboxKind() sandbox.Kind { return sandbox.KindNPM }

// Install fetches the SDK into the sandbox prefix. Failure is reported to
// the caller as a warning condition; the suite's import check then states
// the precise symptom.
func (b *nodeBinding) Install(ctx context.Context, sb *sandbox.Sandbox) error {
	ctx, cancel := context.WithTimeout(ctx, constants.InstallTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "npm", "install", nodeModule,
		"--prefix", sb.Path(), "--no-audit", "--no-fund")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.NewProcessError("npm install", strings.Join(cmd.Args, " "),
			truncate(string(output), constants.OutputBufferSize), exitCodeOf(err), err)
	}

	b.logger.Debug().Str("module", nodeModule).Str("prefix", sb.Path()).Msg("sdk installed")
	return nil
}

func (b *nodeBinding) Run(ctx context.Context, reg registry.Registry, apiKey string, sb *sandbox.Sandbox) ([]conformance.SuiteReport, error) {
	exp := buildExpectations(reg, b.Name(), nodeModule, nodeClientSymbol,
		nodeInstallHint, nodeAPIKeyArg, registry.Operation.JSMethod, camelCaser)

	expPath, err := writeExpectations(sb.Path(), exp)
	if err != nil {
		return nil, err
	}
	probePath, err := materializeProbe(sb.Path(), "probe.js")
	if err != nil {
		return nil, err
	}

	return runProbe(ctx, b.logger, b.Name(),
		[]string{"node", probePath, expPath}, sb.Env())
}
