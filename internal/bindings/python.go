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

// Documented facts about the Python SDK.
const (
	pythonModule       = "vaultsfyi"
	pythonClientSymbol = "VaultsSdk"
	pythonInstallHint  = "pip install vaultsfyi"
	pythonAPIKeyArg    = "api_key"
)

// pythonBinding verifies the Python SDK through the embedded probe.py
// running against a virtualenv sandbox.
type pythonBinding struct {
	logger zerolog.Logger
}

// NewPython returns the Python binding.
func NewPython(logger zerolog.Logger) Binding {
	return &pythonBinding{logger: logger}
}

func (b *pythonBinding) Name() string { return "python" }

func (b *pythonBinding) Runtime() []deps.Requirement {
	return []deps.Requirement{
		{
			Name:        "python3",
			DisplayName: "Python 3",
			Commands:    []string{"python3", "python"},
			Hint:        "install Python 3.9+ from https://python.org",
		},
	}
}

func (b *pythonBinding) SandboxKind() sandbox.Kind { return sandbox.KindVenv }

// Install fetches the SDK into the sandbox venv with its own pip.
func (b *pythonBinding) Install(ctx context.Context, sb *sandbox.Sandbox) error {
	ctx, cancel := context.WithTimeout(ctx, constants.InstallTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, sb.Python(), "-m", "pip", "install",
		"--quiet", "--disable-pip-version-check", pythonModule)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.NewProcessError("pip install", strings.Join(cmd.Args, " "),
			truncate(string(output), constants.OutputBufferSize), exitCodeOf(err), err)
	}

	b.logger.Debug().Str("module", pythonModule).Str("venv", sb.Path()).Msg("sdk installed")
	return nil
}

func (b *pythonBinding) Run(ctx context.Context, reg registry.Registry, apiKey string, sb *sandbox.Sandbox) ([]conformance.SuiteReport, error) {
	exp := buildExpectations(reg, b.Name(), pythonModule, pythonClientSymbol,
		pythonInstallHint, pythonAPIKeyArg, registry.Operation.PyMethod, snakeCaser)

	expPath, err := writeExpectations(sb.Path(), exp)
	if err != nil {
		return nil, err
	}
	probePath, err := materializeProbe(sb.Path(), "probe.py")
	if err != nil {
		return nil, err
	}

	return runProbe(ctx, b.logger, b.Name(),
		[]string{sb.Python(), probePath, expPath}, sb.Env())
}
