package bindings

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vaultsfyi/sextant/internal/embedded"
	"github.com/vaultsfyi/sextant/pkg/conformance"
	"github.com/vaultsfyi/sextant/pkg/constants"
	"github.com/vaultsfyi/sextant/pkg/errors"
)

// probeResults is the document a subprocess probe writes to stdout.
type probeResults struct {
	Suites []probeSuite `json:"suites"`
}

type probeSuite struct {
	Name   string       `json:"name"`
	Checks []probeCheck `json:"checks"`
}

type probeCheck struct {
	Name    string `json:"name"`
	Outcome string `json:"outcome"`
	Detail  string `json:"detail"`
	Hint    string `json:"hint"`
}

// materializeProbe copies an embedded probe script into the sandbox
// directory so the interpreter can read it from disk.
func materializeProbe(dir, script string) (string, error) {
	data, err := embedded.FS.ReadFile("probes/" + script)
	if err != nil {
		return "", fmt.Errorf("reading embedded probe %s: %w", script, err)
	}
	path := filepath.Join(dir, script)
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return "", fmt.Errorf("writing probe script: %w", err)
	}
	return path, nil
}

// runProbe executes a probe subprocess and parses its stdout into suite
// reports. Probe crash or unparseable output is a ProcessError; failed
// checks inside well-formed output are not errors here.
func runProbe(ctx context.Context, logger zerolog.Logger, binding string, argv []string, env []string) ([]conformance.SuiteReport, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ProbeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	started := time.Now()
	err := cmd.Run()
	elapsed := time.Since(started)

	logger.Debug().
		Str("binding", binding).
		Str("command", strings.Join(argv, " ")).
		Dur("elapsed", elapsed).
		Err(err).
		Msg("probe finished")

	if err != nil {
		output := truncate(stderr.String()+stdout.String(), constants.OutputBufferSize)
		return nil, errors.NewProcessError("probe", argv[0], output, exitCodeOf(err), err)
	}

	var results probeResults
	if decodeErr := json.Unmarshal(stdout.Bytes(), &results); decodeErr != nil {
		output := truncate(stdout.String(), constants.OutputBufferSize)
		return nil, errors.NewProcessError("probe", argv[0], output, 0,
			fmt.Errorf("unparseable probe output: %w", decodeErr))
	}

	reports := make([]conformance.SuiteReport, 0, len(results.Suites))
	for _, suite := range results.Suites {
		report := conformance.SuiteReport{
			Suite:    suite.Name,
			Binding:  binding,
			Duration: elapsed,
		}
		for _, c := range suite.Checks {
			result := conformance.Result{
				Name:    c.Name,
				Outcome: conformance.Outcome(c.Outcome),
				Detail:  c.Detail,
				Hint:    c.Hint,
			}
			switch result.Outcome {
			case conformance.OutcomePass, conformance.OutcomeFail, conformance.OutcomeSkip:
			default:
				result.Outcome = conformance.OutcomeFail
				result.Detail = fmt.Sprintf("probe reported unknown outcome %q", c.Outcome)
			}
			report.Results = append(report.Results, result)
			report.Tally.Record(result.Outcome)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "... (truncated)"
}

func exitCodeOf(err error) int {
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
