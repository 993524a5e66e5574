// Package deps provides language runtime detection for the conformance
// harness: which interpreters are installed, where, and at what version.
package deps

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/vaultsfyi/sextant/pkg/errors"
)

// Requirement describes one language runtime or tool a binding needs
// before its suites can run.
type Requirement struct {
	// Name is the requirement's identifier, e.g. "node".
	Name string

	// DisplayName is the human-readable name used in messages.
	DisplayName string

	// Commands are the executable names to try in order. The first one
	// found in PATH satisfies the requirement.
	Commands []string

	// Hint is the remediation shown when the requirement is missing.
	Hint string
}

// Status is the detection result for one requirement.
type Status struct {
	Available bool
	Path      string
	Version   string
	CheckErr  error
}

// Check verifies whether a requirement is satisfied, trying each command
// in order and extracting a version from the first one found.
func Check(ctx context.Context, req Requirement) Status {
	var status Status

	for _, cmd := range req.Commands {
		path, err := exec.LookPath(cmd)
		if err != nil {
			continue
		}

		status.Available = true
		status.Path = path

		version, err := commandVersion(ctx, cmd)
		if err != nil {
			status.CheckErr = fmt.Errorf("found %s but could not detect version: %w", cmd, err)
		} else {
			status.Version = version
		}
		return status
	}

	if len(req.Commands) > 0 {
		status.CheckErr = errors.NewDependencyError(
			req.Name,
			fmt.Sprintf("%s not found in PATH (tried: %s)", req.DisplayName, strings.Join(req.Commands, ", ")),
			req.Hint,
		)
	}

	return status
}

// CheckAll checks every requirement. The returned map is keyed by
// requirement name.
func CheckAll(ctx context.Context, reqs []Requirement) map[string]Status {
	if len(reqs) == 0 {
		return nil
	}
	results := make(map[string]Status, len(reqs))
	for _, req := range reqs {
		results[req.Name] = Check(ctx, req)
	}
	return results
}

// Missing returns the requirements not satisfied in the given statuses, in
// declared order.
func Missing(reqs []Requirement, statuses map[string]Status) []Requirement {
	var missing []Requirement
	for _, req := range reqs {
		if status, ok := statuses[req.Name]; ok && !status.Available {
			missing = append(missing, req)
		}
	}
	return missing
}

// commandVersion runs the command with common version flags and extracts a
// semantic version from the output. Best effort: tools disagree on flags.
func commandVersion(ctx context.Context, cmdName string) (string, error) {
	versionFlags := []string{"--version", "-v", "version"}

	for _, flag := range versionFlags {
		//nolint:gosec // cmdName comes from a Requirement declared in code
		cmd := exec.CommandContext(ctx, cmdName, flag)
		output, err := cmd.CombinedOutput()
		if err != nil {
			continue
		}
		if version := extractVersion(string(output)); version != "" {
			return version, nil
		}
	}

	return "", fmt.Errorf("could not determine version")
}

var versionRe = regexp.MustCompile(`v?(\d+\.\d+(\.\d+)?)`)

// extractVersion pulls the first version-looking token out of output such
// as "v22.1.0" or "Python 3.12.4".
func extractVersion(output string) string {
	matches := versionRe.FindStringSubmatch(output)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}
