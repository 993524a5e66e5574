// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

const (
	// Success represents successful completion of an operation.
	// Used for: passing checks, installed runtimes, verified guides.
	Success = "✓"

	// Error represents failures or missing required configuration.
	// Used for: failed checks, missing runtimes, documentation drift.
	Error = "✗"

	// Warning represents warnings or non-critical issues.
	// Used for: SDK install failures that do not stop a run.
	Warning = "!"

	// Skip represents checks that did not apply to a binding.
	Skip = "-"

	// Info represents informational messages.
	// Used for: install hints, tips, context.
	Info = "i"
)
