package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultsfyi/sextant/internal/bindings"
	"github.com/vaultsfyi/sextant/pkg/conformance"
)

// NewCheckCommand creates the check command: run every binding's assertion
// suites and exit with the documented status code.
func (a *App) NewCheckCommand() *cobra.Command {
	var bindingNames []string
	var resultsPath string
	var keepSandbox bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the documentation conformance suites",
		Long: `Check runs every configured binding's assertion suites against its SDK
and prints the pass/fail matrix.

Exit status: 0 when every suite passed, 1 when any check failed, 2 when a
required language runtime is missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(bindingNames) > 0 {
				a.config.Bindings = bindingNames
			}
			if resultsPath != "" {
				a.config.ResultsPath = resultsPath
			}
			if keepSandbox {
				a.config.KeepSandbox = true
			}

			s, err := a.Sextant()
			if err != nil {
				return err
			}

			report, err := s.Verify(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), report.Summary())

			if code := report.ExitCode(); code != conformance.ExitOK {
				return &ExitError{Code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&bindingNames, "bindings", nil,
		fmt.Sprintf("bindings to verify (default: %v)", bindings.Names()))
	cmd.Flags().StringVar(&resultsPath, "results", "", "directory to save the run report into")
	cmd.Flags().BoolVar(&keepSandbox, "keep-sandbox", false, "keep sandbox directories for inspection")

	return cmd
}
