package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vaultsfyi/sextant/internal/results"
	"github.com/vaultsfyi/sextant/pkg/conformance"
)

// NewResultsCommand creates the results command group.
func (a *App) NewResultsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Inspect saved run reports",
		Long: `Every check run saves its report as JSON under the results directory.
Results commands read those files back without re-running any suite.`,
	}

	cmd.AddCommand(a.newResultsShowCommand())

	return cmd
}

func (a *App) newResultsShowCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Show a saved run report (the latest one by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.loadReport(args, dir)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "run %s started %s\n",
				report.ID, report.StartedAt.Format(time.RFC3339))
			fmt.Fprint(cmd.OutOrStdout(), report.Summary())
			for _, hint := range report.FailureHints() {
				fmt.Fprintf(cmd.OutOrStdout(), "hint: %s\n", hint)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "results", "", "directory the reports were saved into")

	return cmd
}

// loadReport resolves which saved report to read: an explicit file argument
// wins, otherwise the most recent report in the results directory.
func (a *App) loadReport(args []string, dir string) (*conformance.RunReport, error) {
	if len(args) == 1 {
		return results.Load(args[0])
	}
	if dir == "" {
		dir = a.config.ResultsPath
	}
	return results.Latest(dir)
}
