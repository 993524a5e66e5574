package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultsfyi/sextant/internal/bindings"
	"github.com/vaultsfyi/sextant/internal/cmd/emoji"
	"github.com/vaultsfyi/sextant/internal/cmd/output"
	"github.com/vaultsfyi/sextant/internal/deps"
	"github.com/vaultsfyi/sextant/pkg/logging"
)

// NewRuntimesCommand creates the runtimes command: detect the language
// runtimes the bindings need and show remediation hints for missing ones.
func (a *App) NewRuntimesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "runtimes",
		Short: "Detect the language runtimes the bindings need",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			var hints []string

			for _, b := range bindings.All(logging.Nop) {
				reqs := b.Runtime()
				if len(reqs) == 0 {
					rows = append(rows, []string{b.Name(), "-", emoji.Success, "built in"})
					continue
				}
				statuses := deps.CheckAll(cmd.Context(), reqs)
				for _, req := range reqs {
					status := statuses[req.Name]
					if status.Available {
						detail := status.Path
						if status.Version != "" {
							detail = status.Version + " (" + status.Path + ")"
						}
						rows = append(rows, []string{b.Name(), req.DisplayName, emoji.Success, detail})
						continue
					}
					rows = append(rows, []string{b.Name(), req.DisplayName, emoji.Error, "not found"})
					hints = append(hints, req.Hint)
				}
			}

			formatter := output.NewFormatter(output.DetectFormat(a.config.Format))
			if err := formatter.Format(cmd.OutOrStdout(), output.Data{
				Headers: []string{"BINDING", "RUNTIME", "STATUS", "DETAIL"},
				Rows:    rows,
			}); err != nil {
				return err
			}

			for _, hint := range hints {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", emoji.Info, hint)
			}
			return nil
		},
	}
}
