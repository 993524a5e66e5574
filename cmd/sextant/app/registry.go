package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaultsfyi/sextant/internal/cmd/output"
	"github.com/vaultsfyi/sextant/pkg/registry"
)

// NewRegistryCommand creates the registry command group.
func (a *App) NewRegistryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Inspect the example registry",
		Long: `The example registry is the single source of truth for documented
operations, parameters, example fixtures, and domain vocabularies.`,
	}

	cmd.AddCommand(a.newRegistryListCommand())
	cmd.AddCommand(a.newRegistryShowCommand())
	cmd.AddCommand(a.newRegistryValidateCommand())

	return cmd
}

func (a *App) newRegistryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every documented operation",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.Sextant()
			if err != nil {
				return err
			}

			var rows [][]string
			for _, op := range s.Registry().Operations().List() {
				required := "yes"
				if !op.Required {
					required = "no"
				}
				rows = append(rows, []string{op.ID, op.Method, op.Path, required})
			}

			formatter := output.NewFormatter(output.DetectFormat(a.config.Format))
			return formatter.Format(cmd.OutOrStdout(), output.Data{
				Headers: []string{"OPERATION", "METHOD", "PATH", "REQUIRED"},
				Rows:    rows,
			})
		},
	}
}

func (a *App) newRegistryShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <operation>",
		Short: "Show one operation's documented surface",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.Sextant()
			if err != nil {
				return err
			}

			op, ok := s.Registry().Operations().Get(args[0])
			if !ok {
				known := strings.Join(s.Registry().Operations().IDs(), ", ")
				return fmt.Errorf("unknown operation %q (known: %s)", args[0], known)
			}

			format := output.DetectFormat(a.config.Format)
			if format == output.FormatTable {
				// Structured detail reads better as YAML even on a terminal.
				format = output.FormatYAML
			}
			formatter := output.NewFormatter(format)
			return formatter.Format(cmd.OutOrStdout(), op)
		},
	}
}

func (a *App) newRegistryValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a registry file (the embedded one by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				s, err := a.Sextant()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "embedded registry valid: %d operations, %d vocabularies\n",
					s.Registry().Operations().Len(), s.Registry().Vocabularies().Len())
				return nil
			}

			dir, file := splitRegistryPath(args[0])
			reg, err := registry.New(registry.WithFS(os.DirFS(dir)), registry.WithPath(file))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s valid: %d operations, %d vocabularies\n",
				args[0], reg.Operations().Len(), reg.Vocabularies().Len())
			return nil
		},
	}
}

// splitRegistryPath splits a file path into an fs root and a relative name.
func splitRegistryPath(path string) (dir, file string) {
	idx := strings.LastIndexByte(path, '/')
	if idx < 0 {
		return ".", path
	}
	return path[:idx], path[idx+1:]
}
