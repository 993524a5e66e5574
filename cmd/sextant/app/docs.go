package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultsfyi/sextant/internal/docs"
)

// NewDocsCommand creates the docs command group.
func (a *App) NewDocsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Generate or verify the API guide",
		Long: `The API guide is generated from the example registry and committed.
Generate rewrites it; verify fails when the committed guide has drifted
from the registry.`,
	}

	var path string
	cmd.PersistentFlags().StringVar(&path, "path", docs.DefaultPath, "guide file path")

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the guide from the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.Sextant()
			if err != nil {
				return err
			}
			if err := docs.Write(s.Registry(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	verify := &cobra.Command{
		Use:   "verify",
		Short: "Check the committed guide against the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.Sextant()
			if err != nil {
				return err
			}
			if err := docs.Verify(s.Registry(), path); err != nil {
				return &ExitError{Code: 1, Err: err}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s matches the registry\n", path)
			return nil
		},
	}

	cmd.AddCommand(generate, verify)
	return cmd
}
