package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pitehu/simbench/internal/projectconfig"
	"github.com/pitehu/simbench/internal/wizard"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a .simbench.yaml project configuration",
		Long: `Create a .simbench.yaml project configuration.

On a terminal, runs a guided form collecting the data source, server
port, and explorer defaults. With piped input, writes the default
configuration without prompting.

If no directory is specified, the current directory is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}

			cfg := projectconfig.New()

			// Check TTY from the command's input stream, not os.Stdin directly.
			isTTY := false
			if f, ok := cmd.InOrStdin().(*os.File); ok {
				isTTY = term.IsTerminal(int(f.Fd()))
			}
			if isTTY {
				var err error
				cfg, err = wizard.RunSetupWizard(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
			}

			if err := cfg.Save(dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", filepath.Join(dir, projectconfig.ConfigFileName)) //nolint:errcheck
			return nil
		},
	}

	return cmd
}
