package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simbench",
		Short: "SimBench - explore survey simulation benchmark results",
		Long: `SimBench is a command-line tool for exploring survey simulation
benchmark results.

It loads per-model result records, groups them by question, and serves a
local web explorer with filtering, sorting, and model comparison. It can
also generate synthetic sample datasets, convert CSV exports, and print
per-model score statistics.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newGenerateCommand())
	cmd.AddCommand(newConvertCommand())
	cmd.AddCommand(newStatsCommand())
	cmd.AddCommand(newInitCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
