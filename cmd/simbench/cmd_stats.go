package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pitehu/simbench/internal/projectconfig"
	"github.com/pitehu/simbench/internal/webapi"
)

func newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [source]",
		Short: "Print per-model score statistics",
		Long: `Print per-model score statistics for a results source.

Loads the given source (a JSON file, a directory of JSON shards, or an
HTTP(S) URL; defaults to the configured data source), aggregates the
records, and prints a per-model table of response counts, score
statistics, and mean divergence from the human answers.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) > 0 {
				source = args[0]
			}
			if source == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("getting working directory: %w", err)
				}
				cfg, err := projectconfig.Load(wd)
				if err != nil {
					return err
				}
				source = cfg.Data.Source
			}

			store := webapi.NewDataStore(source, projectconfig.DefaultSampleSize,
				projectconfig.DefaultSampleSeed, slog.Default())
			summary, err := store.Summary()
			if err != nil {
				return err
			}

			if store.Synthetic() {
				fmt.Fprintf(cmd.ErrOrStderr(), "note: %s could not be loaded, showing generated sample data\n", source) //nolint:errcheck
			}
			printSummaryTable(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	return cmd
}

const (
	minModelWidth = 5
	maxModelWidth = 40
)

func printSummaryTable(w io.Writer, summary *webapi.SummaryResponse) {
	nameWidth := minModelWidth
	for _, m := range summary.Models {
		if runeLen := utf8.RuneCountInString(m.Model); runeLen > nameWidth {
			nameWidth = runeLen
		}
	}
	if nameWidth > maxModelWidth {
		nameWidth = maxModelWidth
	}

	// Shrink the name column on narrow terminals.
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil {
			if avail := cols - fixedColumnsWidth; avail >= minModelWidth && avail < nameWidth {
				nameWidth = avail
			}
		}
	}

	const colCount = 9
	const colScore = 10
	const colKL = 8
	totalWidth := nameWidth + colCount + 3*colScore + colKL + 10 // 10 = 5 gaps × 2 spaces

	fmt.Fprintf(w, "%s\n", strings.Repeat("═", totalWidth)) //nolint:errcheck
	fmt.Fprintf(w, " MODEL STATISTICS\n")                   //nolint:errcheck
	fmt.Fprintf(w, "%s\n", strings.Repeat("═", totalWidth)) //nolint:errcheck

	fmt.Fprintf(w, "%s  %s  %s  %s  %s  %s\n", //nolint:errcheck
		padRight("Model", nameWidth),
		padRight("Responses", colCount),
		padRight("Mean", colScore),
		padRight("Median", colScore),
		padRight("StdDev", colScore),
		"Mean KL")
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", totalWidth)) //nolint:errcheck

	for _, m := range summary.Models {
		fmt.Fprintf(w, "%s  %s  %s  %s  %s  %.4f\n", //nolint:errcheck
			padRight(truncateName(m.Model, nameWidth), nameWidth),
			padRight(fmt.Sprintf("%d", m.Responses), colCount),
			padRight(fmt.Sprintf("%.2f", m.MeanScore), colScore),
			padRight(fmt.Sprintf("%.2f", m.MedianScore), colScore),
			padRight(fmt.Sprintf("%.2f", m.ScoreStdDev), colScore),
			m.MeanDivergence)
	}

	fmt.Fprintf(w, "%s\n", strings.Repeat("─", totalWidth))       //nolint:errcheck
	fmt.Fprintf(w, "%d questions, %d responses, %d dataset(s)\n", //nolint:errcheck
		summary.TotalQuestions, summary.TotalResponses, summary.Datasets)
}

// fixedColumnsWidth is the display width taken by every column except the
// model name.
const fixedColumnsWidth = 9 + 3*10 + 8 + 10

// truncateName shortens a name to maxLen runes, replacing the last rune with "…" if needed.
func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-1]) + "…"
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
