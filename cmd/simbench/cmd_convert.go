package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pitehu/simbench/internal/dataset"
	"github.com/pitehu/simbench/internal/models"
	"github.com/pitehu/simbench/internal/validation"
)

func newConvertCommand() *cobra.Command {
	var output string
	var check bool

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert a results export to normalized JSON",
		Long: `Convert a results export to normalized JSON.

Accepts a CSV export or a JSON file (optionally gzip- or zstd-compressed),
decodes it leniently, and writes a normalized results JSON file. Missing
or malformed fields are dropped rather than failing the whole file.

Use --check to also validate the normalized records against the results
schema; validation problems are reported and the output is not written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			records, err := loadRecords(input)
			if err != nil {
				return err
			}

			if check {
				normalized, err := json.Marshal(records)
				if err != nil {
					return fmt.Errorf("encoding records: %w", err)
				}
				if problems := validation.ValidateResultsBytes(normalized); len(problems) > 0 {
					for _, p := range problems {
						fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", p) //nolint:errcheck
					}
					return &ValidationError{
						Message: fmt.Sprintf("%s: %d validation problem(s)", input, len(problems)),
					}
				}
			}

			out := output
			if out == "" {
				out = defaultConvertOutput(input)
			}
			if err := dataset.WriteFile(out, records); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records to %s\n", len(records), out) //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: <input>.converted.json)")
	cmd.Flags().BoolVar(&check, "check", false, "Validate records against the results schema before writing")

	return cmd
}

func loadRecords(input string) ([]models.RawRecord, error) {
	if strings.EqualFold(filepath.Ext(input), ".csv") {
		rows, err := dataset.LoadCSV(input)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", input, err)
		}
		return dataset.RecordsFromRows(rows), nil
	}
	return dataset.LoadFile(input)
}

// defaultConvertOutput derives an output path that never collides with the
// input, even when the input is already a .json file.
func defaultConvertOutput(input string) string {
	base := strings.TrimSuffix(input, ".zst")
	base = strings.TrimSuffix(base, ".gz")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + ".converted.json"
}
