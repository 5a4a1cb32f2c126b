package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/pitehu/simbench/internal/models"
)

// Row represents a single CSV row with column name to value mapping.
type Row map[string]string

// LoadCSV reads a CSV file and returns rows as maps of column to value.
// The first row is treated as headers (column names).
func LoadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("csv: %s is empty (no header row)", path)
	}

	headers := records[0]
	rows := make([]Row, 0, len(records)-1)

	for i, record := range records[1:] {
		if len(record) != len(headers) {
			return nil, fmt.Errorf("csv: row %d has %d columns, expected %d", i+2, len(record), len(headers))
		}
		row := make(Row, len(headers))
		for j, h := range headers {
			row[h] = record[j]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// csvRecord mirrors the external field contract for mapstructure decoding of
// CSV rows. Distributions and option lists arrive as JSON-encoded cells and
// are parsed separately.
type csvRecord struct {
	DatasetName          string   `mapstructure:"dataset_name"`
	InputTemplate        string   `mapstructure:"input_template"`
	SystemPrompt         string   `mapstructure:"System_Prompt"`
	Subset               string   `mapstructure:"Subset"`
	Entropy              *float64 `mapstructure:"Human_Normalized_Entropy"`
	Agreement            string   `mapstructure:"Human_Agreement"`
	HumanAnswer          string   `mapstructure:"human_answer"`
	ResponseDistribution string   `mapstructure:"Response_Distribution"`
	Model                string   `mapstructure:"Model"`
	Score                *float64 `mapstructure:"SimBench_Score"`
	GroupSize            int      `mapstructure:"group_size"`
	AnswerOptions        string   `mapstructure:"answer_options"`
}

// RecordsFromRows converts CSV rows into raw records with the same leniency
// as JSON decoding: unparseable cells degrade to defaults and are logged at
// debug level, never dropping the row.
func RecordsFromRows(rows []Row) []models.RawRecord {
	records := make([]models.RawRecord, 0, len(rows))
	for i, row := range rows {
		// Empty cells would fail numeric coercion; dropping them lets the
		// defaults apply instead.
		cleaned := make(map[string]string, len(row))
		for k, v := range row {
			if strings.TrimSpace(v) != "" {
				cleaned[k] = v
			}
		}

		var wire csvRecord
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &wire,
		})
		if err != nil {
			slog.Debug("csv: decoder setup failed", "row", i, "error", err)
			records = append(records, models.RawRecord{})
			continue
		}
		if err := dec.Decode(cleaned); err != nil {
			// mapstructure keeps the fields it could coerce.
			slog.Debug("csv: partial row decode", "row", i, "error", err)
		}

		rec := models.RawRecord{
			DatasetName:   wire.DatasetName,
			QuestionText:  wire.InputTemplate,
			SystemPrompt:  wire.SystemPrompt,
			Subset:        wire.Subset,
			Entropy:       wire.Entropy,
			Agreement:     models.ParseAgreement(wire.Agreement),
			HumanAnswer:   parseDistributionCell(wire.HumanAnswer),
			ModelAnswer:   parseDistributionCell(wire.ResponseDistribution),
			Model:         wire.Model,
			Score:         wire.Score,
			GroupSize:     wire.GroupSize,
			AnswerOptions: parseOptionsCell(wire.AnswerOptions),
		}
		if rec.Agreement == models.AgreementUnknown && rec.Entropy != nil {
			rec.Agreement = models.AgreementFromEntropy(*rec.Entropy)
		}
		records = append(records, rec)
	}
	return records
}

// parseDistributionCell parses a JSON object or array cell into a
// Distribution. Anything unparseable yields an empty distribution.
func parseDistributionCell(cell string) models.Distribution {
	var d models.Distribution
	if err := json.Unmarshal([]byte(cell), &d); err != nil || d == nil {
		return models.Distribution{}
	}
	return d
}

// parseOptionsCell accepts a JSON string list or a semicolon-separated cell.
func parseOptionsCell(cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	var opts []string
	if err := json.Unmarshal([]byte(cell), &opts); err == nil {
		return opts
	}
	parts := strings.Split(cell, ";")
	opts = make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			opts = append(opts, p)
		}
	}
	return opts
}
