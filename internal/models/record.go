// Package models defines the data types shared across the SimBench results
// explorer: raw result records as produced by the benchmark pipeline, and the
// per-question aggregates derived from them.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Distribution maps an answer option label to a probability-like weight.
// Weights are not guaranteed to be normalized.
type Distribution map[string]float64

// UnmarshalJSON accepts either an object of label -> weight or a bare array
// of weights. Array entries are assigned the default option labels A, B, C...
// in order, matching how the upstream conversion pipeline emits list-form
// distributions. Null and non-numeric values decode to an empty distribution.
func (d *Distribution) UnmarshalJSON(data []byte) error {
	*d = Distribution{}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var values []json.Number
		if err := json.Unmarshal(data, &values); err != nil {
			return nil
		}
		for i, v := range values {
			f, err := v.Float64()
			if err != nil {
				continue
			}
			(*d)[OptionLabel(i)] = f
		}
		return nil
	}

	var obj map[string]json.Number
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	for k, v := range obj {
		f, err := v.Float64()
		if err != nil {
			continue
		}
		(*d)[k] = f
	}
	return nil
}

// OptionLabel returns the default label for the i-th answer option: A, B, C...
// and opt26, opt27... past the alphabet.
func OptionLabel(i int) string {
	if i >= 0 && i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("opt%d", i)
}

// AgreementLevel is the coarse human-agreement bucket derived upstream from
// the normalized entropy of the human answer distribution.
type AgreementLevel string

const (
	AgreementHigh    AgreementLevel = "High"
	AgreementMedium  AgreementLevel = "Medium"
	AgreementLow     AgreementLevel = "Low"
	AgreementUnknown AgreementLevel = "Unknown"
)

// ParseAgreement maps a raw string to an AgreementLevel, defaulting to
// Unknown for anything unrecognized.
func ParseAgreement(s string) AgreementLevel {
	switch AgreementLevel(strings.TrimSpace(s)) {
	case AgreementHigh, AgreementMedium, AgreementLow:
		return AgreementLevel(strings.TrimSpace(s))
	default:
		return AgreementUnknown
	}
}

// AgreementFromEntropy buckets a normalized entropy value into an agreement
// level using the same thresholds as the upstream results pipeline.
func AgreementFromEntropy(entropy float64) AgreementLevel {
	switch {
	case entropy < 0.33:
		return AgreementHigh
	case entropy < 0.66:
		return AgreementMedium
	default:
		return AgreementLow
	}
}

// RawRecord is one observation of a single model's response to a single
// question instance, as stored in a results JSON file.
type RawRecord struct {
	DatasetName   string
	QuestionText  string
	SystemPrompt  string
	Subset        string
	Entropy       *float64
	Agreement     AgreementLevel
	HumanAnswer   Distribution
	ModelAnswer   Distribution
	Model         string
	Score         *float64
	GroupSize     int
	AnswerOptions []string
}

// ScoreOrZero returns the benchmark score, treating an absent score as 0.
func (r *RawRecord) ScoreOrZero() float64 {
	if r.Score == nil {
		return 0
	}
	return *r.Score
}

// UnmarshalJSON decodes the external results contract. Every field is
// optional: missing, null, or type-mismatched values degrade to the zero
// defaults (empty string, empty distribution, nil score, Unknown agreement)
// rather than failing the record.
func (r *RawRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("record is not a JSON object: %w", err)
	}

	r.DatasetName = stringField(fields, "dataset_name")
	r.QuestionText = stringField(fields, "input_template")
	r.SystemPrompt = stringField(fields, "System_Prompt")
	r.Subset = stringField(fields, "Subset")
	r.Model = stringField(fields, "Model")
	r.Entropy = floatField(fields, "Human_Normalized_Entropy")
	r.Score = floatField(fields, "SimBench_Score")
	r.GroupSize = intField(fields, "group_size")
	r.HumanAnswer = distributionField(fields, "human_answer")
	r.ModelAnswer = distributionField(fields, "Response_Distribution")
	r.AnswerOptions = stringsField(fields, "answer_options")

	if raw, ok := fields["Human_Agreement"]; ok {
		r.Agreement = ParseAgreement(unquote(raw))
	} else {
		r.Agreement = AgreementUnknown
	}
	if r.Agreement == AgreementUnknown && r.Entropy != nil {
		r.Agreement = AgreementFromEntropy(*r.Entropy)
	}
	return nil
}

// MarshalJSON writes the record back out using the external field names, so
// generated and converted datasets are loadable by the same contract.
func (r RawRecord) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"dataset_name":          r.DatasetName,
		"input_template":        r.QuestionText,
		"System_Prompt":         r.SystemPrompt,
		"Subset":                r.Subset,
		"Human_Agreement":       r.Agreement,
		"human_answer":          r.HumanAnswer,
		"Response_Distribution": r.ModelAnswer,
		"Model":                 r.Model,
		"group_size":            r.GroupSize,
		"answer_options":        r.AnswerOptions,
	}
	if r.Entropy != nil {
		out["Human_Normalized_Entropy"] = *r.Entropy
	}
	if r.Score != nil {
		out["SimBench_Score"] = *r.Score
	}
	return json.Marshal(out)
}

func stringField(fields map[string]json.RawMessage, name string) string {
	raw, ok := fields[name]
	if !ok {
		return ""
	}
	return unquote(raw)
}

// unquote extracts a string value from raw JSON, tolerating numbers and other
// scalars by rendering them verbatim. Null becomes the empty string.
func unquote(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "null" || strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return ""
	}
	return trimmed
}

func distributionField(fields map[string]json.RawMessage, name string) Distribution {
	raw, ok := fields[name]
	if !ok {
		return Distribution{}
	}
	var d Distribution
	if err := json.Unmarshal(raw, &d); err != nil || d == nil {
		return Distribution{}
	}
	return d
}

func floatField(fields map[string]json.RawMessage, name string) *float64 {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	// An explicit null is an absent value, not zero.
	if strings.TrimSpace(string(raw)) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	// Some exporters quote numeric values.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return &f
		}
	}
	return nil
}

func intField(fields map[string]json.RawMessage, name string) int {
	f := floatField(fields, name)
	if f == nil {
		return 0
	}
	return int(*f)
}

func stringsField(fields map[string]json.RawMessage, name string) []string {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err == nil {
		return out
	}
	// Mixed-type lists: render each element as a string.
	var anys []any
	if err := json.Unmarshal(raw, &anys); err == nil {
		out = make([]string, 0, len(anys))
		for _, v := range anys {
			out = append(out, fmt.Sprint(v))
		}
		return out
	}
	return nil
}
