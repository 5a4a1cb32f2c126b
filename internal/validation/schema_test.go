package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateResultsBytes_Valid(t *testing.T) {
	doc := `[
		{"dataset_name": "OpinionQA", "Model": "GPT-4.1",
		 "human_answer": {"A": 0.7, "B": 0.3}, "SimBench_Score": 90.1},
		{"dataset_name": null, "Response_Distribution": [0.5, 0.5]}
	]`
	assert.Nil(t, ValidateResultsBytes([]byte(doc)))
}

func TestValidateResultsBytes_EmptyArray(t *testing.T) {
	assert.Nil(t, ValidateResultsBytes([]byte(`[]`)))
}

func TestValidateResultsBytes_NotAnArray(t *testing.T) {
	errs := ValidateResultsBytes([]byte(`{"dataset_name": "X"}`))
	assert.NotEmpty(t, errs)
}

func TestValidateResultsBytes_BadFieldTypes(t *testing.T) {
	doc := `[{"human_answer": {"A": -0.5}, "Human_Agreement": "Sometimes"}]`
	errs := ValidateResultsBytes([]byte(doc))
	assert.NotEmpty(t, errs)
}

func TestValidateResultsBytes_MalformedJSON(t *testing.T) {
	errs := ValidateResultsBytes([]byte(`[{`))
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "JSON parse error")
}
