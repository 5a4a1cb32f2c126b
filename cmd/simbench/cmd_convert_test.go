package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitehu/simbench/internal/dataset"
)

const convertCSV = `dataset_name,input_template,Model,SimBench_Score,human_answer,Response_Distribution
OpinionQA,How satisfied are you?,GPT-4.1,82.5,"{""A"": 0.6, ""B"": 0.4}","{""A"": 0.5, ""B"": 0.5}"
OpinionQA,How satisfied are you?,Llama-3,55,"{""A"": 0.6, ""B"": 0.4}","{""A"": 0.9, ""B"": 0.1}"
`

func TestConvertCommand_CSV(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(input, []byte(convertCSV), 0o644))
	output := filepath.Join(dir, "results.json")

	var buf bytes.Buffer
	cmd := newConvertCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{input, "-o", output})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "Wrote 2 records")

	records, err := dataset.LoadFile(output)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "OpinionQA", records[0].DatasetName)
	assert.Equal(t, "GPT-4.1", records[0].Model)
	require.NotNil(t, records[0].Score)
	assert.Equal(t, 82.5, *records[0].Score)
}

func TestConvertCommand_JSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.json")
	require.NoError(t, dataset.WriteFile(input, dataset.Sample(5, 1)))
	output := filepath.Join(dir, "out.json")

	cmd := newConvertCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{input, "-o", output})
	require.NoError(t, cmd.Execute())

	records, err := dataset.LoadFile(output)
	require.NoError(t, err)
	assert.Len(t, records, 5)
}

func TestConvertCommand_CheckPasses(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.json")
	require.NoError(t, dataset.WriteFile(input, dataset.Sample(5, 1)))

	cmd := newConvertCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{input, "--check", "-o", filepath.Join(dir, "out.json")})
	require.NoError(t, cmd.Execute())
}

func TestConvertCommand_MissingInput(t *testing.T) {
	cmd := newConvertCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.json")})
	assert.Error(t, cmd.Execute())
}

func TestDefaultConvertOutput(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"export.csv", "export.converted.json"},
		{"results.json", "results.converted.json"},
		{"results.json.gz", "results.converted.json"},
		{"results.json.zst", "results.converted.json"},
		{"dir/data.csv", "dir/data.converted.json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, defaultConvertOutput(tt.input), tt.input)
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Message: "input.json: 2 validation problem(s)"}
	assert.Equal(t, "input.json: 2 validation problem(s)", err.Error())

	var target *ValidationError
	assert.True(t, errors.As(error(err), &target))
	assert.False(t, errors.As(errors.New("other"), &target))
}
