package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitehu/simbench/internal/dataset"
	"github.com/pitehu/simbench/internal/webapi"
)

func TestStatsCommand_FromFile(t *testing.T) {
	input := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, dataset.WriteFile(input, dataset.Sample(30, 1)))

	var out, errOut bytes.Buffer
	cmd := newStatsCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{input})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "MODEL STATISTICS")
	assert.Contains(t, out.String(), "30 responses")
	assert.Empty(t, errOut.String())
}

func TestStatsCommand_FallsBackToSample(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newStatsCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.json")})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, errOut.String(), "generated sample data")
	assert.Contains(t, out.String(), "MODEL STATISTICS")
}

func TestPrintSummaryTable_Alignment(t *testing.T) {
	summary := &webapi.SummaryResponse{
		TotalQuestions: 2,
		TotalResponses: 4,
		Datasets:       1,
		Models: []webapi.ModelSummary{
			{Model: "a-model-with-a-very-long-name-that-should-be-truncated-here", Responses: 2, MeanScore: 80},
			{Model: "short", Responses: 2, MeanScore: 60.5, MedianScore: 60.5},
		},
	}

	var buf bytes.Buffer
	printSummaryTable(&buf, summary)

	assert.Contains(t, buf.String(), "…")
	assert.Contains(t, buf.String(), "60.50")
	assert.Contains(t, buf.String(), "2 questions, 4 responses, 1 dataset(s)")
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", truncateName("short", 10))
	assert.Equal(t, "exact", truncateName("exact", 5))
	assert.Equal(t, "long…", truncateName("longer", 5))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 5))
}
