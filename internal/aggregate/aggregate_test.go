package aggregate

import (
	"testing"

	"github.com/pitehu/simbench/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(dataset, question, sysPrompt, model string, score float64) models.RawRecord {
	return models.RawRecord{
		DatasetName:  dataset,
		QuestionText: question,
		SystemPrompt: sysPrompt,
		Model:        model,
		Score:        &score,
		HumanAnswer:  models.Distribution{"A": 0.7, "B": 0.3},
		ModelAnswer:  models.Distribution{"A": 0.6, "B": 0.4},
	}
}

func TestAggregate_GroupsByQuestionKey(t *testing.T) {
	records := []models.RawRecord{
		record("OpinionQA", "Q1", "sys", "ModelA", 80),
		record("OpinionQA", "Q1", "sys", "ModelB", 60),
	}
	res := Aggregate(records)
	require.Len(t, res.Questions, 1)
	assert.Len(t, res.Questions[0].Responses, 2)
}

func TestAggregate_ResponsesSortedByModelName(t *testing.T) {
	records := []models.RawRecord{
		record("OpinionQA", "Q1", "sys", "Zeta", 80),
		record("OpinionQA", "Q1", "sys", "Alpha", 60),
	}
	res := Aggregate(records)
	require.Len(t, res.Questions, 1)
	responses := res.Questions[0].Responses
	require.Len(t, responses, 2)
	assert.Equal(t, "Alpha", responses[0].Model)
	assert.Equal(t, "Zeta", responses[1].Model)
	// Original positions survive the name sort.
	assert.Equal(t, 1, responses[0].OriginalIndex)
	assert.Equal(t, 0, responses[1].OriginalIndex)
}

func TestAggregate_FirstSeenOrderAndIdentity(t *testing.T) {
	e1, e2 := 0.2, 0.9
	records := []models.RawRecord{
		{DatasetName: "ESS", QuestionText: "Q2", Entropy: &e1,
			HumanAnswer: models.Distribution{"A": 1.0}, Model: "M1"},
		{DatasetName: "OpinionQA", QuestionText: "Q1", Model: "M1"},
		// Same key as the first record, but a different human distribution
		// and entropy. First seen wins.
		{DatasetName: "ESS", QuestionText: "Q2", Entropy: &e2,
			HumanAnswer: models.Distribution{"B": 1.0}, Model: "M2"},
	}
	res := Aggregate(records)
	require.Len(t, res.Questions, 2)
	assert.Equal(t, "ESS", res.Questions[0].DatasetName)
	assert.Equal(t, "OpinionQA", res.Questions[1].DatasetName)
	assert.Equal(t, e1, *res.Questions[0].Entropy)
	assert.Equal(t, models.Distribution{"A": 1.0}, res.Questions[0].HumanAnswer)
}

func TestAggregate_DuplicateModelKept(t *testing.T) {
	records := []models.RawRecord{
		record("DS", "Q1", "", "ModelA", 80),
		record("DS", "Q1", "", "ModelA", 90),
	}
	res := Aggregate(records)
	require.Len(t, res.Questions, 1)
	// Grouping is by question only, so both responses survive.
	require.Len(t, res.Questions[0].Responses, 2)
	assert.Equal(t, 80.0, res.Questions[0].Responses[0].Score)
	assert.Equal(t, 90.0, res.Questions[0].Responses[1].Score)
}

func TestAggregate_MissingFieldsCollapseToSharedKey(t *testing.T) {
	records := []models.RawRecord{
		{Model: "M1"},
		{Model: "M2"},
	}
	res := Aggregate(records)
	require.Len(t, res.Questions, 1)
	assert.Len(t, res.Questions[0].Responses, 2)
}

func TestAggregate_DivergenceAgainstFirstSeenHuman(t *testing.T) {
	records := []models.RawRecord{
		{QuestionText: "Q1", Model: "M1",
			HumanAnswer: models.Distribution{"A": 0.5, "B": 0.5},
			ModelAnswer: models.Distribution{"A": 0.5, "B": 0.5}},
		{QuestionText: "Q1", Model: "M2",
			HumanAnswer: models.Distribution{"A": 1.0},
			ModelAnswer: models.Distribution{"A": 0.1, "B": 0.9}},
	}
	res := Aggregate(records)
	require.Len(t, res.Questions, 1)
	responses := res.Questions[0].Responses
	require.Len(t, responses, 2)
	// M1 matches the aggregate's human distribution exactly.
	assert.InDelta(t, 0, responses[0].Divergence, 1e-9)
	// M2's divergence is measured against the first record's human
	// distribution, not its own.
	assert.Greater(t, responses[1].Divergence, 0.1)
}

func TestAggregate_DistinctModelAndSubsetSets(t *testing.T) {
	records := []models.RawRecord{
		{QuestionText: "Q1", Model: "Zeta", Subset: "SimBenchPop"},
		{QuestionText: "Q2", Model: "Alpha", Subset: "SimBenchGrouped"},
		{QuestionText: "Q3", Model: "Alpha", Subset: "SimBenchPop"},
		{QuestionText: "Q4"},
	}
	res := Aggregate(records)
	assert.Equal(t, []string{"Alpha", "Zeta"}, res.Models)
	assert.Equal(t, []string{"SimBenchGrouped", "SimBenchPop"}, res.Subsets)
}

func TestAggregate_Empty(t *testing.T) {
	res := Aggregate(nil)
	assert.Empty(t, res.Questions)
	assert.Empty(t, res.Models)
	assert.Empty(t, res.Subsets)
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	score := 80.0
	records := []models.RawRecord{
		{DatasetName: "DS", QuestionText: "Q1", Model: "M1", Score: &score},
	}
	before := records[0]
	Aggregate(records)
	assert.Equal(t, before, records[0])
}
