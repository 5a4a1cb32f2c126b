package explore

import (
	"testing"

	"github.com/pitehu/simbench/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAggregates() []*models.QuestionAggregate {
	return []*models.QuestionAggregate{
		{DatasetName: "OpinionQA", QuestionText: "Is an analogy a kind of argument?",
			Subset: "SimBenchPop", Agreement: models.AgreementHigh},
		{DatasetName: "OpinionQA", QuestionText: "Should voting be mandatory?",
			Subset: "SimBenchGrouped", Agreement: models.AgreementLow},
		{DatasetName: "ESS", QuestionText: "An ANALOGY question about trust",
			Subset: "SimBenchPop", Agreement: models.AgreementMedium},
		{DatasetName: "MoralMachine", QuestionText: "Trolley variant 4",
			Agreement: models.AgreementUnknown},
	}
}

func TestFilter_NoCriteriaReturnsInputUnchanged(t *testing.T) {
	aggs := sampleAggregates()
	got := Filter(aggs, Criteria{})
	require.Len(t, got, len(aggs))
	for i := range aggs {
		assert.Same(t, aggs[i], got[i])
	}
}

func TestFilter_Conjunction(t *testing.T) {
	aggs := sampleAggregates()
	got := Filter(aggs, Criteria{Dataset: "OpinionQA", Search: "analogy"})
	require.Len(t, got, 1)
	assert.Equal(t, "Is an analogy a kind of argument?", got[0].QuestionText)
}

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	aggs := sampleAggregates()
	got := Filter(aggs, Criteria{Search: "analogy"})
	require.Len(t, got, 2)
	// Relative input order is preserved.
	assert.Equal(t, "OpinionQA", got[0].DatasetName)
	assert.Equal(t, "ESS", got[1].DatasetName)
}

func TestFilter_SearchMatchesQuestionTextOnly(t *testing.T) {
	aggs := []*models.QuestionAggregate{
		{QuestionText: "plain question", SystemPrompt: "you are from Kenya",
			Responses: []models.ModelResponse{{Model: "Kenya-model"}}},
	}
	assert.Empty(t, Filter(aggs, Criteria{Search: "Kenya"}))
}

func TestFilter_SubsetAbsentFails(t *testing.T) {
	aggs := sampleAggregates()
	got := Filter(aggs, Criteria{Subset: "SimBenchPop"})
	require.Len(t, got, 2)
	// The MoralMachine aggregate has no subset and is excluded.
	for _, agg := range got {
		assert.Equal(t, "SimBenchPop", agg.Subset)
	}
}

func TestFilter_Agreement(t *testing.T) {
	aggs := sampleAggregates()
	got := Filter(aggs, Criteria{Agreement: "Low"})
	require.Len(t, got, 1)
	assert.Equal(t, "Should voting be mandatory?", got[0].QuestionText)
}

func TestFilter_NoMatches(t *testing.T) {
	got := Filter(sampleAggregates(), Criteria{Dataset: "Jester"})
	assert.Empty(t, got)
}
