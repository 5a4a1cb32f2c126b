package dataset

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pitehu/simbench/internal/metrics"
	"github.com/pitehu/simbench/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_Deterministic(t *testing.T) {
	a := Sample(20, 42)
	b := Sample(20, 42)
	require.Equal(t, a, b)
}

func TestSample_DifferentSeedsDiffer(t *testing.T) {
	a := Sample(20, 1)
	b := Sample(20, 2)
	assert.NotEqual(t, a, b)
}

func TestSample_DefaultSize(t *testing.T) {
	assert.Len(t, Sample(0, 7), DefaultSampleSize)
	assert.Len(t, Sample(-5, 7), DefaultSampleSize)
}

func TestSample_StructurallyValid(t *testing.T) {
	for _, rec := range Sample(50, 99) {
		assert.NotEmpty(t, rec.DatasetName)
		assert.NotEmpty(t, rec.QuestionText)
		assert.NotEmpty(t, rec.Model)
		assert.NotEmpty(t, rec.Subset)
		require.NotNil(t, rec.Entropy)
		assert.GreaterOrEqual(t, *rec.Entropy, 0.0)
		assert.LessOrEqual(t, *rec.Entropy, 1.0)
		require.NotNil(t, rec.Score)
		assert.LessOrEqual(t, *rec.Score, 100.0)
		assert.NotEqual(t, models.AgreementUnknown, rec.Agreement)
		assert.GreaterOrEqual(t, len(rec.AnswerOptions), 2)
		assert.LessOrEqual(t, len(rec.AnswerOptions), 5)

		require.Len(t, rec.HumanAnswer, len(rec.AnswerOptions))
		require.Len(t, rec.ModelAnswer, len(rec.AnswerOptions))
		assert.InDelta(t, 1.0, sum(rec.HumanAnswer), 1e-9)
		assert.InDelta(t, 1.0, sum(rec.ModelAnswer), 1e-9)
	}
}

func TestSample_AgreementMatchesEntropy(t *testing.T) {
	for _, rec := range Sample(30, 3) {
		want := models.AgreementFromEntropy(*rec.Entropy)
		assert.Equal(t, want, rec.Agreement)
	}
}

func TestSampleCorrelations_CoverEveryModel(t *testing.T) {
	for _, m := range sampleModels {
		assert.Contains(t, sampleCorrelations, m)
	}
}

func TestCorrelatedDistribution_StrongerCorrelationDivergesLess(t *testing.T) {
	options := []string{"A", "B", "C"}
	human := models.Distribution{"A": 0.8, "B": 0.15, "C": 0.05}

	meanKL := func(correlation float64) float64 {
		rng := rand.New(rand.NewSource(9))
		const draws = 500
		total := 0.0
		for i := 0; i < draws; i++ {
			total += metrics.KLDivergence(human, correlatedDistribution(rng, human, options, correlation))
		}
		return total / draws
	}

	assert.Less(t, meanKL(0.95), meanKL(0.3))
}

func sum(d models.Distribution) float64 {
	total := 0.0
	for _, v := range d {
		total += v
	}
	if math.IsNaN(total) {
		return -1
	}
	return total
}
