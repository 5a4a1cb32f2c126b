package explore

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pitehu/simbench/internal/metrics"
	"github.com/pitehu/simbench/internal/models"
)

// SortKey selects the ordering of the filtered aggregate list.
type SortKey string

const (
	// SortIndex keeps the current (aggregation) order.
	SortIndex       SortKey = "index"
	SortScoreDesc   SortKey = "score-desc"
	SortScoreAsc    SortKey = "score-asc"
	SortEntropyAsc  SortKey = "entropy-asc"
	SortEntropyDesc SortKey = "entropy-desc"
	SortDataset     SortKey = "dataset"
)

// ParseSortKey maps a raw string to a SortKey, defaulting to SortIndex.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortScoreDesc, SortScoreAsc, SortEntropyAsc, SortEntropyDesc, SortDataset:
		return SortKey(s)
	default:
		return SortIndex
	}
}

// datasetCollator orders dataset names with locale-aware collation.
var datasetCollator = collate.New(language.English)

// Sort returns a new ordering of the aggregates for the given key. The input
// slice is not mutated. All non-index sorts are stable: aggregates with equal
// keys retain their prior relative order.
//
// Score sorts use the mean score across all of an aggregate's responses,
// selected or not; an aggregate without responses sorts as mean 0. Entropy
// sorts treat an absent entropy as 0.
func Sort(aggs []*models.QuestionAggregate, key SortKey) []*models.QuestionAggregate {
	if key == SortIndex {
		return aggs
	}

	out := make([]*models.QuestionAggregate, len(aggs))
	copy(out, aggs)

	var less func(i, j int) bool
	switch key {
	case SortScoreDesc:
		less = func(i, j int) bool { return MeanScore(out[i]) > MeanScore(out[j]) }
	case SortScoreAsc:
		less = func(i, j int) bool { return MeanScore(out[i]) < MeanScore(out[j]) }
	case SortEntropyAsc:
		less = func(i, j int) bool { return out[i].EntropyOrZero() < out[j].EntropyOrZero() }
	case SortEntropyDesc:
		less = func(i, j int) bool { return out[i].EntropyOrZero() > out[j].EntropyOrZero() }
	case SortDataset:
		less = func(i, j int) bool {
			return datasetCollator.CompareString(out[i].DatasetName, out[j].DatasetName) < 0
		}
	}

	sort.SliceStable(out, less)
	return out
}

// MeanScore is the mean benchmark score over every response of an aggregate.
// Returns 0 for an aggregate without responses.
func MeanScore(agg *models.QuestionAggregate) float64 {
	scores := make([]float64, 0, len(agg.Responses))
	for _, r := range agg.Responses {
		scores = append(scores, r.Score)
	}
	return metrics.Mean(scores)
}
