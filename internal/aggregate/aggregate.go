// Package aggregate groups flat result records into per-question aggregates,
// computing each model response's divergence from the human distribution as
// it goes.
package aggregate

import (
	"sort"
	"strings"

	"github.com/pitehu/simbench/internal/metrics"
	"github.com/pitehu/simbench/internal/models"
)

// keySep joins the components of a question's grouping key. Record fields
// never contain it.
const keySep = "|||"

// Result holds the derived aggregates plus the distinct model and subset
// values observed across the input, both sorted ascending. The distinct sets
// feed the explorer's filter and model-selection controls.
type Result struct {
	Questions []*models.QuestionAggregate
	Models    []string
	Subsets   []string
}

// Aggregate groups records by (question text, system prompt, dataset name)
// and attaches one ModelResponse per record to the matching aggregate.
//
// Aggregates appear in the order their key is first seen. Identity fields,
// including the human distribution that divergence is computed against, come
// from the first record of each key; later records sharing the key do not
// update them. Duplicate (question, model) pairs are kept as separate
// responses. Input records are not mutated.
func Aggregate(records []models.RawRecord) *Result {
	byKey := make(map[string]*models.QuestionAggregate)
	modelSet := make(map[string]struct{})
	subsetSet := make(map[string]struct{})

	res := &Result{}
	for i := range records {
		rec := &records[i]

		key := strings.Join([]string{rec.QuestionText, rec.SystemPrompt, rec.DatasetName}, keySep)
		agg, ok := byKey[key]
		if !ok {
			agg = &models.QuestionAggregate{
				DatasetName:   rec.DatasetName,
				QuestionText:  rec.QuestionText,
				SystemPrompt:  rec.SystemPrompt,
				Subset:        rec.Subset,
				Entropy:       rec.Entropy,
				Agreement:     rec.Agreement,
				HumanAnswer:   rec.HumanAnswer,
				AnswerOptions: rec.AnswerOptions,
				GroupSize:     rec.GroupSize,
			}
			byKey[key] = agg
			res.Questions = append(res.Questions, agg)
		}

		agg.Responses = append(agg.Responses, models.ModelResponse{
			Model:         rec.Model,
			Distribution:  rec.ModelAnswer,
			Score:         rec.ScoreOrZero(),
			Divergence:    metrics.KLDivergence(agg.HumanAnswer, rec.ModelAnswer),
			OriginalIndex: i,
		})

		if rec.Model != "" {
			modelSet[rec.Model] = struct{}{}
		}
		if rec.Subset != "" {
			subsetSet[rec.Subset] = struct{}{}
		}
	}

	for _, agg := range res.Questions {
		responses := agg.Responses
		sort.SliceStable(responses, func(i, j int) bool {
			return responses[i].Model < responses[j].Model
		})
	}

	res.Models = sortedKeys(modelSet)
	res.Subsets = sortedKeys(subsetSet)
	return res
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
