// Package explore implements the interactive pipeline over question
// aggregates: filtering, sorting, pagination, model selection, and the
// explorer state that ties them together. Every stage is a pure function
// over its inputs; projections are replaced wholesale, never patched.
package explore

import (
	"strings"

	"github.com/pitehu/simbench/internal/models"
)

// Criteria are the filter axes of the explorer. Each axis is optional (empty
// string = no constraint) and the axes combine with logical AND.
type Criteria struct {
	// Dataset matches QuestionAggregate.DatasetName exactly.
	Dataset string
	// Subset matches QuestionAggregate.Subset exactly. Aggregates without a
	// subset value fail this axis when it is set.
	Subset string
	// Agreement matches the aggregate's agreement level exactly.
	Agreement string
	// Search is a case-insensitive substring match against the question text
	// only, not the system prompt or model names.
	Search string
}

// IsZero reports whether no axis is constrained.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Matches reports whether a single aggregate satisfies every set axis.
func (c Criteria) Matches(agg *models.QuestionAggregate) bool {
	if c.Dataset != "" && agg.DatasetName != c.Dataset {
		return false
	}
	if c.Subset != "" && agg.Subset != c.Subset {
		return false
	}
	if c.Agreement != "" && string(agg.Agreement) != c.Agreement {
		return false
	}
	if c.Search != "" {
		if !strings.Contains(strings.ToLower(agg.QuestionText), strings.ToLower(c.Search)) {
			return false
		}
	}
	return true
}

// Filter returns the aggregates satisfying the criteria, preserving relative
// input order. With zero criteria the input slice is returned as is.
func Filter(aggs []*models.QuestionAggregate, c Criteria) []*models.QuestionAggregate {
	if c.IsZero() {
		return aggs
	}
	var out []*models.QuestionAggregate
	for _, agg := range aggs {
		if c.Matches(agg) {
			out = append(out, agg)
		}
	}
	return out
}
