package explore

import (
	"strings"

	"github.com/pitehu/simbench/internal/models"
)

// referenceModelSubstrings identify the reference model variant that starts
// pre-selected. A model is the reference when its name contains all of them,
// case-insensitively.
var referenceModelSubstrings = []string{"gpt", "4", ".1"}

// Selection is the set of currently-selected model names.
type Selection map[string]bool

// NewSelection builds a Selection from an explicit list of model names.
func NewSelection(names []string) Selection {
	sel := make(Selection, len(names))
	for _, n := range names {
		sel[n] = true
	}
	return sel
}

// DefaultSelection pre-selects exactly the models whose name matches the
// reference model variant; all others start unselected.
func DefaultSelection(modelNames []string) Selection {
	sel := Selection{}
	for _, name := range modelNames {
		if isReferenceModel(name) {
			sel[name] = true
		}
	}
	return sel
}

func isReferenceModel(name string) bool {
	lower := strings.ToLower(name)
	for _, sub := range referenceModelSubstrings {
		if !strings.Contains(lower, sub) {
			return false
		}
	}
	return true
}

// Names returns the selected model names in unspecified order; callers
// needing a stable order should sort the result.
func (s Selection) Names() []string {
	names := make([]string, 0, len(s))
	for name, on := range s {
		if on {
			names = append(names, name)
		}
	}
	return names
}

// SelectedResponses filters an aggregate's responses down to the selected
// models, preserving the aggregate's (name-sorted) response order. An empty
// selection yields an empty slice; the aggregate itself is untouched.
func SelectedResponses(agg *models.QuestionAggregate, sel Selection) []models.ModelResponse {
	var out []models.ModelResponse
	for _, r := range agg.Responses {
		if sel[r.Model] {
			out = append(out, r)
		}
	}
	return out
}
