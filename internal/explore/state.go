package explore

import (
	"github.com/pitehu/simbench/internal/aggregate"
	"github.com/pitehu/simbench/internal/models"
)

// DefaultPageSize matches the explorer's default items-per-page control.
const DefaultPageSize = 25

// State holds everything the explorer needs between interactions: the
// aggregation result, the active criteria, sort key, pagination settings,
// and the model selection. It replaces the module-scope globals of the
// original page with an explicit value passed through the pipeline.
//
// Interaction methods re-run the pipeline from the affected stage and
// replace the derived projection wholesale. State is not safe for concurrent
// mutation; each request or event loop owns its own instance.
type State struct {
	result *aggregate.Result

	criteria Criteria
	sortKey  SortKey
	pageSize int
	page     int
	selected Selection

	// filtered is the current filtered+sorted projection. It holds only
	// references into the aggregation result.
	filtered []*models.QuestionAggregate
}

// NewState creates explorer state over an aggregation result with the
// default sort (original order), page size, first page, and the reference
// model pre-selected.
func NewState(result *aggregate.Result) *State {
	s := &State{
		result:   result,
		sortKey:  SortIndex,
		pageSize: DefaultPageSize,
		page:     1,
		selected: DefaultSelection(result.Models),
	}
	s.project()
	return s
}

// project recomputes the filtered+sorted projection from the aggregates.
func (s *State) project() {
	s.filtered = Sort(Filter(s.result.Questions, s.criteria), s.sortKey)
}

// SetCriteria replaces the filter criteria and resets to the first page.
func (s *State) SetCriteria(c Criteria) {
	s.criteria = c
	s.page = 1
	s.project()
}

// SetSort replaces the sort key and resets to the first page.
func (s *State) SetSort(key SortKey) {
	s.sortKey = key
	s.page = 1
	s.project()
}

// SetPage moves to the given 1-based page. Out-of-range values are clamped
// when the view is produced.
func (s *State) SetPage(n int) {
	s.page = n
}

// SetPageSize changes the items-per-page and resets to the first page.
func (s *State) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	s.pageSize = size
	s.page = 1
}

// SetSelection replaces the model selection.
func (s *State) SetSelection(sel Selection) {
	s.selected = sel
}

// SelectAll selects every model observed in the data.
func (s *State) SelectAll() {
	s.selected = NewSelection(s.result.Models)
}

// DeselectAll clears the model selection.
func (s *State) DeselectAll() {
	s.selected = Selection{}
}

// Selection returns the current model selection.
func (s *State) Selection() Selection {
	return s.selected
}

// Criteria returns the active filter criteria.
func (s *State) Criteria() Criteria {
	return s.criteria
}

// View is the transient projection handed to a presentation adapter: one
// page of aggregates plus the page arithmetic and the selected model set.
type View struct {
	Questions  []*models.QuestionAggregate
	Page       int
	PageSize   int
	TotalPages int
	// TotalItems is the filtered count before pagination.
	TotalItems int
	Selected   Selection
}

// View produces the current page over the filtered, sorted aggregates.
func (s *State) View() View {
	page := Paginate(s.filtered, s.pageSize, s.page)
	// Keep the clamped page so prev/next navigation stays consistent.
	s.page = page.PageNumber
	return View{
		Questions:  page.Items,
		Page:       page.PageNumber,
		PageSize:   s.pageSize,
		TotalPages: page.TotalPages,
		TotalItems: len(s.filtered),
		Selected:   s.selected,
	}
}
