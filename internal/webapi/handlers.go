package webapi

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/pitehu/simbench/internal/explore"
	"github.com/pitehu/simbench/internal/models"
)

// Version is set at build time or defaults to dev.
var Version = "dev"

// Defaults carries the configured explorer defaults applied when a request
// omits the corresponding query parameter.
type Defaults struct {
	PageSize int
	Sort     string
}

// Handlers holds the HTTP handler methods for the explorer API.
type Handlers struct {
	store    Store
	defaults Defaults
}

// NewHandlers creates a new Handlers with the given store and defaults.
func NewHandlers(store Store, defaults Defaults) *Handlers {
	return &Handlers{store: store, defaults: defaults}
}

// HandleHealth returns a simple health check response.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}

// HandleMeta returns the filter-control vocabulary for the loaded data.
func (h *Handlers) HandleMeta(w http.ResponseWriter, _ *http.Request) {
	res, err := h.store.Result()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	datasets := make(map[string]struct{})
	for _, q := range res.Questions {
		if q.DatasetName != "" {
			datasets[q.DatasetName] = struct{}{}
		}
	}
	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)

	selected := explore.DefaultSelection(res.Models).Names()
	sort.Strings(selected)

	writeJSON(w, http.StatusOK, MetaResponse{
		Datasets: names,
		Subsets:  res.Subsets,
		Models:   res.Models,
		Agreements: []string{
			string(models.AgreementHigh), string(models.AgreementMedium),
			string(models.AgreementLow), string(models.AgreementUnknown),
		},
		DefaultSelected: selected,
		Synthetic:       h.store.Synthetic(),
	})
}

// HandleSummary returns aggregate KPI metrics across all records.
func (h *Handlers) HandleSummary(w http.ResponseWriter, _ *http.Request) {
	summary, err := h.store.Summary()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// HandleQuestions runs the explorer pipeline for one request: filter, sort,
// paginate, then intersect each page entry's responses with the selected
// models. All parameters are optional; out-of-range pages clamp.
//
// Query parameters: dataset, subset, agreement, q (search), sort, page,
// per_page, models (comma-separated; present-but-empty means none selected).
func (h *Handlers) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	res, err := h.store.Result()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	query := r.URL.Query()
	st := explore.NewState(res)
	st.SetCriteria(explore.Criteria{
		Dataset:   filterValue(query.Get("dataset")),
		Subset:    filterValue(query.Get("subset")),
		Agreement: filterValue(query.Get("agreement")),
		Search:    query.Get("q"),
	})
	sortParam := query.Get("sort")
	if sortParam == "" {
		sortParam = h.defaults.Sort
	}
	st.SetSort(explore.ParseSortKey(sortParam))

	if h.defaults.PageSize > 0 {
		st.SetPageSize(h.defaults.PageSize)
	}
	if v, err := strconv.Atoi(query.Get("per_page")); err == nil && v > 0 {
		st.SetPageSize(v)
	}
	if v, err := strconv.Atoi(query.Get("page")); err == nil {
		st.SetPage(v)
	}

	if query.Has("models") {
		st.SetSelection(parseModelsParam(query.Get("models")))
	}

	view := st.View()

	items := make([]QuestionCard, 0, len(view.Questions))
	for _, agg := range view.Questions {
		responses := explore.SelectedResponses(agg, view.Selected)
		if responses == nil {
			responses = []models.ModelResponse{}
		}
		items = append(items, QuestionCard{
			Dataset:       agg.DatasetName,
			Question:      agg.QuestionText,
			SystemPrompt:  agg.SystemPrompt,
			Subset:        agg.Subset,
			Agreement:     agg.Agreement,
			HumanEntropy:  agg.Entropy,
			HumanAnswer:   agg.HumanAnswer,
			AnswerOptions: agg.AnswerOptions,
			GroupSize:     agg.GroupSize,
			MeanScore:     explore.MeanScore(agg),
			Responses:     responses,
		})
	}

	selected := view.Selected.Names()
	sort.Strings(selected)

	writeJSON(w, http.StatusOK, QuestionsResponse{
		Items:      items,
		Page:       view.Page,
		PerPage:    view.PageSize,
		TotalPages: view.TotalPages,
		TotalItems: view.TotalItems,
		Selected:   selected,
	})
}

// filterValue normalizes a filter query parameter; the UI sends "all" for an
// unconstrained axis.
func filterValue(v string) string {
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}

// parseModelsParam splits a comma-separated model list. An empty value is an
// explicit empty selection, distinct from the parameter being absent.
func parseModelsParam(v string) explore.Selection {
	if strings.TrimSpace(v) == "" {
		return explore.Selection{}
	}
	parts := strings.Split(v, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return explore.NewSelection(names)
}

// RegisterRoutes registers all explorer API routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, store Store, defaults Defaults) {
	h := NewHandlers(store, defaults)
	mux.HandleFunc("GET /api/health", h.HandleHealth)
	mux.HandleFunc("GET /api/meta", h.HandleMeta)
	mux.HandleFunc("GET /api/summary", h.HandleSummary)
	mux.HandleFunc("GET /api/questions", h.HandleQuestions)
}

// CORSMiddleware wraps a handler with CORS headers.
// If allowedOrigins is empty, no CORS header is set (same-origin only).
// Otherwise, the request Origin is checked against the allowed list.
func CORSMiddleware(next http.Handler, allowedOrigins ...string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if len(allowedOrigins) > 0 && origin != "" && allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg, Code: code})
}
