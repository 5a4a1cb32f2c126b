package webapi

import "github.com/pitehu/simbench/internal/models"

// QuestionCard is the API shape of one question aggregate on the current
// page. Responses are already filtered down to the selected models; an empty
// list renders as an empty card client-side.
type QuestionCard struct {
	Dataset       string                 `json:"dataset"`
	Question      string                 `json:"question"`
	SystemPrompt  string                 `json:"systemPrompt,omitempty"`
	Subset        string                 `json:"subset,omitempty"`
	Agreement     models.AgreementLevel  `json:"agreement"`
	HumanEntropy  *float64               `json:"humanEntropy,omitempty"`
	HumanAnswer   models.Distribution    `json:"humanAnswer"`
	AnswerOptions []string               `json:"answerOptions,omitempty"`
	GroupSize     int                    `json:"groupSize,omitempty"`
	MeanScore     float64                `json:"meanScore"`
	Responses     []models.ModelResponse `json:"responses"`
}

// QuestionsResponse is one page of the filtered, sorted explorer view.
type QuestionsResponse struct {
	Items      []QuestionCard `json:"items"`
	Page       int            `json:"page"`
	PerPage    int            `json:"perPage"`
	TotalPages int            `json:"totalPages"`
	TotalItems int            `json:"totalItems"`
	Selected   []string       `json:"selected"`
}

// MetaResponse carries the filter-control vocabulary: every distinct value
// observed in the loaded data, plus the default model selection.
type MetaResponse struct {
	Datasets        []string `json:"datasets"`
	Subsets         []string `json:"subsets"`
	Models          []string `json:"models"`
	Agreements      []string `json:"agreements"`
	DefaultSelected []string `json:"defaultSelected"`
	Synthetic       bool     `json:"synthetic"`
}

// ModelSummary is the per-model aggregate block of the summary response.
type ModelSummary struct {
	Model          string  `json:"model"`
	Responses      int     `json:"responses"`
	MeanScore      float64 `json:"meanScore"`
	MedianScore    float64 `json:"medianScore"`
	ScoreStdDev    float64 `json:"scoreStdDev"`
	MeanDivergence float64 `json:"meanDivergence"`
}

// SummaryResponse is the aggregate KPI response.
type SummaryResponse struct {
	TotalQuestions int            `json:"totalQuestions"`
	TotalResponses int            `json:"totalResponses"`
	Datasets       int            `json:"datasets"`
	Models         []ModelSummary `json:"models"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is returned for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
