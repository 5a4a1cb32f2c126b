package models

// ModelResponse is one model's answer distribution for a question, nested in
// a QuestionAggregate. Divergence is computed at aggregation time against the
// aggregate's human distribution.
type ModelResponse struct {
	Model         string       `json:"model"`
	Distribution  Distribution `json:"distribution"`
	Score         float64      `json:"score"`
	Divergence    float64      `json:"divergence"`
	OriginalIndex int          `json:"originalIndex"`
}

// QuestionAggregate groups every model response recorded for one distinct
// question instance. Identity fields are copied from the first raw record
// seen for the question's (text, system prompt, dataset) key.
type QuestionAggregate struct {
	DatasetName   string          `json:"dataset"`
	QuestionText  string          `json:"question"`
	SystemPrompt  string          `json:"systemPrompt"`
	Subset        string          `json:"subset"`
	Entropy       *float64        `json:"humanEntropy,omitempty"`
	Agreement     AgreementLevel  `json:"agreement"`
	HumanAnswer   Distribution    `json:"humanAnswer"`
	AnswerOptions []string        `json:"answerOptions,omitempty"`
	GroupSize     int             `json:"groupSize,omitempty"`
	Responses     []ModelResponse `json:"responses"`
}

// EntropyOrZero returns the human normalized entropy, treating absent as 0.
func (q *QuestionAggregate) EntropyOrZero() float64 {
	if q.Entropy == nil {
		return 0
	}
	return *q.Entropy
}
