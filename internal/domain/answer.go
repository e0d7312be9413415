package domain

// AnswerSource identifies which tier of the pipeline produced an answer.
type AnswerSource string

const (
	SourceDataset   AnswerSource = "dataset"
	SourceRetrieval AnswerSource = "retrieval"
	SourceAssistant AnswerSource = "assistant"
	SourceBlocked   AnswerSource = "blocked"
	SourceRejected  AnswerSource = "rejected"
)

// Answer is the single terminal result of resolving a query. It is produced
// fresh per query and never persisted.
type Answer struct {
	Text       string       `json:"text"`
	Source     AnswerSource `json:"source"`
	Confidence *float64     `json:"confidence"`
	Disclaimer string       `json:"disclaimer,omitempty"`
}

// NewAnswer creates an Answer with a confidence score.
func NewAnswer(text string, source AnswerSource, confidence float64, disclaimer string) Answer {
	return Answer{
		Text:       text,
		Source:     source,
		Confidence: &confidence,
		Disclaimer: disclaimer,
	}
}

// NewAnswerNoConfidence creates an Answer without a confidence score
// (template fallback and guardrail outcomes).
func NewAnswerNoConfidence(text string, source AnswerSource, disclaimer string) Answer {
	return Answer{
		Text:       text,
		Source:     source,
		Confidence: nil,
		Disclaimer: disclaimer,
	}
}

// isValidAnswerSource checks if an AnswerSource is one of the known tiers.
func isValidAnswerSource(s AnswerSource) bool {
	switch s {
	case SourceDataset, SourceRetrieval, SourceAssistant, SourceBlocked, SourceRejected:
		return true
	}
	return false
}

// ValidateAnswer validates an Answer instance.
func ValidateAnswer(a *Answer) error {
	if a == nil {
		return NewDomainError(ErrCodeValidation, "answer cannot be nil")
	}
	if a.Text == "" {
		return NewDomainError(ErrCodeValidation, "answer text is required")
	}
	if !isValidAnswerSource(a.Source) {
		return NewDomainError(ErrCodeValidation, "answer source is invalid: "+string(a.Source))
	}
	if a.Confidence != nil && (*a.Confidence < 0 || *a.Confidence > 1) {
		return NewDomainError(ErrCodeValidation, "answer confidence must be in [0,1]")
	}
	return nil
}
