package domain

// KnowledgeEntry is one curated instruction→answer pair from the dataset
// artifact. Entries are immutable after load; collection order is the
// insertion order of the source artifact.
type KnowledgeEntry struct {
	Instruction string
	Input       string
	Answer      string
	Embedding   []float32
}

// MatchText returns the text that the entry is matched against: the
// instruction, plus the reserved input field when present.
func (e *KnowledgeEntry) MatchText() string {
	if e.Input == "" {
		return e.Instruction
	}
	return e.Instruction + " " + e.Input
}

// ValidateKnowledgeEntry validates a KnowledgeEntry instance.
func ValidateKnowledgeEntry(e *KnowledgeEntry) error {
	if e == nil {
		return NewDomainError(ErrCodeValidation, "knowledge entry cannot be nil")
	}
	if e.Instruction == "" {
		return NewDomainError(ErrCodeValidation, "knowledge entry instruction is required")
	}
	if e.Answer == "" {
		return NewDomainError(ErrCodeValidation, "knowledge entry answer is required")
	}
	return nil
}
