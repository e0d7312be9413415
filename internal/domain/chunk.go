package domain

// DocumentChunk is a fixed-size overlapping text window extracted from a
// corpus document, the unit of retrieval for Tier 3.
type DocumentChunk struct {
	Text      string
	SourceID  string
	Embedding []float32
}

// ScoredChunk pairs a chunk with its similarity score for a query.
type ScoredChunk struct {
	Chunk DocumentChunk
	Score float64
}

// ValidateDocumentChunk validates a DocumentChunk instance.
func ValidateDocumentChunk(c *DocumentChunk) error {
	if c == nil {
		return NewDomainError(ErrCodeValidation, "document chunk cannot be nil")
	}
	if c.Text == "" {
		return NewDomainError(ErrCodeValidation, "document chunk text is required")
	}
	if c.SourceID == "" {
		return NewDomainError(ErrCodeValidation, "document chunk source ID is required")
	}
	return nil
}
