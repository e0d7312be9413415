package domain

// CategoryTemplate is one entry of the fixed response catalog: a keyword set
// and the canned response returned when the category wins keyword scoring.
// Catalog declaration order is significant (deterministic tie-breaking).
type CategoryTemplate struct {
	CategoryID string
	Keywords   []string
	Response   string
}

// ValidateCategoryTemplate validates a CategoryTemplate instance.
func ValidateCategoryTemplate(t *CategoryTemplate) error {
	if t == nil {
		return NewDomainError(ErrCodeValidation, "category template cannot be nil")
	}
	if t.CategoryID == "" {
		return NewDomainError(ErrCodeValidation, "category template ID is required")
	}
	if len(t.Keywords) == 0 {
		return NewDomainError(ErrCodeValidation, "category template keywords are required")
	}
	if t.Response == "" {
		return NewDomainError(ErrCodeValidation, "category template response is required")
	}
	return nil
}
