package respond

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponder(t *testing.T) {
	r, err := NewResponder()
	require.NoError(t, err)
	assert.Len(t, r.Categories(), 15)
	assert.Equal(t, "loan_eligibility", r.Categories()[0])
}

func TestRespondCategoryMatch(t *testing.T) {
	r, err := NewResponder()
	require.NoError(t, err)

	tests := []struct {
		name     string
		query    string
		category string
	}{
		{"LoanEligibility", "Am I eligible for a home loan?", "loan_eligibility"},
		{"EMI", "How is my EMI calculated?", "emi"},
		{"CreditScore", "What is a good CIBIL score?", "credit_score"},
		{"Card", "My debit card is lost", "card"},
		{"Complaint", "I want to register a complaint about my branch", "complaint"},
		{"InsuranceClaim", "What is my claim status after settlement?", "insurance_claim"},
		{"FDRD", "What are the fixed deposit rates?", "fd_rd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, category := r.Respond(tt.query)
			assert.Equal(t, tt.category, category)
			assert.NotEmpty(t, text)
		})
	}
}

func TestRespondNoMatch(t *testing.T) {
	r, err := NewResponder()
	require.NoError(t, err)

	text, category := r.Respond("zxqw completely unrelated gibberish")
	assert.Equal(t, DefaultGuidance, text)
	assert.Empty(t, category)
}

func TestRespondHighestKeywordCountWins(t *testing.T) {
	r, err := newFromYAML([]byte(`
- id: first
  keywords: [alpha]
  response: first response
- id: second
  keywords: [alpha, beta]
  response: second response
`))
	require.NoError(t, err)

	// Two keyword hits beat one.
	text, category := r.Respond("alpha and beta together")
	assert.Equal(t, "second", category)
	assert.Equal(t, "second response", text)
}

func TestRespondTieBreaksToEarliestCategory(t *testing.T) {
	r, err := newFromYAML([]byte(`
- id: first
  keywords: [alpha]
  response: first response
- id: second
  keywords: [alpha]
  response: second response
`))
	require.NoError(t, err)

	// Equal scores resolve to the earliest declared category.
	_, category := r.Respond("alpha")
	assert.Equal(t, "first", category)
}

func TestRespondCaseInsensitive(t *testing.T) {
	r, err := NewResponder()
	require.NoError(t, err)

	_, lower := r.Respond("what is my emi")
	_, upper := r.Respond("WHAT IS MY EMI")
	assert.Equal(t, lower, upper)
	assert.Equal(t, "emi", lower)
}

func TestMixedCaseCatalogKeywords(t *testing.T) {
	r, err := newFromYAML([]byte(`
- id: emi
  keywords: [EMI, Monthly Payment]
  response: emi response
`))
	require.NoError(t, err)

	text, category := r.Respond("what is my emi")
	assert.Equal(t, "emi", category)
	assert.Equal(t, "emi response", text)

	_, category = r.Respond("MONTHLY PAYMENT schedule")
	assert.Equal(t, "emi", category)
}

func TestNewFromYAMLRejectsBadCatalog(t *testing.T) {
	_, err := newFromYAML([]byte("not: [valid"))
	assert.Error(t, err)

	_, err = newFromYAML([]byte("[]"))
	assert.Error(t, err)

	_, err = newFromYAML([]byte(`
- id: ""
  keywords: [x]
  response: r
`))
	assert.Error(t, err)
}
