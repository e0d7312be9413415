package service

import "strings"

// complexKeywords mark queries that need document retrieval (policy detail,
// schedules, terms) rather than a plain template answer.
var complexKeywords = []string{
	"policy", "breakdown", "schedule", "penalty", "detailed",
	"clause", "terms", "grievance", "ombudsman", "redressal",
	"billing cycle", "late payment", "cash withdrawal", "digital",
	"limit", "cooling period",
}

// IsComplex reports whether the query contains any complex-query keyword
// (case-insensitive containment).
func IsComplex(query string) bool {
	q := strings.ToLower(query)
	for _, kw := range complexKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
