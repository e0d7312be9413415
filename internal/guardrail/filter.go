// Package guardrail implements the pre-routing safety and domain check.
// Classification is a total function: any input, including the empty string,
// yields a verdict, and the keyword sets are never mutated at runtime.
package guardrail

import "strings"

// Verdict is the outcome of classifying a query.
type Verdict string

const (
	VerdictUnsafe      Verdict = "unsafe"
	VerdictOutOfDomain Verdict = "out_of_domain"
	VerdictPass        Verdict = "pass"
)

// unsafeKeywords flag potentially malicious or illegal requests. The unsafe
// set has the highest precedence and short-circuits everything else.
var unsafeKeywords = []string{
	"hack", "steal", "fraud", "launder", "illegal", "exploit",
	"bypass", "cheat", "fake id", "forge", "counterfeit",
}

// outOfDomainKeywords flag queries outside the BFSI domain.
var outOfDomainKeywords = []string{
	"recipe", "weather", "movie", "sports", "cricket", "football",
	"game", "song", "joke", "travel", "vacation", "dating",
	"politics", "election", "religion",
}

// Classify tests the query against the unsafe set first, then the
// out-of-domain set. Containment is boolean and case-insensitive; the first
// matching set wins.
func Classify(query string) Verdict {
	q := strings.ToLower(query)

	for _, kw := range unsafeKeywords {
		if strings.Contains(q, kw) {
			return VerdictUnsafe
		}
	}
	for _, kw := range outOfDomainKeywords {
		if strings.Contains(q, kw) {
			return VerdictOutOfDomain
		}
	}
	return VerdictPass
}
