// Package respond implements the Tier 2 template responder: a fixed catalog
// of BFSI category templates scored by keyword containment. The catalog is
// declarative data (catalog.yaml), loaded once; declaration order is
// preserved for deterministic tie-breaking.
package respond

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cloo-solutions/finassist/internal/domain"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogEntry struct {
	ID       string   `yaml:"id"`
	Keywords []string `yaml:"keywords"`
	Response string   `yaml:"response"`
}

// Responder holds the loaded category template catalog.
type Responder struct {
	templates []domain.CategoryTemplate
}

// NewResponder loads the embedded catalog.
func NewResponder() (*Responder, error) {
	return newFromYAML(catalogYAML)
}

func newFromYAML(data []byte) (*Responder, error) {
	var entries []catalogEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeConfiguration,
			"failed to parse template catalog", err)
	}
	if len(entries) == 0 {
		return nil, domain.NewDomainError(domain.ErrCodeConfiguration,
			"template catalog is empty")
	}

	templates := make([]domain.CategoryTemplate, 0, len(entries))
	for i, e := range entries {
		// Scoring lowercases the query, so keywords must be lowercase too.
		keywords := make([]string, len(e.Keywords))
		for j, kw := range e.Keywords {
			keywords[j] = strings.ToLower(kw)
		}

		t := domain.CategoryTemplate{
			CategoryID: e.ID,
			Keywords:   keywords,
			Response:   strings.TrimSpace(e.Response),
		}
		if err := domain.ValidateCategoryTemplate(&t); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		templates = append(templates, t)
	}

	return &Responder{templates: templates}, nil
}

// Respond scores every template by the count of its keywords contained in
// the query (case-insensitive) and returns the winner's response. Ties break
// to the earliest declared category. A zero maximum yields the default
// guidance response with an empty category.
func (r *Responder) Respond(query string) (string, string) {
	q := strings.ToLower(query)

	bestScore := 0
	bestIdx := -1
	for i, t := range r.templates {
		score := 0
		for _, kw := range t.Keywords {
			if strings.Contains(q, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return DefaultGuidance, ""
	}
	return r.templates[bestIdx].Response, r.templates[bestIdx].CategoryID
}

// Categories returns the catalog's category IDs in declaration order.
func (r *Responder) Categories() []string {
	ids := make([]string, len(r.templates))
	for i, t := range r.templates {
		ids[i] = t.CategoryID
	}
	return ids
}
