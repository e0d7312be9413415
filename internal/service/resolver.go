// Package service implements the query router: the priority state machine
// that picks exactly one response source per query and assembles the final
// Answer with its provenance tag.
package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloo-solutions/finassist/internal/dataset"
	"github.com/cloo-solutions/finassist/internal/domain"
	"github.com/cloo-solutions/finassist/internal/guardrail"
	"github.com/cloo-solutions/finassist/internal/respond"
	"github.com/cloo-solutions/finassist/internal/telemetry"
)

// AnswerIndex defines the Tier 1 lookup interface
type AnswerIndex interface {
	Lookup(query string, threshold float64) (*dataset.Match, float64, error)
	Size() int
}

// ChunkStore defines the Tier 3 retrieval interface
type ChunkStore interface {
	Retrieve(query string, k int, minScore float64) ([]domain.ScoredChunk, error)
	Size() int
	Path() string
}

// TemplateResponder defines the Tier 2 keyword-scored catalog interface
type TemplateResponder interface {
	Respond(query string) (text string, category string)
}

// FallbackResponder is the polymorphic fallback capability. The template
// responder is the default variant; a generative variant may replace it
// without any router change.
type FallbackResponder interface {
	Respond(ctx context.Context, query string) (text string, category string, err error)
}

// ResolverConfig holds the routing thresholds, static after startup.
type ResolverConfig struct {
	MatchThreshold    float64
	RetrievalK        int
	RetrievalMinScore float64
}

// Resolver orchestrates guardrail filtering, dataset matching, chunk
// retrieval, and template fallback. All referenced state is read-only after
// construction, so a single Resolver is safe for concurrent use.
type Resolver struct {
	index     AnswerIndex
	store     ChunkStore
	templates TemplateResponder
	fallback  FallbackResponder
	cfg       ResolverConfig
}

// NewResolver creates a Resolver using the template responder as the
// fallback variant.
func NewResolver(index AnswerIndex, store ChunkStore, templates TemplateResponder, cfg ResolverConfig) *Resolver {
	return NewResolverWithFallback(index, store, templates, nil, cfg)
}

// NewResolverWithFallback creates a Resolver with an explicit fallback
// responder variant. When fallback errors (or is nil), the template
// responder answers, preserving the always-answer guarantee.
func NewResolverWithFallback(index AnswerIndex, store ChunkStore, templates TemplateResponder, fallback FallbackResponder, cfg ResolverConfig) *Resolver {
	if cfg.MatchThreshold <= 0 {
		cfg.MatchThreshold = 0.70
	}
	if cfg.RetrievalK <= 0 {
		cfg.RetrievalK = 2
	}
	if cfg.RetrievalMinScore <= 0 {
		cfg.RetrievalMinScore = 0.20
	}
	return &Resolver{
		index:     index,
		store:     store,
		templates: templates,
		fallback:  fallback,
		cfg:       cfg,
	}
}

// Resolve runs the priority state machine and always returns a complete,
// well-formed Answer; tier failures degrade to the template fallback rather
// than surfacing to the caller.
func (r *Resolver) Resolve(ctx context.Context, query string) domain.Answer {
	switch guardrail.Classify(query) {
	case guardrail.VerdictUnsafe:
		return domain.NewAnswerNoConfidence(respond.UnsafeMessage, domain.SourceBlocked, "")
	case guardrail.VerdictOutOfDomain:
		return domain.NewAnswerNoConfidence(respond.OutOfDomainMessage, domain.SourceRejected, "")
	}

	match, _, err := r.index.Lookup(query, r.cfg.MatchThreshold)
	if err != nil {
		// Embedding failure is a recoverable per-query condition: the
		// template fallback still answers.
		log.Printf("resolver: dataset lookup failed, using fallback: %v", err)
		telemetry.CaptureError(ctx, err)
		return r.fallbackAnswer(ctx, query)
	}
	if match != nil {
		return domain.NewAnswer(match.Answer, domain.SourceDataset, match.Score, respond.Disclaimer)
	}

	if IsComplex(query) {
		chunks, err := r.store.Retrieve(query, r.cfg.RetrievalK, r.cfg.RetrievalMinScore)
		if err != nil {
			log.Printf("resolver: retrieval failed, using fallback: %v", err)
			telemetry.CaptureError(ctx, err)
		} else if len(chunks) > 0 {
			text, _ := r.respondFallback(ctx, query)
			return domain.NewAnswer(composeGrounded(text, chunks), domain.SourceRetrieval,
				chunks[0].Score, respond.Disclaimer)
		}
	}

	return r.fallbackAnswer(ctx, query)
}

func (r *Resolver) fallbackAnswer(ctx context.Context, query string) domain.Answer {
	text, _ := r.respondFallback(ctx, query)
	return domain.NewAnswerNoConfidence(text, domain.SourceAssistant, respond.Disclaimer)
}

// respondFallback tries the configured fallback variant first and degrades
// to the template responder on any error.
func (r *Resolver) respondFallback(ctx context.Context, query string) (string, string) {
	if r.fallback != nil {
		text, category, err := r.fallback.Respond(ctx, query)
		if err == nil {
			return text, category
		}
		log.Printf("resolver: fallback responder failed, using templates: %v", err)
		telemetry.CaptureError(ctx, err)
	}
	return r.templates.Respond(query)
}

// composeGrounded augments the fallback response with retrieved chunk text
// as grounding context.
func composeGrounded(text string, chunks []domain.ScoredChunk) string {
	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\nRelevant excerpts from our policy documents:")
	for _, c := range chunks {
		b.WriteString("\n\n")
		b.WriteString(strings.TrimSpace(c.Chunk.Text))
	}
	return b.String()
}

// Stats reports tier sizes for the status endpoint.
type Stats struct {
	DatasetEntries int    `json:"dataset_entries"`
	Chunks         int    `json:"chunks"`
	ArtifactPath   string `json:"artifact_path"`
}

// Stats returns the current tier sizes.
func (r *Resolver) Stats() Stats {
	return Stats{
		DatasetEntries: r.index.Size(),
		Chunks:         r.store.Size(),
		ArtifactPath:   r.store.Path(),
	}
}

// String describes the resolver configuration for startup logs.
func (r *Resolver) String() string {
	return fmt.Sprintf("resolver(threshold=%.2f, k=%d, min_score=%.2f)",
		r.cfg.MatchThreshold, r.cfg.RetrievalK, r.cfg.RetrievalMinScore)
}
