// Package embedding provides the shared text embedding provider used by all
// pipeline tiers. Embedding is a pure function over immutable state: the same
// text always maps to the same vector, and no I/O happens on the embed path.
package embedding

import (
	"hash/fnv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cloo-solutions/finassist/internal/domain"
)

// DefaultDimension is the embedding vector width used across the pipeline.
const DefaultDimension = 384

// Embedder maps text to a fixed-length dense vector.
type Embedder interface {
	Embed(text string) ([]float32, error)
	Dimension() int
}

// HashingEmbedder is a deterministic feature-hashing embedder: word unigrams
// and bigrams are hashed into signed buckets and the result is L2-normalized.
// It runs in-process with no model download and no network, so the serving
// path stays self-contained. Identical texts embed to identical vectors.
type HashingEmbedder struct {
	dim int
}

// NewHashingEmbedder creates a HashingEmbedder with the given dimension.
// Non-positive dimensions fall back to DefaultDimension.
func NewHashingEmbedder(dim int) *HashingEmbedder {
	if dim <= 0 {
		dim = DefaultDimension
	}
	return &HashingEmbedder{dim: dim}
}

// Dimension returns the vector width produced by Embed.
func (e *HashingEmbedder) Dimension() int {
	return e.dim
}

// Embed maps text to a normalized dense vector. Empty or token-free text
// yields the zero vector, which cosine similarity treats as a no-match.
func (e *HashingEmbedder) Embed(text string) ([]float32, error) {
	if !utf8.ValidString(text) {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "text is not valid UTF-8")
	}

	vec := make([]float32, e.dim)
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return vec, nil
	}

	for _, tok := range tokens {
		bucket, sign := hashFeature(tok, e.dim)
		vec[bucket] += sign
	}
	for i := 0; i < len(tokens)-1; i++ {
		bucket, sign := hashFeature(tokens[i]+" "+tokens[i+1], e.dim)
		vec[bucket] += sign
	}

	normalize(vec)
	return vec, nil
}

// hashFeature maps a feature string to a bucket index and a ±1 sign. One
// hash bit decides the sign so collisions cancel rather than accumulate.
func hashFeature(feature string, dim int) (int, float32) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(feature))
	sum := h.Sum64()

	bucket := int(sum % uint64(dim))
	sign := float32(1)
	if sum&(1<<63) != 0 {
		sign = -1
	}
	return bucket, sign
}

// tokenize lowercases and splits on any rune that is not a letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
