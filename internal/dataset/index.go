// Package dataset implements the Tier 1 answer index: curated
// instruction→answer pairs with precomputed embeddings, matched by cosine
// similarity. The index is loaded once at startup and read-only afterwards.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cloo-solutions/finassist/internal/domain"
	"github.com/cloo-solutions/finassist/internal/embedding"
)

// record is one entry of the curated dataset artifact (alpaca-style).
type record struct {
	Instruction string `json:"instruction"`
	Input       string `json:"input"`
	Output      string `json:"output"`
}

// Index holds the curated answer set and exposes nearest-neighbor lookup.
type Index struct {
	entries  []domain.KnowledgeEntry
	embedder embedding.Embedder
}

// Match is a successful dataset lookup.
type Match struct {
	Answer string
	Score  float64
}

// Load reads the dataset artifact from path and precomputes entry
// embeddings. A missing or unparseable artifact is a configuration error:
// the caller must not serve queries in that state.
func Load(path string, embedder embedding.Embedder) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeConfiguration,
			fmt.Sprintf("failed to read dataset artifact %s", path), err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeConfiguration,
			fmt.Sprintf("failed to parse dataset artifact %s", path), err)
	}

	return build(records, embedder)
}

func build(records []record, embedder embedding.Embedder) (*Index, error) {
	entries := make([]domain.KnowledgeEntry, 0, len(records))
	for i, r := range records {
		entry := domain.KnowledgeEntry{
			Instruction: r.Instruction,
			Input:       r.Input,
			Answer:      r.Output,
		}
		if err := domain.ValidateKnowledgeEntry(&entry); err != nil {
			return nil, fmt.Errorf("dataset entry %d: %w", i, err)
		}

		emb, err := embedder.Embed(entry.MatchText())
		if err != nil {
			return nil, fmt.Errorf("failed to embed dataset entry %d: %w", i, err)
		}
		entry.Embedding = emb
		entries = append(entries, entry)
	}

	return &Index{entries: entries, embedder: embedder}, nil
}

// Lookup embeds the query and returns the best-scoring entry. The score is
// always reported so callers can inspect near-misses; the match is nil when
// the score is below threshold or the index is empty. Ties break to the
// earliest insertion order.
func (ix *Index) Lookup(query string, threshold float64) (*Match, float64, error) {
	if len(ix.entries) == 0 {
		return nil, 0, nil
	}

	queryEmb, err := ix.embedder.Embed(query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to embed query: %w", err)
	}

	bestIdx := 0
	bestScore := embedding.CosineSimilarity(queryEmb, ix.entries[0].Embedding)
	for i := 1; i < len(ix.entries); i++ {
		score := embedding.CosineSimilarity(queryEmb, ix.entries[i].Embedding)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestScore >= threshold {
		return &Match{Answer: ix.entries[bestIdx].Answer, Score: bestScore}, bestScore, nil
	}
	return nil, bestScore, nil
}

// Size returns the number of entries in the index.
func (ix *Index) Size() int {
	return len(ix.entries)
}
