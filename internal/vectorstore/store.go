// Package vectorstore implements the Tier 3 chunk store: overlapping text
// segments derived from the document corpus, embedded once at build time,
// persisted to a single SQLite artifact, and searched by cosine similarity.
// After Open returns the store is read-only and safe for concurrent use.
package vectorstore

import (
	"fmt"
	"log"
	"os"
	"sort"
	"sync"

	"github.com/cloo-solutions/finassist/internal/corpus"
	"github.com/cloo-solutions/finassist/internal/domain"
	"github.com/cloo-solutions/finassist/internal/embedding"
)

const (
	DefaultChunkSize    = 400
	DefaultChunkOverlap = 80
	DefaultRetrievalK   = 2
	DefaultMinScore     = 0.20
)

// Config controls where the artifact lives and how documents are segmented.
type Config struct {
	Path         string
	CorpusDir    string
	ChunkSize    int
	ChunkOverlap int
}

// Store holds the chunk set and embeddings in memory for query serving.
type Store struct {
	cfg      Config
	embedder embedding.Embedder
	chunks   []domain.DocumentChunk

	// buildMu serializes artifact builds; rebuilds are rare operator
	// actions, never concurrent with normal traffic.
	buildMu sync.Mutex
}

// New creates a Store without loading or building anything. Callers that
// only rebuild use this to avoid an implicit build; serving goes through
// Open.
func New(cfg Config, embedder embedding.Embedder) *Store {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.ChunkOverlap < 0 {
		cfg.ChunkOverlap = DefaultChunkOverlap
	}
	return &Store{cfg: cfg, embedder: embedder}
}

// Open loads the persisted artifact verbatim when it exists, otherwise it
// builds the store from the current document corpus and writes the artifact
// before first use.
func Open(cfg Config, embedder embedding.Embedder) (*Store, error) {
	s := New(cfg, embedder)

	if _, err := os.Stat(s.cfg.Path); err == nil {
		chunks, err := loadArtifact(s.cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load vector store artifact: %w", err)
		}
		s.chunks = chunks
		log.Printf("vectorstore: loaded %d chunks from %s", len(chunks), s.cfg.Path)
		return s, nil
	}

	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

// Rebuild regenerates the artifact from the current document corpus. This is
// the explicit operator-triggered mutation; there is no incremental diffing.
func (s *Store) Rebuild() error {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	if err := os.Remove(s.cfg.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove old artifact: %w", err)
	}
	return s.buildLocked()
}

func (s *Store) build() error {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()
	return s.buildLocked()
}

func (s *Store) buildLocked() error {
	docs, err := corpus.LoadDir(s.cfg.CorpusDir)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	var chunks []domain.DocumentChunk
	for _, doc := range docs {
		for _, text := range Split(doc.Text, s.cfg.ChunkSize, s.cfg.ChunkOverlap) {
			emb, err := s.embedder.Embed(text)
			if err != nil {
				return fmt.Errorf("failed to embed chunk of %s: %w", doc.SourceID, err)
			}
			chunks = append(chunks, domain.DocumentChunk{
				Text:      text,
				SourceID:  doc.SourceID,
				Embedding: emb,
			})
		}
	}

	if err := saveArtifact(s.cfg.Path, chunks); err != nil {
		return fmt.Errorf("failed to persist vector store artifact: %w", err)
	}

	s.chunks = chunks
	log.Printf("vectorstore: built %d chunks from %d documents, saved to %s",
		len(chunks), len(docs), s.cfg.Path)
	return nil
}

// Retrieve returns up to k chunks ranked by descending similarity to the
// query, excluding any chunk whose score is ≤ minScore. Fewer than k (or
// zero) results are returned when too few chunks clear the threshold.
func (s *Store) Retrieve(query string, k int, minScore float64) ([]domain.ScoredChunk, error) {
	if len(s.chunks) == 0 {
		return nil, nil
	}
	if k <= 0 {
		k = DefaultRetrievalK
	}

	queryEmb, err := s.embedder.Embed(query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	scored := make([]domain.ScoredChunk, len(s.chunks))
	for i, c := range s.chunks {
		scored[i] = domain.ScoredChunk{
			Chunk: c,
			Score: embedding.CosineSimilarity(queryEmb, c.Embedding),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k > len(scored) {
		k = len(scored)
	}
	results := make([]domain.ScoredChunk, 0, k)
	for _, sc := range scored[:k] {
		if sc.Score <= minScore {
			continue
		}
		results = append(results, sc)
	}
	return results, nil
}

// Size returns the number of chunks in the store.
func (s *Store) Size() int {
	return len(s.chunks)
}

// Path returns the location of the persisted artifact.
func (s *Store) Path() string {
	return s.cfg.Path
}
