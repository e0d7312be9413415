package vectorstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloo-solutions/finassist/internal/embedding"
)

func testCorpusDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := "Floating-rate home loans carry no prepayment penalty for individual borrowers. " +
		"Fixed-rate loans attract a prepayment charge of up to 2% of the amount prepaid. " +
		strings.Repeat("Late payment charges apply when an EMI is overdue past the due date. ", 10)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "policies.txt"), []byte(content), 0o644))
	return dir
}

func TestOpenBuildsWhenArtifactMissing(t *testing.T) {
	cfg := Config{
		Path:         filepath.Join(t.TempDir(), "store.db"),
		CorpusDir:    testCorpusDir(t),
		ChunkSize:    200,
		ChunkOverlap: 40,
	}

	store, err := Open(cfg, embedding.NewHashingEmbedder(embedding.DefaultDimension))
	require.NoError(t, err)
	assert.Greater(t, store.Size(), 1)
	assert.Equal(t, cfg.Path, store.Path())

	// The artifact was written during the build.
	_, err = os.Stat(cfg.Path)
	assert.NoError(t, err)
}

func TestOpenLoadsExistingArtifact(t *testing.T) {
	embedder := embedding.NewHashingEmbedder(embedding.DefaultDimension)
	cfg := Config{
		Path:         filepath.Join(t.TempDir(), "store.db"),
		CorpusDir:    testCorpusDir(t),
		ChunkSize:    200,
		ChunkOverlap: 40,
	}

	first, err := Open(cfg, embedder)
	require.NoError(t, err)

	// Second open must load from the artifact even if the corpus is gone.
	cfg.CorpusDir = filepath.Join(t.TempDir(), "absent")
	second, err := Open(cfg, embedder)
	require.NoError(t, err)
	assert.Equal(t, first.Size(), second.Size())
}

func TestOpenEmptyCorpus(t *testing.T) {
	cfg := Config{
		Path:      filepath.Join(t.TempDir(), "store.db"),
		CorpusDir: filepath.Join(t.TempDir(), "absent"),
	}

	store, err := Open(cfg, embedding.NewHashingEmbedder(64))
	require.NoError(t, err)
	assert.Zero(t, store.Size())

	chunks, err := store.Retrieve("anything", 2, 0.20)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestRebuild(t *testing.T) {
	embedder := embedding.NewHashingEmbedder(embedding.DefaultDimension)
	corpusDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(corpusDir, "a.txt"),
		[]byte(strings.Repeat("interest rate reset on floating loans ", 20)), 0o644))

	cfg := Config{
		Path:         filepath.Join(t.TempDir(), "store.db"),
		CorpusDir:    corpusDir,
		ChunkSize:    150,
		ChunkOverlap: 30,
	}
	store, err := Open(cfg, embedder)
	require.NoError(t, err)
	before := store.Size()

	require.NoError(t, os.WriteFile(filepath.Join(corpusDir, "b.txt"),
		[]byte(strings.Repeat("grievance redressal and ombudsman escalation ", 20)), 0o644))

	require.NoError(t, store.Rebuild())
	assert.Greater(t, store.Size(), before)
}

// countingEmbedder counts Embed calls to detect redundant builds.
type countingEmbedder struct {
	inner *embedding.HashingEmbedder
	calls int
}

func (c *countingEmbedder) Embed(text string) ([]float32, error) {
	c.calls++
	return c.inner.Embed(text)
}

func (c *countingEmbedder) Dimension() int { return c.inner.Dimension() }

func TestNewRebuildEmbedsCorpusOnce(t *testing.T) {
	embedder := &countingEmbedder{inner: embedding.NewHashingEmbedder(embedding.DefaultDimension)}
	cfg := Config{
		Path:         filepath.Join(t.TempDir(), "store.db"),
		CorpusDir:    testCorpusDir(t),
		ChunkSize:    200,
		ChunkOverlap: 40,
	}

	store := New(cfg, embedder)
	// New performs no I/O: no artifact and no embedding yet.
	assert.Zero(t, store.Size())
	assert.Zero(t, embedder.calls)
	_, err := os.Stat(cfg.Path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, store.Rebuild())
	assert.Greater(t, store.Size(), 1)
	assert.Equal(t, store.Size(), embedder.calls)
}

func TestRetrieveRankingAndThreshold(t *testing.T) {
	embedder := embedding.NewHashingEmbedder(embedding.DefaultDimension)
	corpusDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(corpusDir, "mixed.txt"), []byte(
		"Prepayment penalty on fixed rate loans is two percent of the outstanding principal amount prepaid by the borrower.\n"),
		0o644))
	require.NoError(t, os.WriteFile(filepath.Join(corpusDir, "other.txt"), []byte(
		"Savings account opening requires identity proof, address proof and two passport size photographs from the applicant.\n"),
		0o644))

	cfg := Config{
		Path:      filepath.Join(t.TempDir(), "store.db"),
		CorpusDir: corpusDir,
		ChunkSize: DefaultChunkSize,
	}
	store, err := Open(cfg, embedder)
	require.NoError(t, err)
	require.Equal(t, 2, store.Size())

	results, err := store.Retrieve("prepayment penalty on fixed rate loans", 2, 0.20)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	// Best match first, scores descending, all above the floor.
	assert.Contains(t, results[0].Chunk.Text, "Prepayment penalty")
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
	for _, r := range results {
		assert.Greater(t, r.Score, 0.20)
	}
}

func TestRetrieveRespectsK(t *testing.T) {
	embedder := embedding.NewHashingEmbedder(embedding.DefaultDimension)
	cfg := Config{
		Path:         filepath.Join(t.TempDir(), "store.db"),
		CorpusDir:    testCorpusDir(t),
		ChunkSize:    100,
		ChunkOverlap: 20,
	}
	store, err := Open(cfg, embedder)
	require.NoError(t, err)
	require.Greater(t, store.Size(), 2)

	results, err := store.Retrieve("late payment charges overdue EMI", 2, -1)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(results), 2)
}

func TestArtifactRoundTrip(t *testing.T) {
	embedder := embedding.NewHashingEmbedder(embedding.DefaultDimension)
	cfg := Config{
		Path:         filepath.Join(t.TempDir(), "store.db"),
		CorpusDir:    testCorpusDir(t),
		ChunkSize:    200,
		ChunkOverlap: 40,
	}

	built, err := Open(cfg, embedder)
	require.NoError(t, err)

	loaded, err := loadArtifact(cfg.Path)
	require.NoError(t, err)
	require.Len(t, loaded, built.Size())
	for i, c := range loaded {
		assert.Equal(t, built.chunks[i].Text, c.Text)
		assert.Equal(t, built.chunks[i].SourceID, c.SourceID)
		assert.Equal(t, built.chunks[i].Embedding, c.Embedding)
	}
}
