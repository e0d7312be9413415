package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the static configuration surface, loaded once at startup and
// never mutated at runtime.
type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	DatasetPath     string `envconfig:"DATASET_PATH" default:"data/dataset.json"`
	CorpusDir       string `envconfig:"CORPUS_DIR" default:"data/corpus"`
	VectorStorePath string `envconfig:"VECTOR_STORE_PATH" default:"vector_store.db"`

	MatchThreshold    float64 `envconfig:"MATCH_THRESHOLD" default:"0.70"`
	ChunkSize         int     `envconfig:"CHUNK_SIZE" default:"400"`
	ChunkOverlap      int     `envconfig:"CHUNK_OVERLAP" default:"80"`
	RetrievalK        int     `envconfig:"RETRIEVAL_K" default:"2"`
	RetrievalMinScore float64 `envconfig:"RETRIEVAL_MIN_SCORE" default:"0.20"`
	EmbeddingDim      int     `envconfig:"EMBEDDING_DIM" default:"384"`

	Workers int `envconfig:"WORKERS" default:"4"`

	// APIToken enables static bearer-token auth on the resolve endpoint
	// when set.
	APIToken string `envconfig:"API_TOKEN"`

	// OpenAIAPIKey enables the generative fallback responder variant.
	// Unset (the default) keeps query serving free of network calls.
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`

	// S3 settings for syncing the document corpus before an offline rebuild
	S3Endpoint  string `envconfig:"S3_ENDPOINT"`
	S3AccessKey string `envconfig:"S3_ACCESS_KEY_ID"`
	S3SecretKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	S3Bucket    string `envconfig:"S3_BUCKET" default:"finassist-corpus"`
	S3Region    string `envconfig:"S3_REGION" default:"us-east-1"`
	S3Prefix    string `envconfig:"S3_PREFIX"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("FINASSIST", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) HasS3() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}
