package admin

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/cloo-solutions/finassist/internal/config"
	"github.com/cloo-solutions/finassist/internal/embedding"
	"github.com/cloo-solutions/finassist/internal/storage"
	"github.com/cloo-solutions/finassist/internal/vectorstore"
)

// RebuildCmd returns the rebuild command: the explicit operator action that
// regenerates the vector-store artifact from the current document corpus.
func RebuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rebuild",
		Short: "Rebuild the vector store artifact",
		Long: "Rebuild the vector store artifact from the current document corpus. " +
			"With --pull, the corpus directory is first synced from the configured S3 bucket.",
		RunE: runRebuild,
	}

	cmd.Flags().Bool("pull", false, "Sync the corpus directory from S3 before rebuilding")

	return cmd
}

func runRebuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	pull, _ := cmd.Flags().GetBool("pull")
	if pull {
		if !cfg.HasS3() {
			return fmt.Errorf("--pull requires S3_ENDPOINT, S3_ACCESS_KEY_ID, and S3_SECRET_ACCESS_KEY")
		}

		s3Client, err := storage.NewS3Client(ctx, storage.S3ClientConfig{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			Bucket:          cfg.S3Bucket,
			UsePathStyle:    true,
		})
		if err != nil {
			return fmt.Errorf("failed to create S3 client: %w", err)
		}

		n, err := s3Client.DownloadPrefix(ctx, cfg.S3Prefix, cfg.CorpusDir)
		if err != nil {
			return fmt.Errorf("failed to sync corpus from S3: %w", err)
		}
		log.Printf("synced %d corpus files from s3://%s/%s", n, cfg.S3Bucket, cfg.S3Prefix)
	}

	embedder := embedding.NewHashingEmbedder(cfg.EmbeddingDim)
	store := vectorstore.New(vectorstore.Config{
		Path:         cfg.VectorStorePath,
		CorpusDir:    cfg.CorpusDir,
		ChunkSize:    cfg.ChunkSize,
		ChunkOverlap: cfg.ChunkOverlap,
	}, embedder)

	if err := store.Rebuild(); err != nil {
		return fmt.Errorf("failed to rebuild vector store: %w", err)
	}

	log.Printf("vector store rebuilt: %d chunks in %s", store.Size(), store.Path())
	return nil
}
