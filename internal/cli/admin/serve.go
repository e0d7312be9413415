package admin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cloo-solutions/finassist/internal/api/handlers"
	"github.com/cloo-solutions/finassist/internal/config"
	"github.com/cloo-solutions/finassist/internal/dataset"
	"github.com/cloo-solutions/finassist/internal/embedding"
	"github.com/cloo-solutions/finassist/internal/jobs"
	"github.com/cloo-solutions/finassist/internal/openai"
	"github.com/cloo-solutions/finassist/internal/respond"
	"github.com/cloo-solutions/finassist/internal/server"
	"github.com/cloo-solutions/finassist/internal/service"
	"github.com/cloo-solutions/finassist/internal/telemetry"
	"github.com/cloo-solutions/finassist/internal/vectorstore"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the query resolution server",
		Long:  "Start the finassist API server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")

	return cmd
}

// portOverride returns the port flag's value when the operator set it
// explicitly, otherwise the configured port.
func portOverride(cmd *cobra.Command, current string) string {
	if cmd.Flags().Changed("port") {
		if p, _ := cmd.Flags().GetString("port"); p != "" {
			return p
		}
	}
	return current
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize Sentry with tracing if SENTRY_DSN is set
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		environment := os.Getenv("ENVIRONMENT")
		if environment == "" {
			environment = "development"
		}

		sampleRate := 0.1
		if environment == "development" {
			sampleRate = 1.0
		}

		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              dsn,
			Environment:      environment,
			TracesSampleRate: sampleRate,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	cfg.Port = portOverride(cmd, cfg.Port)

	// All index state loads once here; it is read-only for the lifetime of
	// the process. A failed load means the process must not serve queries.
	embedder := embedding.NewHashingEmbedder(cfg.EmbeddingDim)

	index, err := dataset.Load(cfg.DatasetPath, embedder)
	if err != nil {
		return fmt.Errorf("failed to load answer index: %w", err)
	}
	log.Printf("answer index loaded (%d entries)", index.Size())

	store, err := vectorstore.Open(vectorstore.Config{
		Path:         cfg.VectorStorePath,
		CorpusDir:    cfg.CorpusDir,
		ChunkSize:    cfg.ChunkSize,
		ChunkOverlap: cfg.ChunkOverlap,
	}, embedder)
	if err != nil {
		return fmt.Errorf("failed to open vector store: %w", err)
	}

	templates, err := respond.NewResponder()
	if err != nil {
		return fmt.Errorf("failed to load template catalog: %w", err)
	}

	var fallback service.FallbackResponder
	if cfg.HasOpenAI() {
		fallback = openai.NewClient(cfg.OpenAIAPIKey)
		log.Println("generative fallback responder enabled")
	}

	resolver := service.NewResolverWithFallback(index, store, templates, fallback,
		service.ResolverConfig{
			MatchThreshold:    cfg.MatchThreshold,
			RetrievalK:        cfg.RetrievalK,
			RetrievalMinScore: cfg.RetrievalMinScore,
		})
	log.Printf("pipeline ready: %s", resolver)

	pool := jobs.NewPool(resolver, cfg.Workers)
	pool.Start(ctx)

	queryHandler := handlers.NewQueryHandler(pool, resolver)

	router := server.NewRouter(server.RouterConfig{
		APIToken:     cfg.APIToken,
		QueryHandler: queryHandler,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	pool.Stop()

	log.Println("server exited")
	return nil
}
