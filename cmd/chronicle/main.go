// Chronicle server - generates topical timelines from unstructured
// historical text via an HTTP/WebSocket API, a task queue, and MCP tools.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/gin-gonic/gin"

	"github.com/chronicle-dev/chronicle/pkg/api"
	"github.com/chronicle-dev/chronicle/pkg/articles"
	"github.com/chronicle-dev/chronicle/pkg/canonical"
	"github.com/chronicle-dev/chronicle/pkg/cleanup"
	"github.com/chronicle-dev/chronicle/pkg/config"
	"github.com/chronicle-dev/chronicle/pkg/database"
	"github.com/chronicle-dev/chronicle/pkg/dates"
	"github.com/chronicle-dev/chronicle/pkg/embedding"
	"github.com/chronicle-dev/chronicle/pkg/entitylink"
	"github.com/chronicle-dev/chronicle/pkg/events"
	"github.com/chronicle-dev/chronicle/pkg/extract"
	"github.com/chronicle-dev/chronicle/pkg/keywords"
	"github.com/chronicle-dev/chronicle/pkg/llm"
	chroniclemcp "github.com/chronicle-dev/chronicle/pkg/mcp"
	"github.com/chronicle-dev/chronicle/pkg/pipeline"
	"github.com/chronicle-dev/chronicle/pkg/queue"
	"github.com/chronicle-dev/chronicle/pkg/relevance"
	"github.com/chronicle-dev/chronicle/pkg/services"
	"github.com/chronicle-dev/chronicle/pkg/wiki"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	mcpMode := flag.Bool("mcp", false,
		"Serve MCP tools over stdio instead of HTTP")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("Warning: Could not load %s file: %v", envPath, err)
		log.Printf("Continuing with existing environment variables...")
	} else {
		log.Printf("Loaded environment from %s", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	gin.SetMode(getEnv("GIN_MODE", "release"))

	log.Printf("Starting Chronicle")
	log.Printf("HTTP Port: %s", httpPort)
	log.Printf("Config Directory: %s", *configDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		log.Fatalf("Failed to initialize configuration: %v", err)
	}

	// Database (fatal when unreachable at startup)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load database config: %v", err)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			log.Printf("Error closing database client: %v", err)
		}
	}()
	log.Println("✓ Connected to PostgreSQL database")

	// LLM provider
	llmFactory := llm.NewFactory(cfg.LLMProviderRegistry)
	llmClient, err := llmFactory.Get(ctx, cfg.Pipeline.LLMProvider)
	if err != nil {
		log.Fatalf("Failed to initialize LLM provider %q: %v", cfg.Pipeline.LLMProvider, err)
	}

	// Wiki fetchers + article strategies
	wikiClient := wiki.NewClient(cfg.Wiki)
	registry := articles.NewRegistry()
	registry.Register(articles.NewOnlineWikipedia(wikiClient))
	registry.Register(articles.NewOnlineWikinews(wikiClient))

	var hybridDataset articles.Strategy
	encoder, err := embedding.NewEncoder(cfg.Embedding)
	if err != nil {
		slog.Warn("Embedding encoder unavailable, dataset strategies disabled", "error", err)
	} else {
		registry.Register(articles.NewDatasetWikipediaEn(dbClient.DB(), encoder))
		hybridDataset = articles.NewDatasetWikipediaEnHybrid(dbClient.DB(), encoder)
	}
	articleService := articles.NewService(registry, hybridDataset)

	// Pipeline components
	dateParser := dates.NewParser(llmClient)
	eventExtractor := extract.NewExtractor(llmClient, dateParser)
	linker := entitylink.NewLinker(dbClient.Client, nil)
	canonicalStore := canonical.NewStore(dbClient.Client, eventExtractor, linker, cfg.Pipeline.ReuseBaseViewpoint)
	scorer := relevance.NewScorer(llmClient, cfg.Pipeline.EventScoringBatchSize)
	keywordExtractor := keywords.NewExtractor(llmClient)

	// Services
	taskService := services.NewTaskService(dbClient.Client)
	viewpointService := services.NewViewpointService(dbClient.Client)
	progressService := services.NewProgressService(dbClient.Client)
	timelineService := services.NewTimelineService(dbClient.Client)

	// Progress delivery
	wsRegistry := events.NewRegistry()
	publisher := events.NewPublisher(dbClient.Client, wsRegistry)

	// Orchestrator + worker pool
	orchestrator := pipeline.NewOrchestrator(
		cfg, dbClient.Client, llmClient,
		keywordExtractor, articleService, scorer, canonicalStore,
		viewpointService, publisher,
	)
	podID := getEnv("POD_ID", uuid.New().String()[:8])
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		log.Printf("Warning: startup orphan cleanup failed: %v", err)
	}
	pool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, orchestrator)
	if err := pool.Start(ctx); err != nil {
		log.Fatalf("Failed to start worker pool: %v", err)
	}
	defer pool.Stop()

	// Retention cleanup
	cleanupService := cleanup.NewService(cfg.Retention, dbClient.Client)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	if *mcpMode {
		mcpServer := chroniclemcp.NewServer(taskService, timelineService, pool)
		log.Println("Serving MCP tools over stdio")
		if err := mcpServer.Run(ctx); err != nil && ctx.Err() == nil {
			log.Fatalf("MCP server failed: %v", err)
		}
		return
	}

	// HTTP API
	server := api.NewServer(cfg, dbClient, taskService, progressService, timelineService, pool, wsRegistry)
	server.SetWikiClient(wikiClient)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on :%s", httpPort)
		errCh <- server.Start(":" + httpPort)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}
	case <-ctx.Done():
		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP shutdown error: %v", err)
		}
	}
}
