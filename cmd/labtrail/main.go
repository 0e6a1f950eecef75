// labtrail server: ingests lab reports through vision OCR, maps parameters
// to a curated analyte dictionary, and serves the conversational query API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/labtrail/labtrail/pkg/api"
	"github.com/labtrail/labtrail/pkg/chat"
	"github.com/labtrail/labtrail/pkg/config"
	"github.com/labtrail/labtrail/pkg/database"
	"github.com/labtrail/labtrail/pkg/events"
	"github.com/labtrail/labtrail/pkg/ingest"
	"github.com/labtrail/labtrail/pkg/insight"
	"github.com/labtrail/labtrail/pkg/jobs"
	"github.com/labtrail/labtrail/pkg/llm"
	"github.com/labtrail/labtrail/pkg/mapping"
	"github.com/labtrail/labtrail/pkg/schema"
	"github.com/labtrail/labtrail/pkg/services"
	"github.com/labtrail/labtrail/pkg/session"
	"github.com/labtrail/labtrail/pkg/version"
	"github.com/labtrail/labtrail/pkg/vision"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, using existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting labtrail", "version", version.Full(), "addr", cfg.ListenAddr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Database: pools, declarative schema, trigram support, row policies.
	dbClient, err := database.NewClient(ctx, database.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 2. Domain services.
	users := services.NewUserService(dbClient.Client)
	patients := services.NewPatientService(dbClient.Client)
	reports := services.NewReportService(dbClient.Client)
	analytes := services.NewAnalyteService(dbClient.Client)
	audit := services.NewAuditService(dbClient.Client)

	// 3. LLM clients: one conversational client, vision adapters for OCR.
	chatLLM := buildChatClient(cfg)
	defer func() {
		if err := chatLLM.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()

	ocrProvider, err := buildOCRProvider(cfg)
	if err != nil {
		slog.Error("Failed to build OCR provider", "error", err)
		os.Exit(1)
	}
	slog.Info("OCR provider ready",
		"primary", cfg.OCRProviderPrimary, "secondary", cfg.OCRProviderSecondary)

	// 4. Mapping engine and review workflow.
	suggester := mapping.NewLLMSuggester(chatLLM, cfg.ChatModel)
	mapper := mapping.NewEngine(dbClient.Client, dbClient.DB(), suggester,
		cfg.AutoAcceptThreshold, cfg.QueueLowerThreshold)
	backfiller := mapping.NewBackfiller(dbClient.Client, dbClient.DB(), cfg.BackfillThreshold)
	reviews := services.NewReviewService(dbClient.Client, backfiller)

	// 5. Ingestion: artifact store, job manager, worker pool, pipeline.
	store, err := ingest.NewStore(cfg.StorageDir)
	if err != nil {
		slog.Error("Failed to open artifact store", "dir", cfg.StorageDir, "error", err)
		os.Exit(1)
	}

	jobManager := jobs.NewManager(cfg.JobTTL)
	jobManager.StartSweeper(ctx)
	defer jobManager.Stop()

	pool := jobs.NewPool(cfg.IngestWorkers, cfg.IngestWorkers*4)
	pool.Start(ctx)
	defer pool.Stop()

	pipeline := ingest.NewPipeline(ocrProvider, reports, store, jobManager, mapper, ingest.Config{
		MaxUploadBytes: cfg.MaxUploadBytes,
		MaxPDFPages:    cfg.MaxPDFPages,
	})

	// 6. Chat: sessions, SSE registry, schema snapshot, tool loop.
	sessions := session.NewStore(cfg.SessionTTL)
	registry := events.NewRegistry()
	sessions.OnExpire(func(id uuid.UUID) {
		registry.Close(id, "session expired")
	})
	sessions.Start(ctx)
	defer sessions.Stop()

	schemaService := schema.NewService(dbClient.ScopedDB())
	guard := chat.NewGuard(schemaService, cfg.QueryRowCap)
	executor := chat.NewExecutor(dbClient.ScopedDB(), guard)
	toolset, err := chat.NewToolset(dbClient.Client, executor, cfg.TableRowCap)
	if err != nil {
		slog.Error("Failed to build toolset", "error", err)
		os.Exit(1)
	}

	orchestrator := chat.NewOrchestrator(chatLLM, sessions, registry, toolset, schemaService, patients, chat.Options{
		Model:            cfg.ChatModel,
		MaxTokens:        cfg.ChatMaxTokens,
		MaxIterations:    cfg.MaxIterations,
		TokenBudget:      cfg.TokenBudget,
		PruneKeep:        cfg.PruneKeepMessages,
		ScopeEnforcement: cfg.ScopeEnforcement,
		Production:       cfg.Production,
	})

	insights := insight.NewGenerator(chatLLM, reports, cfg.InsightModel)

	// 7. HTTP server.
	server := api.NewServer(api.Deps{
		Config:       cfg,
		DB:           dbClient,
		Users:        users,
		Patients:     patients,
		Reports:      reports,
		Analytes:     analytes,
		Reviews:      reviews,
		Audit:        audit,
		Sessions:     sessions,
		Registry:     registry,
		Jobs:         jobManager,
		Pool:         pool,
		Pipeline:     pipeline,
		Orchestrator: orchestrator,
		Insights:     insights,
	})

	if err := server.Run(ctx); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}

// buildChatClient selects the conversational provider. The OCR adapters are
// configured independently.
func buildChatClient(cfg *config.Config) llm.Client {
	if cfg.ChatProvider == "anthropic" {
		return llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	}
	return llm.NewOpenAIClient(cfg.OpenAIAPIKey)
}

// buildOCRProvider assembles the primary vision adapter and, when a
// secondary is configured, wraps both in the failover provider.
func buildOCRProvider(cfg *config.Config) (vision.Provider, error) {
	primary, err := visionAdapter(cfg, cfg.OCRProviderPrimary, cfg.OCRModelPrimary)
	if err != nil {
		return nil, err
	}
	if cfg.OCRProviderSecondary == "" {
		return primary, nil
	}
	secondary, err := visionAdapter(cfg, cfg.OCRProviderSecondary, cfg.OCRModelSecondary)
	if err != nil {
		return nil, err
	}
	return vision.NewFallbackProvider(primary, secondary), nil
}

func visionAdapter(cfg *config.Config, provider, model string) (vision.Provider, error) {
	switch provider {
	case "anthropic":
		return vision.NewAnthropicProvider(cfg.AnthropicAPIKey, model, vision.DefaultRetryPolicy()), nil
	case "openai":
		return vision.NewOpenAIProvider(cfg.OpenAIAPIKey, model, vision.DefaultRetryPolicy()), nil
	default:
		return nil, fmt.Errorf("unknown vision provider %q", provider)
	}
}
