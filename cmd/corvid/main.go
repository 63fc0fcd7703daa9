// Corvid server - drives the document-enrichment pipeline against an
// external DMS and serves the HTTP admin surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/qdrant/go-client/qdrant"
	"golang.org/x/sync/errgroup"

	"github.com/codeready-toolchain/corvid/pkg/api"
	"github.com/codeready-toolchain/corvid/pkg/cleanup"
	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/database"
	"github.com/codeready-toolchain/corvid/pkg/dmsclient"
	"github.com/codeready-toolchain/corvid/pkg/llmclient"
	"github.com/codeready-toolchain/corvid/pkg/masking"
	"github.com/codeready-toolchain/corvid/pkg/ocrclient"
	"github.com/codeready-toolchain/corvid/pkg/pipeline"
	"github.com/codeready-toolchain/corvid/pkg/reviewqueue"
	"github.com/codeready-toolchain/corvid/pkg/scheduler"
	"github.com/codeready-toolchain/corvid/pkg/services"
	"github.com/codeready-toolchain/corvid/pkg/slack"
	"github.com/codeready-toolchain/corvid/pkg/stageengine"
	"github.com/codeready-toolchain/corvid/pkg/vectorindex"
	"github.com/codeready-toolchain/corvid/pkg/version"
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
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("Warning: Could not load %s file: %v", envPath, err)
	} else {
		log.Printf("Loaded environment from %s", envPath)
	}

	ctx := context.Background()
	slog.Info("starting corvid", "version", version.Full(), "config_dir", *configDir)

	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		log.Fatalf("Failed to initialize configuration: %v", err)
	}

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
	slog.Info("connected to PostgreSQL, schema migrated")

	app, err := buildApp(ctx, cfg, dbClient)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	switch flag.Arg(0) {
	case "bootstrap":
		runBootstrap(ctx, cfg, app)
	case "":
		serve(ctx, cfg, app)
	default:
		log.Fatalf("Unknown command %q (expected no command or \"bootstrap\")", flag.Arg(0))
	}
}

// app bundles every constructed component.
type app struct {
	dms          *dmsclient.Client
	store        *reviewqueue.Store
	resolver     *reviewqueue.Resolver
	orchestrator *pipeline.Orchestrator
	sched        *scheduler.Scheduler
	orphans      *scheduler.OrphanSweeper
	maintenance  *scheduler.Maintenance
	retention    *cleanup.Service
	activity     *scheduler.ActivityTracker
	logService   *services.ProcessingLogService
	jobService   *services.JobStateService
	server       *api.Server
	dbClient     *database.Client
}

func buildApp(ctx context.Context, cfg *config.Config, dbClient *database.Client) (*app, error) {
	sys := cfg.System

	dms := dmsclient.NewClient(sys.DMS.BaseURL, os.Getenv(sys.DMS.TokenEnv), sys.DMS.MaxRetries)
	if err := dms.RefreshTagCache(ctx); err != nil {
		return nil, fmt.Errorf("refresh tag cache: %w", err)
	}

	llm, err := llmclient.New(sys.LLM, os.Getenv(sys.LLM.APIKeyEnv), cfg.Debug.LogPrompts, cfg.Debug.LogResponses)
	if err != nil {
		return nil, fmt.Errorf("build llm client: %w", err)
	}
	if cfg.Defaults != nil && cfg.Defaults.DocumentMasking != nil {
		llm.SetMasker(masking.NewService(masking.Config{
			Enabled:      cfg.Defaults.DocumentMasking.Enabled,
			PatternGroup: cfg.Defaults.DocumentMasking.PatternGroup,
		}))
	}

	ocr := ocrclient.New(sys.OCR.BaseURL, os.Getenv(sys.OCR.TokenEnv),
		sys.OCR.RequestTimeout, sys.OCR.MaxRetries, sys.OCR.Mock)

	tokens, err := llmclient.NewTokenCounter()
	if err != nil {
		return nil, fmt.Errorf("load token encoding: %w", err)
	}

	store := reviewqueue.New(dbClient.Client)
	resolver := reviewqueue.NewResolver(store, dms, cfg.Tags.ManualReview)
	logService := services.NewProcessingLogService(dbClient.Client)
	jobService := services.NewJobStateService(dbClient.Client)
	settingsService := services.NewSettingsService(dbClient.Client)
	warnings := services.NewSystemWarningsService()

	var indexer *vectorindex.Indexer
	if cfg.VectorSearch.Enabled && sys.VectorStore.Addr != "" {
		host, port, err := splitHostPort(sys.VectorStore.Addr)
		if err != nil {
			return nil, fmt.Errorf("parse vector store addr: %w", err)
		}
		qdrantClient, err := qdrant.NewClient(&qdrant.Config{
			Host:   host,
			Port:   port,
			APIKey: os.Getenv(sys.VectorStore.APIKeyEnv),
		})
		if err != nil {
			return nil, fmt.Errorf("connect vector store: %w", err)
		}
		indexer = vectorindex.New(qdrantClient, llm, sys.VectorStore, cfg.VectorSearch)
		if err := indexer.EnsureCollection(ctx); err != nil {
			slog.Warn("vector collection unavailable, indexing degraded", "error", err)
			warnings.AddWarning(services.WarningCategoryVectorStoreHealth,
				"vector store unreachable at startup", err.Error(), "qdrant")
		}
	}

	engines := &stageengine.Deps{
		LLM:                       llm,
		DMS:                       dms,
		OCR:                       ocr,
		Reviews:                   store,
		Prompts:                   cfg.Prompts,
		Tokens:                    tokens,
		Log:                       logService,
		MaxRetries:                cfg.Confirmation.MaxRetries,
		RequireUserForNewEntities: cfg.Confirmation.RequireUserForNewEntities,
		ConfirmKeywords:           cfg.Confirmation.ConfirmKeywords,
		PromptLanguage:            cfg.PromptLanguage,
		CustomFields:              cfg.CustomFields,
	}
	if indexer != nil {
		engines.Similarity = indexer
	}

	var pipelineIndexer pipeline.Indexer
	if indexer != nil {
		pipelineIndexer = indexer
	}
	orchestrator := pipeline.New(dms, engines, pipeline.NewReviewsAdapter(store), pipelineIndexer,
		logService, cfg.Pipeline, cfg.Tags, cfg.Debug.SaveProcessingHistory)

	var slackService *slack.Service
	if sys.Slack != nil && sys.Slack.Enabled {
		slackService = slack.NewService(slack.ServiceConfig{
			Token:   os.Getenv(sys.Slack.TokenEnv),
			Channel: sys.Slack.Channel,
		})
	}
	notifier := slack.NewPipelineNotifier(slackService)

	activity := scheduler.NewActivityTracker()
	sched := scheduler.New(orchestrator, dms, store, jobService, notifier, activity, cfg.Queue, cfg.Tags)
	orphans := scheduler.NewOrphanSweeper(sched, logService)

	maintenance := scheduler.NewMaintenance(jobService)
	if err := maintenance.Register("schema_cleanup", cfg.Queue.SchemaCleanupSchedule, scheduler.SchemaCleanup(store)); err != nil {
		return nil, err
	}
	metadataService := services.NewEntityMetadataService(dbClient.Client, dms, llm, cfg.PromptLanguage)
	if err := maintenance.Register("metadata_enhancement", cfg.Queue.MetadataEnhancementSchedule, metadataService.Enhance); err != nil {
		return nil, err
	}

	retention := cleanup.NewService(cfg.Retention, logService)

	server := api.NewServer(store, resolver, orchestrator, logService, jobService, settingsService)
	server.SetWarningsService(warnings)
	server.SetActivityTracker(activity)
	server.SetScheduler(sched)
	server.SetHealthCheck(func(ctx context.Context) error {
		_, err := database.Health(ctx, dbClient.DB())
		return err
	})

	return &app{
		dms:          dms,
		store:        store,
		resolver:     resolver,
		orchestrator: orchestrator,
		sched:        sched,
		orphans:      orphans,
		maintenance:  maintenance,
		retention:    retention,
		activity:     activity,
		logService:   logService,
		jobService:   jobService,
		server:       server,
		dbClient:     dbClient,
	}, nil
}

// serve runs the scheduler, maintenance jobs, retention loop, and HTTP
// server until a termination signal arrives.
func serve(ctx context.Context, cfg *config.Config, a *app) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.sched.Start(ctx)
	a.orphans.Start(ctx)
	a.maintenance.Start()
	a.retention.Start(ctx)

	httpPort := getEnv("HTTP_PORT", "8080")
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return a.server.Start(":" + httpPort)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Queue.GracefulShutdownTimeout)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})

	// groupCtx also cancels if the HTTP server fails to start, so a bad
	// port doesn't leave the process wedged with only the scheduler alive.
	<-groupCtx.Done()
	slog.Info("shutting down")

	a.retention.Stop()
	a.maintenance.Stop()
	a.sched.Stop()
	if err := group.Wait(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	slog.Info("corvid stopped")
}

// runBootstrap performs the one-off bulk ingest: every untagged document
// in the DMS corpus is marked pending at the configured rate.
func runBootstrap(ctx context.Context, cfg *config.Config, a *app) {
	workflowTags := map[string]bool{
		cfg.Tags.Pending:      true,
		cfg.Tags.ManualReview: true,
		cfg.Tags.Failed:       true,
	}
	for _, name := range cfg.Tags.ToTagNames() {
		workflowTags[name] = true
	}

	slog.Info("bootstrap starting",
		"rate_docs_per_second", cfg.Queue.BulkIngestRate,
		"inter_document_delay", scheduler.RateDelay(cfg.Queue.BulkIngestRate))
	tagged, err := scheduler.Bootstrap(ctx, a.dms, workflowTags, cfg.Tags.Pending, cfg.Tags.Processed, cfg.Queue.BulkIngestRate)
	if err != nil {
		log.Fatalf("Bootstrap failed after tagging %d documents: %v", tagged, err)
	}
	slog.Info("bootstrap complete", "documents_tagged", tagged)
}

// splitHostPort parses "host:port", defaulting to qdrant's gRPC port when
// no port is given.
func splitHostPort(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return addr, 6334, nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port %q", portStr)
	}
	return host, port, nil
}
