// Package e2e contains end-to-end tests for the document-enrichment
// pipeline: a real Postgres-backed review queue, an in-memory DMS, and a
// scripted LLM, driven through the real orchestrator and scheduler.
package e2e

import (
	"context"
	"testing"

	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/events"
	"github.com/codeready-toolchain/corvid/pkg/models"
	"github.com/codeready-toolchain/corvid/pkg/ocrclient"
	"github.com/codeready-toolchain/corvid/pkg/pipeline"
	"github.com/codeready-toolchain/corvid/pkg/reviewqueue"
	"github.com/codeready-toolchain/corvid/pkg/scheduler"
	"github.com/codeready-toolchain/corvid/pkg/services"
	"github.com/codeready-toolchain/corvid/pkg/stageengine"
	"github.com/codeready-toolchain/corvid/pkg/vectorindex"
	"github.com/codeready-toolchain/corvid/test/util"
)

// FakeIndexer records projections instead of talking to qdrant.
type FakeIndexer struct {
	Indexed []vectorindex.Projection
	Err     error
}

func (f *FakeIndexer) Index(_ context.Context, p vectorindex.Projection) error {
	if f.Err != nil {
		return f.Err
	}
	f.Indexed = append(f.Indexed, p)
	return nil
}

// ocrAdapter turns the "binary" (the seeded content bytes) straight into
// text, like the real adapter's mock mode.
type ocrAdapter struct{}

func (ocrAdapter) Extract(_ context.Context, _ int, _ string, content []byte) (*ocrclient.Result, error) {
	return &ocrclient.Result{Text: string(content), Pages: 1}, nil
}

// TestApp bundles a fully wired pipeline against fakes for every external
// collaborator except Postgres.
type TestApp struct {
	DMS          *FakeDMS
	LLM          *MockLLM
	Store        *reviewqueue.Store
	Resolver     *reviewqueue.Resolver
	Orchestrator *pipeline.Orchestrator
	Scheduler    *scheduler.Scheduler
	Activity     *scheduler.ActivityTracker
	Indexer      *FakeIndexer
	Logs         *services.ProcessingLogService
	Jobs         *services.JobStateService
	Tags         *config.WorkflowTagConfig
}

// Option mutates the app's configuration before wiring.
type Option func(*appConfig)

type appConfig struct {
	pipeline     *config.PipelineConfig
	confirmation *config.ConfirmationConfig
	customFields *config.CustomFieldRegistry
}

// WithPipeline overrides stage toggles.
func WithPipeline(p *config.PipelineConfig) Option {
	return func(c *appConfig) { c.pipeline = p }
}

// WithConfirmation overrides the confirmation-loop policy.
func WithConfirmation(cc *config.ConfirmationConfig) Option {
	return func(c *appConfig) { c.confirmation = cc }
}

// WithCustomFields configures the custom-field selection.
func WithCustomFields(r *config.CustomFieldRegistry) Option {
	return func(c *appConfig) { c.customFields = r }
}

// NewTestApp wires the pipeline with a fresh Postgres schema, a FakeDMS,
// and the given LLM script.
func NewTestApp(t *testing.T, llm *MockLLM, opts ...Option) *TestApp {
	t.Helper()

	cfg := &appConfig{
		pipeline:     config.DefaultPipelineConfig(),
		confirmation: config.DefaultConfirmationConfig(),
		customFields: &config.CustomFieldRegistry{Fields: map[string]models.CustomFieldDef{}},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	entClient, _ := util.SetupTestDatabase(t)

	dms := NewFakeDMS()
	store := reviewqueue.New(entClient)
	tags := config.DefaultWorkflowTagConfig()
	resolver := reviewqueue.NewResolver(store, dms, tags.ManualReview)
	logService := services.NewProcessingLogService(entClient)
	jobService := services.NewJobStateService(entClient)
	indexer := &FakeIndexer{}

	engines := &stageengine.Deps{
		LLM:                       llm,
		DMS:                       dms,
		OCR:                       ocrAdapter{},
		Reviews:                   store,
		Prompts:                   testPromptRegistry(),
		Log:                       logService,
		MaxRetries:                cfg.confirmation.MaxRetries,
		RequireUserForNewEntities: cfg.confirmation.RequireUserForNewEntities,
		ConfirmKeywords:           cfg.confirmation.ConfirmKeywords,
		PromptLanguage:            "en",
		CustomFields:              cfg.customFields,
	}

	orchestrator := pipeline.New(dms, engines, pipeline.NewReviewsAdapter(store), indexer,
		logService, cfg.pipeline, tags, true)

	activity := scheduler.NewActivityTracker()
	queueCfg := config.DefaultQueueConfig()
	sched := scheduler.New(orchestrator, dms, store, jobService, nil, activity, queueCfg, tags)

	return &TestApp{
		DMS:          dms,
		LLM:          llm,
		Store:        store,
		Resolver:     resolver,
		Orchestrator: orchestrator,
		Scheduler:    sched,
		Activity:     activity,
		Indexer:      indexer,
		Logs:         logService,
		Jobs:         jobService,
		Tags:         tags,
	}
}

// Run drives one document through the pipeline, returning the batch
// summary and the recorded event stream.
func (a *TestApp) Run(t *testing.T, docID int) (*pipeline.Result, []events.Event) {
	t.Helper()
	sink := events.NewRecordingSink()
	result := a.Orchestrator.Run(context.Background(), docID, sink)
	return result, sink.Events()
}
