// Package api provides the HTTP admin surface for corvid: pending-review
// CRUD and bulk disposition, blocklist management, NDJSON pipeline event
// streaming, ad-hoc per-stage invocation, processing-log replay, job
// status, and health.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/corvid/pkg/events"
	"github.com/codeready-toolchain/corvid/pkg/models"
	"github.com/codeready-toolchain/corvid/pkg/pipeline"
	"github.com/codeready-toolchain/corvid/pkg/reviewqueue"
	"github.com/codeready-toolchain/corvid/pkg/scheduler"
	"github.com/codeready-toolchain/corvid/pkg/services"
)

// ReviewStore is the review-queue surface the API exposes. Implemented by
// *reviewqueue.Store.
type ReviewStore interface {
	GetByID(ctx context.Context, id string) (*models.ReviewResponse, error)
	List(ctx context.Context, filter ReviewListFilter) ([]models.ReviewResponse, error)
	CountsByKind(ctx context.Context) (map[models.ReviewKind]int, error)
	SimilarGroups(ctx context.Context) ([]models.SimilarGroup, error)
	Block(ctx context.Context, kind models.ReviewKind, suggestion string) error
}

// ReviewListFilter is the queue's own list filter; aliased so handlers
// and fakes share the concrete store's type.
type ReviewListFilter = reviewqueue.ListFilter

// Resolver applies approve/reject semantics. Implemented by
// *reviewqueue.Resolver.
type Resolver interface {
	Approve(ctx context.Context, id string, req models.ApproveReviewRequest) error
	Reject(ctx context.Context, id string, req models.RejectReviewRequest) error
	Bulk(ctx context.Context, req models.BulkResolveRequest) map[string]error
}

// Orchestrator drives pipeline runs for the streaming endpoints.
type Orchestrator interface {
	Run(ctx context.Context, docID int, sink events.Sink) *pipeline.Result
	RunStep(ctx context.Context, docID int, step string, sink events.Sink) *pipeline.Result
}

// ProcessingLogs serves the replay endpoint. Implemented by
// *services.ProcessingLogService.
type ProcessingLogs interface {
	ListByDoc(ctx context.Context, docID int) ([]models.LogEntryResponse, error)
}

// JobStates serves the scheduler status endpoint. Implemented by
// *services.JobStateService.
type JobStates interface {
	List(ctx context.Context) ([]models.JobStateResponse, error)
}

// Settings serves the settings endpoints. Implemented by
// *services.SettingsService.
type Settings interface {
	All(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
}

// Server is the HTTP API server.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server

	reviews      ReviewStore
	resolver     Resolver
	orchestrator Orchestrator
	logs         ProcessingLogs
	jobs         JobStates
	settings     Settings
	warnings     *services.SystemWarningsService
	activity     *scheduler.ActivityTracker
	sched        *scheduler.Scheduler // nil until SetScheduler is called
	healthCheck  func(ctx context.Context) error
}

// NewServer creates a new API server and registers all routes. warnings,
// activity, sched, and healthCheck may be nil.
func NewServer(reviews ReviewStore, resolver Resolver, orchestrator Orchestrator, logs ProcessingLogs, jobs JobStates, settings Settings) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(requestLogger(), gin.Recovery(), securityHeaders())

	s := &Server{
		engine:       engine,
		reviews:      reviews,
		resolver:     resolver,
		orchestrator: orchestrator,
		logs:         logs,
		jobs:         jobs,
		settings:     settings,
	}
	s.setupRoutes()
	return s
}

// SetWarningsService sets the system warnings service for the health
// endpoint.
func (s *Server) SetWarningsService(svc *services.SystemWarningsService) {
	s.warnings = svc
}

// SetActivityTracker wires the scheduler's user-activity pause: manual
// pipeline invocations and review actions touch it.
func (s *Server) SetActivityTracker(t *scheduler.ActivityTracker) {
	s.activity = t
}

// SetScheduler enables the cancel endpoint against the running scheduler.
func (s *Server) SetScheduler(sched *scheduler.Scheduler) {
	s.sched = sched
}

// SetHealthCheck sets the database reachability probe for /healthz.
func (s *Server) SetHealthCheck(probe func(ctx context.Context) error) {
	s.healthCheck = probe
}

func (s *Server) setupRoutes() {
	s.engine.GET("/healthz", s.handleHealth)

	api := s.engine.Group("/api")
	{
		api.GET("/reviews", s.handleListReviews)
		api.GET("/reviews/counts", s.handleReviewCounts)
		api.GET("/reviews/similar", s.handleSimilarGroups)
		api.GET("/reviews/:id", s.handleGetReview)
		api.POST("/reviews/:id/approve", s.handleApproveReview)
		api.POST("/reviews/:id/reject", s.handleRejectReview)
		api.POST("/reviews/bulk", s.handleBulkResolve)

		api.POST("/blocklist", s.handleBlockSuggestion)

		api.POST("/documents/:id/process", s.handleProcessDocument)
		api.POST("/documents/:id/steps/:step", s.handleRunStep)
		api.GET("/documents/:id/log", s.handleProcessingLog)

		api.GET("/jobs", s.handleJobStates)
		api.POST("/jobs/cancel", s.handleCancelCurrent)

		api.GET("/settings", s.handleGetSettings)
		api.PUT("/settings/:key", s.handlePutSetting)

		api.GET("/warnings", s.handleWarnings)
	}
}

// Start begins serving on addr, blocking until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("API server listening", "addr", addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// touchActivity records a user-driven action for the scheduler's
// user-activity pause.
func (s *Server) touchActivity() {
	if s.activity != nil {
		s.activity.Touch()
	}
}
