// Package api provides the HTTP and WebSocket API for timeline generation
// tasks.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chronicle-dev/chronicle/pkg/config"
	"github.com/chronicle-dev/chronicle/pkg/database"
	"github.com/chronicle-dev/chronicle/pkg/events"
	"github.com/chronicle-dev/chronicle/pkg/queue"
	"github.com/chronicle-dev/chronicle/pkg/services"
	"github.com/chronicle-dev/chronicle/pkg/version"
	"github.com/chronicle-dev/chronicle/pkg/wiki"
)

// Server is the HTTP API server.
type Server struct {
	router          *gin.Engine
	httpServer      *http.Server
	cfg             *config.Config
	dbClient        *database.Client
	taskService     *services.TaskService
	progressService *services.ProgressService
	timelineService *services.TimelineService
	workerPool      *queue.WorkerPool
	registry        *events.Registry
	wikiClient      *wiki.Client // nil until SetWikiClient is called
}

// NewServer creates a new API server.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	taskService *services.TaskService,
	progressService *services.ProgressService,
	timelineService *services.TimelineService,
	workerPool *queue.WorkerPool,
	registry *events.Registry,
) *Server {
	s := &Server{
		router:          gin.New(),
		cfg:             cfg,
		dbClient:        dbClient,
		taskService:     taskService,
		progressService: progressService,
		timelineService: timelineService,
		workerPool:      workerPool,
		registry:        registry,
	}
	s.router.Use(gin.Recovery(), requestLogger())
	s.setupRoutes()
	return s
}

// SetWikiClient wires the wiki client for the metrics endpoint.
func (s *Server) SetWikiClient(c *wiki.Client) { s.wikiClient = c }

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.POST("/tasks", s.handleCreateTask)
		api.POST("/tasks/from-entity/:entity_id", s.handleCreateTaskFromEntity)
		api.POST("/tasks/from-document/:source_document_id", s.handleCreateTaskFromDocument)
		api.GET("/tasks/:task_id", s.handleGetTask)
		api.GET("/tasks/:task_id/result", s.handleGetTaskResult)
		api.PATCH("/tasks/:task_id/sharing", s.handleUpdateSharing)
		api.GET("/public/timelines", s.handleListPublicTimelines)
		api.GET("/ws/timeline/from_task/:task_id", s.handleTimelineWS)
	}
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine { return s.router }

// handleHealth reports database, worker pool, and configuration health.
func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.dbClient.DB())
	status := http.StatusOK
	if err != nil {
		status = http.StatusServiceUnavailable
	}

	payload := gin.H{
		"status":   dbHealth.Status,
		"version":  version.Version,
		"database": dbHealth,
		"queue":    s.workerPool.Health(),
	}
	if s.wikiClient != nil {
		payload["wiki_metrics"] = s.wikiClient.Metrics().Snapshot()
	}
	c.JSON(status, payload)
}
