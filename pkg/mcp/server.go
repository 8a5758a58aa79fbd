// Package mcp exposes timeline generation to AI agents as MCP tools:
// create_timeline, get_timeline_result, list_recent_public_timelines, and
// get_service_status.
package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	enttask "github.com/chronicle-dev/chronicle/ent/task"
	"github.com/chronicle-dev/chronicle/pkg/models"
	"github.com/chronicle-dev/chronicle/pkg/queue"
	"github.com/chronicle-dev/chronicle/pkg/services"
	"github.com/chronicle-dev/chronicle/pkg/version"
)

// publicListLimit caps list_recent_public_timelines results.
const publicListLimit = 50

// Server exposes the MCP tool surface over stdio.
type Server struct {
	taskService     *services.TaskService
	timelineService *services.TimelineService
	workerPool      *queue.WorkerPool

	mcpServer *mcpsdk.Server
}

// NewServer builds the MCP server and registers the tools.
func NewServer(
	taskService *services.TaskService,
	timelineService *services.TimelineService,
	workerPool *queue.WorkerPool,
) *Server {
	s := &Server{
		taskService:     taskService,
		timelineService: timelineService,
		workerPool:      workerPool,
	}

	srv := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.Version,
	}, nil)

	mcpsdk.AddTool(srv, &mcpsdk.Tool{
		Name:        "create_timeline",
		Description: "Submit a topic and start generating a historical timeline for it. Returns a task id to poll.",
	}, s.createTimeline)
	mcpsdk.AddTool(srv, &mcpsdk.Tool{
		Name:        "get_timeline_result",
		Description: "Fetch the status and, when completed, the full timeline of a task.",
	}, s.getTimelineResult)
	mcpsdk.AddTool(srv, &mcpsdk.Tool{
		Name:        "list_recent_public_timelines",
		Description: "List recently completed public timelines.",
	}, s.listPublicTimelines)
	mcpsdk.AddTool(srv, &mcpsdk.Tool{
		Name:        "get_service_status",
		Description: "Report queue and worker pool health.",
	}, s.serviceStatus)

	s.mcpServer = srv
	return s
}

// Run serves MCP over stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// --- Tool inputs/outputs ---

// CreateTimelineInput is the create_timeline tool input.
type CreateTimelineInput struct {
	TopicText string         `json:"topic_text" jsonschema:"the research viewpoint or topic to build a timeline for"`
	Config    map[string]any `json:"config,omitempty" jsonschema:"optional acquisition config (search_mode, vector_weight, bm25_weight, article_limit, data_source_preference)"`
}

// CreateTimelineOutput is the create_timeline tool output.
type CreateTimelineOutput struct {
	TaskID  string `json:"task_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Reused  bool   `json:"reused,omitempty"`
}

func (s *Server) createTimeline(ctx context.Context, req *mcpsdk.CallToolRequest, in CreateTimelineInput) (*mcpsdk.CallToolResult, CreateTimelineOutput, error) {
	if in.TopicText == "" {
		return nil, CreateTimelineOutput{}, fmt.Errorf("topic_text is required")
	}

	t, err := s.taskService.CreateTask(ctx, models.CreateTaskRequest{
		TopicText: in.TopicText,
		Config:    in.Config,
	}, enttask.TaskTypeSyntheticViewpoint)
	if err != nil {
		return nil, CreateTimelineOutput{}, err
	}

	return nil, CreateTimelineOutput{
		TaskID:  t.ID,
		Status:  string(t.Status),
		Message: "timeline generation queued; poll get_timeline_result with the task id",
	}, nil
}

// GetTimelineResultInput is the get_timeline_result tool input.
type GetTimelineResultInput struct {
	TaskID string `json:"task_id" jsonschema:"the task id returned by create_timeline"`
}

func (s *Server) getTimelineResult(ctx context.Context, req *mcpsdk.CallToolRequest, in GetTimelineResultInput) (*mcpsdk.CallToolResult, *models.TimelineResult, error) {
	t, err := s.taskService.GetTask(ctx, in.TaskID)
	if err != nil {
		return nil, nil, err
	}
	result, err := s.timelineService.GetTimelineResult(ctx, t)
	if err != nil {
		return nil, nil, err
	}
	return nil, result, nil
}

// ListPublicTimelinesInput is the list_recent_public_timelines tool input.
type ListPublicTimelinesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of timelines to return (max 50)"`
}

// ListPublicTimelinesOutput is the list_recent_public_timelines tool output.
type ListPublicTimelinesOutput struct {
	Timelines []models.TaskResponse `json:"timelines"`
}

func (s *Server) listPublicTimelines(ctx context.Context, req *mcpsdk.CallToolRequest, in ListPublicTimelinesInput) (*mcpsdk.CallToolResult, ListPublicTimelinesOutput, error) {
	limit := in.Limit
	if limit <= 0 || limit > publicListLimit {
		limit = publicListLimit
	}
	tasks, err := s.taskService.ListPublicCompleted(ctx, limit, 0)
	if err != nil {
		return nil, ListPublicTimelinesOutput{}, err
	}

	out := ListPublicTimelinesOutput{Timelines: make([]models.TaskResponse, 0, len(tasks))}
	for _, t := range tasks {
		out.Timelines = append(out.Timelines, models.NewTaskResponse(t))
	}
	return nil, out, nil
}

// ServiceStatusInput is the get_service_status tool input.
type ServiceStatusInput struct{}

// ServiceStatusOutput is the get_service_status tool output.
type ServiceStatusOutput struct {
	Version string            `json:"version"`
	Queue   *queue.PoolHealth `json:"queue"`
}

func (s *Server) serviceStatus(ctx context.Context, req *mcpsdk.CallToolRequest, in ServiceStatusInput) (*mcpsdk.CallToolResult, ServiceStatusOutput, error) {
	return nil, ServiceStatusOutput{
		Version: version.Full(),
		Queue:   s.workerPool.Health(),
	}, nil
}
