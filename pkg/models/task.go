// Package models defines request/response DTOs shared by the HTTP API and
// the MCP tools.
package models

import (
	"time"

	"github.com/chronicle-dev/chronicle/ent"
)

// CreateTaskRequest creates a new timeline generation task.
type CreateTaskRequest struct {
	TopicText string         `json:"topic_text" binding:"required"`
	Config    map[string]any `json:"config,omitempty"`
	IsPublic  *bool          `json:"is_public,omitempty"`
	Owner     string         `json:"-"`
}

// UpdateSharingRequest toggles a task's public visibility.
type UpdateSharingRequest struct {
	IsPublic bool `json:"is_public"`
}

// TaskResponse wraps a Task for API responses.
type TaskResponse struct {
	TaskID             string            `json:"task_id"`
	TopicText          string            `json:"topic_text"`
	TaskType           string            `json:"task_type"`
	Status             string            `json:"status"`
	IsPublic           bool              `json:"is_public"`
	ViewpointID        *int              `json:"viewpoint_id,omitempty"`
	ProcessingDuration *float64          `json:"processing_duration,omitempty"`
	Notes              string            `json:"notes,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	CompletedAt        *time.Time        `json:"completed_at,omitempty"`
	ProgressMessages   []ProgressMessage `json:"progress_messages,omitempty"`
}

// ProgressMessage is one entry of a task's progress log.
type ProgressMessage struct {
	StepName  string         `json:"step_name"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"event_timestamp"`
	RequestID string         `json:"request_id,omitempty"`
}

// NewTaskResponse converts an ent Task.
func NewTaskResponse(t *ent.Task) TaskResponse {
	return TaskResponse{
		TaskID:             t.ID,
		TopicText:          t.TopicText,
		TaskType:           string(t.TaskType),
		Status:             string(t.Status),
		IsPublic:           t.IsPublic,
		ViewpointID:        t.ViewpointID,
		ProcessingDuration: t.ProcessingDuration,
		Notes:              t.Notes,
		CreatedAt:          t.CreatedAt,
		CompletedAt:        t.CompletedAt,
	}
}
