package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chronicle-dev/chronicle/ent"
	"github.com/chronicle-dev/chronicle/ent/task"
	"github.com/chronicle-dev/chronicle/pkg/models"
)

// TaskService manages task records.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a task service.
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTask persists a new pending task of the given type.
func (s *TaskService) CreateTask(ctx context.Context, req models.CreateTaskRequest, taskType task.TaskType) (*ent.Task, error) {
	create := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetTopicText(req.TopicText).
		SetTaskType(taskType)
	if req.Config != nil {
		create = create.SetConfig(req.Config)
	}
	if req.IsPublic != nil {
		create = create.SetIsPublic(*req.IsPublic)
	}
	if req.Owner != "" {
		create = create.SetOwner(req.Owner)
	}

	t, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return t, nil
}

// GetTask fetches a task by ID.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("querying task: %w", err)
	}
	return t, nil
}

// UpdateSharing toggles a task's public visibility.
func (s *TaskService) UpdateSharing(ctx context.Context, taskID string, isPublic bool) (*ent.Task, error) {
	t, err := s.client.Task.UpdateOneID(taskID).
		SetIsPublic(isPublic).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("updating task sharing: %w", err)
	}
	return t, nil
}

// ListPublicCompleted returns completed public tasks, newest first.
func (s *TaskService) ListPublicCompleted(ctx context.Context, limit, offset int) ([]*ent.Task, error) {
	if limit <= 0 {
		limit = 20
	}
	tasks, err := s.client.Task.Query().
		Where(
			task.IsPublicEQ(true),
			task.StatusEQ(task.StatusCompleted),
		).
		Order(ent.Desc(task.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing public tasks: %w", err)
	}
	return tasks, nil
}
