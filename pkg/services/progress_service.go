package services

import (
	"context"
	"fmt"

	"github.com/chronicle-dev/chronicle/ent"
	"github.com/chronicle-dev/chronicle/ent/progressstep"
	"github.com/chronicle-dev/chronicle/pkg/models"
)

// ProgressService reads the append-only progress log of a task. Writes go
// through events.Publisher.
type ProgressService struct {
	client *ent.Client
}

// NewProgressService creates a progress service.
func NewProgressService(client *ent.Client) *ProgressService {
	return &ProgressService{client: client}
}

// List returns a task's progress messages in receive order.
func (s *ProgressService) List(ctx context.Context, taskID string) ([]models.ProgressMessage, error) {
	steps, err := s.client.ProgressStep.Query().
		Where(progressstep.TaskIDEQ(taskID)).
		Order(ent.Asc(progressstep.FieldEventTimestamp), ent.Asc(progressstep.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying progress steps: %w", err)
	}

	out := make([]models.ProgressMessage, 0, len(steps))
	for _, st := range steps {
		out = append(out, models.ProgressMessage{
			StepName:  st.StepName,
			Message:   st.Message,
			Data:      st.Data,
			Timestamp: st.EventTimestamp,
			RequestID: st.RequestID,
		})
	}
	return out, nil
}

// DeleteOlderThan removes every progress step of the given tasks; it applies
// no age or task-status filter of its own. Idempotent.
func (s *ProgressService) DeleteOlderThan(ctx context.Context, taskIDs []string) (int, error) {
	if len(taskIDs) == 0 {
		return 0, nil
	}
	n, err := s.client.ProgressStep.Delete().
		Where(progressstep.TaskIDIn(taskIDs...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("deleting progress steps: %w", err)
	}
	return n, nil
}
