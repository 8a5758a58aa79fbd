package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/chronicle-dev/chronicle/ent"
)

// Publisher fans progress events out to (a) the task's append-only progress
// log and (b) the WebSocket registry. The log write uses its own transaction
// scope (the bare client) so pipeline transactions never hold it hostage.
type Publisher struct {
	client   *ent.Client
	registry *Registry
}

// NewPublisher creates a progress publisher. registry may be nil (no
// WebSocket delivery).
func NewPublisher(client *ent.Client, registry *Registry) *Publisher {
	return &Publisher{client: client, registry: registry}
}

// Publish records one progress event. Log failures are logged, never
// propagated — progress delivery must not fail the pipeline.
func (p *Publisher) Publish(ctx context.Context, taskID, requestID, step, message string, data map[string]any) {
	now := time.Now()

	create := p.client.ProgressStep.Create().
		SetTaskID(taskID).
		SetStepName(step).
		SetMessage(message).
		SetRequestID(requestID).
		SetEventTimestamp(now)
	if data != nil {
		create = create.SetData(data)
	}
	if err := create.Exec(ctx); err != nil {
		slog.Error("Failed to persist progress step",
			"task_id", taskID, "step", step, "error", err)
	}

	if p.registry != nil {
		msgType := TypeStatus
		switch step {
		case StepTaskCompleted:
			msgType = TypeTaskCompleted
		case StepTaskFailed:
			msgType = TypeTaskFailed
		}
		p.registry.Push(taskID, Message{
			Type:      msgType,
			Message:   message,
			Step:      step,
			Data:      data,
			RequestID: requestID,
			Timestamp: now,
		})
	}
}
