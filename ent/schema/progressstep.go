package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressStep holds the schema definition for the ProgressStep entity:
// an append-only log entry recording pipeline progress for a task.
type ProgressStep struct {
	ent.Schema
}

// Fields of the ProgressStep.
func (ProgressStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			Immutable(),
		field.String("step_name").
			Immutable(),
		field.Text("message").
			Immutable(),
		field.JSON("data", map[string]any{}).
			Optional().
			Immutable(),
		field.Time("event_timestamp").
			Default(time.Now).
			Immutable(),
		field.String("request_id").
			Optional().
			Immutable(),
	}
}

// Indexes of the ProgressStep.
func (ProgressStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "event_timestamp"),
	}
}
