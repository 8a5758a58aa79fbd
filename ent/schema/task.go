package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity: a user request to
// produce a viewpoint. Tasks are claimed and processed by the queue worker
// pool.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.Text("topic_text"),
		field.Enum("task_type").
			Values("synthetic_viewpoint", "entity_canonical", "document_canonical").
			Default("synthetic_viewpoint"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.JSON("config", map[string]any{}).
			Optional().
			Comment("Opaque acquisition config; validated by the orchestrator"),
		field.String("owner").
			Optional(),
		field.Bool("is_public").
			Default(false),
		field.Float("processing_duration").
			Optional().
			Nillable().
			Comment("Seconds, set on terminal status"),
		field.String("notes").
			Optional().
			MaxLen(500),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat timestamp for orphan detection"),
		field.Int("viewpoint_id").
			Optional().
			Nillable().
			Comment("Set on success"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("viewpoint", Viewpoint.Type).
			Field("viewpoint_id").
			Unique(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
		index.Fields("is_public", "created_at"),
	}
}
