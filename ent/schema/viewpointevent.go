package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// ViewpointEvent is the join schema between Viewpoint and Event. It exists
// as an explicit edge schema because the association carries the relevance
// score computed by the pipeline.
type ViewpointEvent struct {
	ent.Schema
}

// Annotations of the ViewpointEvent.
func (ViewpointEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		field.ID("viewpoint_id", "event_id"),
	}
}

// Fields of the ViewpointEvent.
func (ViewpointEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("viewpoint_id"),
		field.Int("event_id"),
		field.Float("relevance_score").
			Default(0).
			Comment("Max relevance over merged-group contributors; 0.0 means unknown, not irrelevant"),
	}
}

// Edges of the ViewpointEvent.
func (ViewpointEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("viewpoint", Viewpoint.Type).
			Unique().
			Required().
			Field("viewpoint_id"),
		edge.To("event", Event.Type).
			Unique().
			Required().
			Field("event_id"),
	}
}
