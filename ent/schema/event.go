package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Event holds the schema definition for the Event entity.
// An event is a consolidated historical event usable in viewpoints. It is
// backed by one or more raw events and associated with zero or more entities.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Text("description"),
		field.String("event_date_str").
			Optional(),
		field.JSON("date_info", map[string]any{}).
			Optional().
			Comment("Structured ParsedDate"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("raw_events", RawEvent.Type).
			Comment("Provenance: the raw events this event consolidates"),
		edge.To("entities", Entity.Type),
		edge.From("viewpoint_events", ViewpointEvent.Type).
			Ref("event"),
		edge.From("viewpoints", Viewpoint.Type).
			Ref("events").
			Through("viewpoint_associations", ViewpointEvent.Type),
	}
}
