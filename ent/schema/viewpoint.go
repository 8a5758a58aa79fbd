package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Viewpoint holds the schema definition for the Viewpoint entity.
// A viewpoint is a coherent set of events around a topic. Canonical
// viewpoints belong to exactly one source document; synthetic viewpoints
// aggregate events from many sources.
type Viewpoint struct {
	ent.Schema
}

// Fields of the Viewpoint.
func (Viewpoint) Fields() []ent.Field {
	return []ent.Field{
		field.Text("topic"),
		field.Enum("viewpoint_type").
			Values("canonical", "synthetic"),
		field.String("data_source_preference").
			Default("online_wikipedia").
			Comment("CSV of article acquisition strategy names"),
		field.Enum("status").
			Values("populating", "processing", "completed", "failed").
			Default("populating"),
		field.Int("canonical_source_id").
			Optional().
			Nillable().
			Comment("Owning source document; set only for canonical viewpoints"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Viewpoint.
func (Viewpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("canonical_source", SourceDocument.Type).
			Ref("canonical_viewpoint").
			Field("canonical_source_id").
			Unique(),
		edge.To("events", Event.Type).
			Through("viewpoint_associations", ViewpointEvent.Type),
		edge.From("viewpoint_events", ViewpointEvent.Type).
			Ref("viewpoint").
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.From("task", Task.Type).
			Ref("viewpoint"),
	}
}

// Indexes of the Viewpoint.
func (Viewpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("viewpoint_type", "status"),
		index.Fields("data_source_preference"),
	}
}
