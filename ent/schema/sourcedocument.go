package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SourceDocument holds the schema definition for the SourceDocument entity.
// A source document uniquely identifies an external article (Wikipedia page,
// Wikinews article, dataset document) by (source_name, source_identifier).
type SourceDocument struct {
	ent.Schema
}

// Fields of the SourceDocument.
func (SourceDocument) Fields() []ent.Field {
	return []ent.Field{
		field.String("source_name").
			Comment("Backend that produced the document (e.g. 'online_wikipedia')"),
		field.String("source_identifier").
			Comment("Stable identifier within the backend (page id or URL)"),
		field.String("title"),
		field.String("url").
			Optional(),
		field.String("language").
			Default("en"),
		field.String("source_type").
			Default("wikipedia"),
		field.Enum("processing_status").
			Values("pending", "completed", "failed").
			Default("pending").
			Comment("Mutated only by the canonical viewpoint store"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SourceDocument.
func (SourceDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("raw_events", RawEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("canonical_viewpoint", Viewpoint.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the SourceDocument.
func (SourceDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_name", "source_identifier").
			Unique(),
		index.Fields("processing_status"),
	}
}
