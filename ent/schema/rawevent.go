package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RawEvent holds the schema definition for the RawEvent entity.
// A raw event is an event exactly as asserted by one source document,
// immutable after creation.
type RawEvent struct {
	ent.Schema
}

// Fields of the RawEvent.
func (RawEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Text("original_description").
			Immutable(),
		field.String("event_date_str").
			Optional().
			Immutable(),
		field.JSON("date_info", map[string]any{}).
			Optional().
			Comment("Structured ParsedDate as extracted"),
		field.Text("source_text_snippet").
			Optional().
			Immutable(),
		field.String("dedup_signature").
			Immutable().
			Comment("sha256 of '{source_document_id}-{description}-{date_str}'"),
		field.Int("source_document_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RawEvent.
func (RawEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("source_document", SourceDocument.Type).
			Ref("raw_events").
			Field("source_document_id").
			Unique().
			Required().
			Immutable(),
		edge.From("events", Event.Type).
			Ref("raw_events"),
	}
}

// Indexes of the RawEvent.
func (RawEvent) Indexes() []ent.Index {
	return []ent.Index{
		// One raw event per (document, signature): the within-article
		// deduplication invariant.
		index.Fields("source_document_id", "dedup_signature").
			Unique(),
	}
}
