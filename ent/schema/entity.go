package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Entity holds the schema definition for the Entity entity: a stable
// identifier for a named thing (person, place, organization, ...).
type Entity struct {
	ent.Schema
}

// Fields of the Entity.
func (Entity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entity_id").
			Unique().
			Immutable().
			Comment("UUID assigned by the entity linker"),
		field.String("entity_name"),
		field.String("entity_type"),
		field.String("language").
			Default("en"),
		field.Bool("is_verified_existent").
			Optional().
			Nillable().
			Comment("Set when external verification was consulted"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Entity.
func (Entity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("events", Event.Type).
			Ref("entities"),
	}
}

// Indexes of the Entity.
func (Entity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_name", "entity_type").
			Unique(),
	}
}
