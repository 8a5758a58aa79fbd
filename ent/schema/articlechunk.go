package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	pgvector "github.com/pgvector/pgvector-go"
)

// ArticleChunk holds the schema definition for the ArticleChunk entity:
// one embedded chunk of a local-dataset Wikipedia article. Chunks are
// queried by vector similarity (pgvector) and by title full-text search.
type ArticleChunk struct {
	ent.Schema
}

// Fields of the ArticleChunk.
func (ArticleChunk) Fields() []ent.Field {
	return []ent.Field{
		field.String("article_title"),
		field.String("article_url").
			Optional(),
		field.Int("chunk_index").
			Comment("Ordering within the article"),
		field.Text("text"),
		field.Other("embedding", pgvector.Vector{}).
			SchemaType(map[string]string{
				dialect.Postgres: "vector(768)",
			}),
		field.String("language").
			Default("en"),
	}
}

// Indexes of the ArticleChunk.
func (ArticleChunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("article_title", "chunk_index").
			Unique(),
	}
}
