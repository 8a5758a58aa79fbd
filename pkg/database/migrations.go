package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates the PostgreSQL search indexes the dataset
// strategies rely on: a GIN full-text index over article titles for the
// hybrid title search, and an IVFFlat index for vector chunk search.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for article title full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_article_chunks_title_gin
		ON article_chunks USING gin(to_tsvector('english', article_title))`)
	if err != nil {
		return fmt.Errorf("failed to create article title GIN index: %w", err)
	}

	// IVFFlat index for cosine-distance chunk search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_article_chunks_embedding_ivfflat
		ON article_chunks USING ivfflat (embedding vector_cosine_ops) WITH (lists = 100)`)
	if err != nil {
		return fmt.Errorf("failed to create chunk embedding index: %w", err)
	}

	return nil
}
