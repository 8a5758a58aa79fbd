package articles

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/chronicle-dev/chronicle/pkg/embedding"
)

// DatasetWikipediaEnHybrid fuses vector chunk search with title-focused
// full-text (BM25-style) search. Activated when the task config requests
// search_mode=hybrid_title_search; it replaces the semantic strategy behind
// the same interface.
type DatasetWikipediaEnHybrid struct {
	semantic *DatasetWikipediaEn
	db       *sql.DB
}

// NewDatasetWikipediaEnHybrid creates the hybrid dataset strategy.
func NewDatasetWikipediaEnHybrid(db *sql.DB, encoder embedding.Encoder) *DatasetWikipediaEnHybrid {
	return &DatasetWikipediaEnHybrid{
		semantic: NewDatasetWikipediaEn(db, encoder),
		db:       db,
	}
}

// Name implements Strategy. The hybrid variant answers for the dataset
// source name; the service selects it by search mode.
func (s *DatasetWikipediaEnHybrid) Name() string { return SourceDatasetWikipedia }

// GetArticles implements Strategy. Vector and BM25 searches run
// concurrently; per-chunk scores fuse as
// w_v*similarity + w_b*normalized_bm25. A zero weight degrades to the pure
// counterpart search.
func (s *DatasetWikipediaEnHybrid) GetArticles(ctx context.Context, query QueryData) ([]SourceArticle, error) {
	cfg := query.Config
	if cfg.VectorWeight == 0 && cfg.BM25Weight == 0 {
		return nil, fmt.Errorf("hybrid search requires a non-zero vector_weight or bm25_weight")
	}
	limit := cfg.ArticleLimit
	if limit <= 0 {
		limit = 10
	}
	chunkLimit := limit * chunkFetchMultiplier

	var vectorHits, bm25Hits []chunkHit
	g, gctx := errgroup.WithContext(ctx)
	if cfg.VectorWeight > 0 {
		g.Go(func() error {
			var err error
			vectorHits, err = s.semantic.vectorSearch(gctx, query.DatasetQueryText(), chunkLimit)
			return err
		})
	}
	if cfg.BM25Weight > 0 {
		g.Go(func() error {
			var err error
			bm25Hits, err = s.titleSearch(gctx, query.DatasetQueryText(), chunkLimit)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fused := FuseChunkScores(vectorHits, bm25Hits, cfg.VectorWeight, cfg.BM25Weight)
	return assembleArticles(fused, limit), nil
}

// titleSearch runs full-text search over article titles, returning chunks of
// matching articles ranked by ts_rank.
func (s *DatasetWikipediaEnHybrid) titleSearch(ctx context.Context, queryText string, chunkLimit int) ([]chunkHit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT article_title, COALESCE(article_url, ''), chunk_index, text,
		       ts_rank(to_tsvector('english', article_title), plainto_tsquery('english', $1)) AS rank
		FROM article_chunks
		WHERE to_tsvector('english', article_title) @@ plainto_tsquery('english', $1)
		ORDER BY rank DESC, article_title, chunk_index
		LIMIT $2`,
		queryText, chunkLimit)
	if err != nil {
		return nil, fmt.Errorf("title search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var hits []chunkHit
	for rows.Next() {
		var h chunkHit
		if err := rows.Scan(&h.ArticleTitle, &h.ArticleURL, &h.ChunkIndex, &h.Text, &h.Score); err != nil {
			return nil, fmt.Errorf("scanning title search row: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// FuseChunkScores combines per-chunk scores from the two searches. BM25
// ranks are normalized by the maximum; vector scores are already cosine
// similarities in [0,1].
func FuseChunkScores(vectorHits, bm25Hits []chunkHit, vectorWeight, bm25Weight float64) []chunkHit {
	var maxBM25 float64
	for _, h := range bm25Hits {
		if h.Score > maxBM25 {
			maxBM25 = h.Score
		}
	}

	type key struct {
		title string
		index int
	}
	fused := make(map[key]chunkHit)
	order := make([]key, 0, len(vectorHits)+len(bm25Hits))

	add := func(h chunkHit, score float64) {
		k := key{h.ArticleTitle, h.ChunkIndex}
		if existing, ok := fused[k]; ok {
			existing.Score += score
			fused[k] = existing
			return
		}
		h.Score = score
		fused[k] = h
		order = append(order, k)
	}

	for _, h := range vectorHits {
		add(h, vectorWeight*h.Score)
	}
	for _, h := range bm25Hits {
		norm := 0.0
		if maxBM25 > 0 {
			norm = h.Score / maxBM25
		}
		add(h, bm25Weight*norm)
	}

	out := make([]chunkHit, 0, len(order))
	for _, k := range order {
		out = append(out, fused[k])
	}
	return out
}
