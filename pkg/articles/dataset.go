package articles

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	pgvector "github.com/pgvector/pgvector-go"

	"github.com/chronicle-dev/chronicle/pkg/embedding"
)

// chunkFetchMultiplier widens the chunk search so enough distinct articles
// survive aggregation to fill the article limit.
const chunkFetchMultiplier = 8

// chunkHit is one retrieved chunk with its search score.
type chunkHit struct {
	ArticleTitle string
	ArticleURL   string
	ChunkIndex   int
	Text         string
	Score        float64
}

// DatasetWikipediaEn searches a local English Wikipedia corpus indexed by
// chunk embeddings (pgvector cosine similarity) and reconstructs articles
// from ordered chunks.
type DatasetWikipediaEn struct {
	db      *sql.DB
	encoder embedding.Encoder
}

// NewDatasetWikipediaEn creates the semantic dataset strategy.
func NewDatasetWikipediaEn(db *sql.DB, encoder embedding.Encoder) *DatasetWikipediaEn {
	return &DatasetWikipediaEn{db: db, encoder: encoder}
}

// Name implements Strategy.
func (s *DatasetWikipediaEn) Name() string { return SourceDatasetWikipedia }

// GetArticles implements Strategy.
func (s *DatasetWikipediaEn) GetArticles(ctx context.Context, query QueryData) ([]SourceArticle, error) {
	limit := query.Config.ArticleLimit
	if limit <= 0 {
		limit = 10
	}

	hits, err := s.vectorSearch(ctx, query.DatasetQueryText(), limit*chunkFetchMultiplier)
	if err != nil {
		return nil, err
	}
	return assembleArticles(hits, limit), nil
}

// vectorSearch retrieves the closest chunks by cosine similarity.
func (s *DatasetWikipediaEn) vectorSearch(ctx context.Context, queryText string, chunkLimit int) ([]chunkHit, error) {
	vec := s.encoder.Encode(ctx, queryText, true, true)

	rows, err := s.db.QueryContext(ctx, `
		SELECT article_title, COALESCE(article_url, ''), chunk_index, text,
		       1 - (embedding <=> $1) AS similarity
		FROM article_chunks
		ORDER BY embedding <=> $1
		LIMIT $2`,
		pgvector.NewVector(vec), chunkLimit)
	if err != nil {
		return nil, fmt.Errorf("vector chunk search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var hits []chunkHit
	for rows.Next() {
		var h chunkHit
		if err := rows.Scan(&h.ArticleTitle, &h.ArticleURL, &h.ChunkIndex, &h.Text, &h.Score); err != nil {
			return nil, fmt.Errorf("scanning chunk row: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// assembleArticles aggregates chunk hits into articles. An article's score
// is its best chunk score; its text is the ordered concatenation of the
// chunks retrieved for it.
func assembleArticles(hits []chunkHit, limit int) []SourceArticle {
	type articleAgg struct {
		url    string
		score  float64
		chunks []chunkHit
	}

	byTitle := make(map[string]*articleAgg)
	order := make([]string, 0)
	for _, h := range hits {
		agg, ok := byTitle[h.ArticleTitle]
		if !ok {
			agg = &articleAgg{url: h.ArticleURL}
			byTitle[h.ArticleTitle] = agg
			order = append(order, h.ArticleTitle)
		}
		if h.Score > agg.score {
			agg.score = h.Score
		}
		agg.chunks = append(agg.chunks, h)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return byTitle[order[i]].score > byTitle[order[j]].score
	})
	if len(order) > limit {
		order = order[:limit]
	}

	articles := make([]SourceArticle, 0, len(order))
	for _, title := range order {
		agg := byTitle[title]
		sort.Slice(agg.chunks, func(i, j int) bool {
			return agg.chunks[i].ChunkIndex < agg.chunks[j].ChunkIndex
		})
		parts := make([]string, 0, len(agg.chunks))
		for _, c := range agg.chunks {
			parts = append(parts, c.Text)
		}

		url := agg.url
		if url == "" {
			url = "dataset://wikipedia_en/" + title
		}
		articles = append(articles, SourceArticle{
			SourceName:       SourceDatasetWikipedia,
			SourceIdentifier: title,
			Title:            title,
			SourceURL:        url,
			Language:         "en",
			SourceType:       "dataset",
			Text:             strings.Join(parts, "\n"),
		})
	}
	return articles
}
