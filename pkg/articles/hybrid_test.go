package articles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuseChunkScoresNormalizesBM25(t *testing.T) {
	vector := []chunkHit{
		{ArticleTitle: "A", ChunkIndex: 0, Score: 0.9},
		{ArticleTitle: "B", ChunkIndex: 0, Score: 0.5},
	}
	bm25 := []chunkHit{
		{ArticleTitle: "A", ChunkIndex: 0, Score: 4.0},
		{ArticleTitle: "C", ChunkIndex: 0, Score: 2.0},
	}

	fused := FuseChunkScores(vector, bm25, 0.6, 0.4)
	byTitle := map[string]float64{}
	for _, h := range fused {
		byTitle[h.ArticleTitle] = h.Score
	}

	// A: 0.6*0.9 + 0.4*(4/4) = 0.94
	assert.InDelta(t, 0.94, byTitle["A"], 1e-9)
	// B: vector only = 0.6*0.5
	assert.InDelta(t, 0.30, byTitle["B"], 1e-9)
	// C: bm25 only = 0.4*(2/4)
	assert.InDelta(t, 0.20, byTitle["C"], 1e-9)
}

func TestFuseChunkScoresPureVector(t *testing.T) {
	vector := []chunkHit{{ArticleTitle: "A", ChunkIndex: 1, Score: 0.8}}
	fused := FuseChunkScores(vector, nil, 1.0, 0)
	require.Len(t, fused, 1)
	assert.InDelta(t, 0.8, fused[0].Score, 1e-9)
}

func TestAssembleArticlesOrdersChunksAndRanksByBestChunk(t *testing.T) {
	hits := []chunkHit{
		{ArticleTitle: "B", ChunkIndex: 2, Text: "b2", Score: 0.95},
		{ArticleTitle: "A", ChunkIndex: 1, Text: "a1", Score: 0.7},
		{ArticleTitle: "A", ChunkIndex: 0, Text: "a0", Score: 0.4},
		{ArticleTitle: "B", ChunkIndex: 0, Text: "b0", Score: 0.2},
	}

	articles := assembleArticles(hits, 10)
	require.Len(t, articles, 2)

	// B has the best chunk, so it ranks first.
	assert.Equal(t, "B", articles[0].Title)
	assert.Equal(t, "b0\nb2", articles[0].Text)
	// A's chunks concatenate in chunk order regardless of retrieval order.
	assert.Equal(t, "a0\na1", articles[1].Text)
}

func TestAssembleArticlesHonorsLimit(t *testing.T) {
	hits := []chunkHit{
		{ArticleTitle: "A", ChunkIndex: 0, Score: 0.9},
		{ArticleTitle: "B", ChunkIndex: 0, Score: 0.8},
		{ArticleTitle: "C", ChunkIndex: 0, Score: 0.7},
	}
	articles := assembleArticles(hits, 2)
	require.Len(t, articles, 2)
	assert.Equal(t, "A", articles[0].Title)
	assert.Equal(t, "B", articles[1].Title)
}
