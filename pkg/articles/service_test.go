package articles

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStrategy struct {
	name     string
	articles []SourceArticle
	err      error
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) GetArticles(_ context.Context, _ QueryData) ([]SourceArticle, error) {
	return s.articles, s.err
}

func TestAcquireDeduplicatesByURLKeepingFirst(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubStrategy{name: SourceOnlineWikipedia, articles: []SourceArticle{
		{SourceName: SourceOnlineWikipedia, Title: "A", SourceURL: "https://en.wikipedia.org/?curid=1", Text: "wikipedia text"},
		{SourceName: SourceOnlineWikipedia, Title: "B", SourceURL: "https://en.wikipedia.org/?curid=2"},
	}})

	svc := NewService(registry, nil)
	got, err := svc.Acquire(context.Background(), QueryData{
		DataSourcePreference: SourceOnlineWikipedia,
	}, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Same URL from a second strategy run keeps the first occurrence.
	registry.Register(&stubStrategy{name: SourceOnlineWikinews, articles: []SourceArticle{
		{SourceName: SourceOnlineWikinews, Title: "A again", SourceURL: "https://en.wikipedia.org/?curid=1", Text: "news text"},
	}})
	got, err = svc.Acquire(context.Background(), QueryData{
		DataSourcePreference: SourceOnlineWikipedia + "," + SourceOnlineWikinews,
	}, nil)
	require.NoError(t, err)

	byURL := map[string]SourceArticle{}
	for _, a := range got {
		_, dup := byURL[a.SourceURL]
		require.False(t, dup, "duplicate URL survived deduplication")
		byURL[a.SourceURL] = a
	}
	assert.Len(t, got, 2)
	assert.Equal(t, "wikipedia text", byURL["https://en.wikipedia.org/?curid=1"].Text)
}

func TestAcquireToleratesStrategyFailure(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubStrategy{name: SourceOnlineWikipedia, err: errors.New("backend down")})
	registry.Register(&stubStrategy{name: SourceOnlineWikinews, articles: []SourceArticle{
		{Title: "News", SourceURL: "https://en.wikinews.org/?curid=5"},
	}})

	var steps []string
	svc := NewService(registry, nil)
	got, err := svc.Acquire(context.Background(), QueryData{
		DataSourcePreference: "online_wikipedia,online_wikinews",
	}, func(step, _ string, _ map[string]any) {
		steps = append(steps, step)
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "News", got[0].Title)
	assert.Contains(t, steps, "article_strategy_result")
	assert.Contains(t, steps, "article_deduplication_complete")
}

func TestAcquireSkipsUnknownSource(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubStrategy{name: SourceOnlineWikipedia, articles: []SourceArticle{
		{Title: "A", SourceURL: "u1"},
	}})

	svc := NewService(registry, nil)
	got, err := svc.Acquire(context.Background(), QueryData{
		DataSourcePreference: "online_wikipedia,nonexistent_backend",
	}, nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAcquireHybridSwapForDatasetSource(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubStrategy{name: SourceDatasetWikipedia, articles: []SourceArticle{
		{Title: "semantic", SourceURL: "s"},
	}})
	hybrid := &stubStrategy{name: SourceDatasetWikipedia, articles: []SourceArticle{
		{Title: "hybrid", SourceURL: "h"},
	}}

	svc := NewService(registry, hybrid)

	semantic, err := svc.Acquire(context.Background(), QueryData{
		DataSourcePreference: SourceDatasetWikipedia,
		Config:               AcquisitionConfig{SearchMode: SearchModeSemantic},
	}, nil)
	require.NoError(t, err)
	require.Len(t, semantic, 1)
	assert.Equal(t, "semantic", semantic[0].Title)

	hybridGot, err := svc.Acquire(context.Background(), QueryData{
		DataSourcePreference: SourceDatasetWikipedia,
		Config:               AcquisitionConfig{SearchMode: SearchModeHybridTitle, VectorWeight: 0.5, BM25Weight: 0.5},
	}, nil)
	require.NoError(t, err)
	require.Len(t, hybridGot, 1)
	assert.Equal(t, "hybrid", hybridGot[0].Title)
}

func TestSelectedSourcesDefaults(t *testing.T) {
	q := QueryData{}
	assert.Equal(t, []string{SourceOnlineWikipedia}, q.SelectedSources())

	q.DataSourcePreference = " online_wikinews , dataset_wikipedia_en "
	assert.Equal(t, []string{SourceOnlineWikinews, SourceDatasetWikipedia}, q.SelectedSources())
}

func TestDatasetQueryTextPriority(t *testing.T) {
	q := QueryData{
		UserLanguage:        "en",
		ViewpointText:       "the Apollo program",
		TranslatedViewpoint: "translated",
		EnglishKeywords:     []string{"Apollo"},
	}
	assert.Equal(t, "the Apollo program", q.DatasetQueryText())

	q.UserLanguage = "zh"
	assert.Equal(t, "translated", q.DatasetQueryText())

	q.TranslatedViewpoint = ""
	assert.Equal(t, "Apollo", q.DatasetQueryText())

	q.EnglishKeywords = nil
	assert.Equal(t, "the Apollo program", q.DatasetQueryText())
}

func TestAcquisitionConfigValidate(t *testing.T) {
	valid := AcquisitionConfig{SearchMode: SearchModeSemantic, VectorWeight: 1, ArticleLimit: 5}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		cfg  AcquisitionConfig
	}{
		{"bad mode", AcquisitionConfig{SearchMode: "fuzzy", VectorWeight: 1, ArticleLimit: 5}},
		{"vector weight range", AcquisitionConfig{SearchMode: SearchModeSemantic, VectorWeight: 1.5, ArticleLimit: 5}},
		{"bm25 weight range", AcquisitionConfig{SearchMode: SearchModeSemantic, BM25Weight: -0.1, VectorWeight: 1, ArticleLimit: 5}},
		{"hybrid both zero", AcquisitionConfig{SearchMode: SearchModeHybridTitle, ArticleLimit: 5}},
		{"zero limit", AcquisitionConfig{SearchMode: SearchModeSemantic, VectorWeight: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}
