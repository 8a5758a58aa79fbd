package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronicle-dev/chronicle/ent"
	"github.com/chronicle-dev/chronicle/ent/progressstep"
	"github.com/chronicle-dev/chronicle/ent/task"
	entviewpoint "github.com/chronicle-dev/chronicle/ent/viewpoint"
	"github.com/chronicle-dev/chronicle/pkg/articles"
	"github.com/chronicle-dev/chronicle/pkg/canonical"
	"github.com/chronicle-dev/chronicle/pkg/config"
	"github.com/chronicle-dev/chronicle/pkg/dates"
	"github.com/chronicle-dev/chronicle/pkg/database"
	"github.com/chronicle-dev/chronicle/pkg/entitylink"
	"github.com/chronicle-dev/chronicle/pkg/events"
	"github.com/chronicle-dev/chronicle/pkg/extract"
	"github.com/chronicle-dev/chronicle/pkg/keywords"
	"github.com/chronicle-dev/chronicle/pkg/llm/llmtest"
	"github.com/chronicle-dev/chronicle/pkg/models"
	"github.com/chronicle-dev/chronicle/pkg/relevance"
	"github.com/chronicle-dev/chronicle/pkg/services"
	testdb "github.com/chronicle-dev/chronicle/test/database"
)

// stubStrategy serves canned articles for one source name.
type stubStrategy struct {
	name     string
	articles []articles.SourceArticle
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) GetArticles(_ context.Context, _ articles.QueryData) ([]articles.SourceArticle, error) {
	return s.articles, nil
}

// keywordsResponse answers the keyword extraction call for English topics.
const keywordsResponse = `{
	"detected_language": "en",
	"original_keywords": ["Obscure Topic"],
	"english_keywords": ["Obscure Topic"],
	"translated_viewpoint": ""
}`

// newTestOrchestrator wires an orchestrator over the test database with a
// scripted LLM and stubbed article strategies.
func newTestOrchestrator(client *database.Client, llmClient *llmtest.ScriptedClient, found []articles.SourceArticle) *Orchestrator {
	cfg := &config.Config{
		System:    &config.SystemConfig{},
		Pipeline:  config.DefaultPipelineConfig(),
		Merger:    config.DefaultMergerConfig(),
		Embedding: config.DefaultEmbeddingConfig(),
		Wiki:      config.DefaultWikiConfig(),
		Queue:     config.DefaultQueueConfig(),
		Retention: config.DefaultRetentionConfig(),
	}

	registry := articles.NewRegistry()
	registry.Register(&stubStrategy{name: articles.SourceOnlineWikipedia, articles: found})
	articleService := articles.NewService(registry, nil)

	extractor := extract.NewExtractor(llmClient, dates.NewParser(llmClient))
	linker := entitylink.NewLinker(client.Client, nil)
	store := canonical.NewStore(client.Client, extractor, linker, cfg.Pipeline.ReuseBaseViewpoint)

	return NewOrchestrator(
		cfg,
		client.Client,
		llmClient,
		keywords.NewExtractor(llmClient),
		articleService,
		relevance.NewScorer(llmClient, cfg.Pipeline.EventScoringBatchSize),
		store,
		services.NewViewpointService(client.Client),
		events.NewPublisher(client.Client, nil),
	)
}

func createTask(t *testing.T, client *database.Client, topic string) *ent.Task {
	t.Helper()
	svc := services.NewTaskService(client.Client)
	created, err := svc.CreateTask(context.Background(), models.CreateTaskRequest{TopicText: topic}, task.TaskTypeSyntheticViewpoint)
	require.NoError(t, err)
	return created
}

// S3: articles are found but both score below the article threshold. The
// viewpoint and task fail with explanatory notes, and exactly one
// article_relevance_scoring_complete progress event records zero relevant
// articles.
func TestExecuteSyntheticNoRelevantArticles(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	llmClient := llmtest.NewScripted(
		&llmtest.Rule{Contains: []string{"detected_language"}, Response: keywordsResponse},
		&llmtest.Rule{Contains: []string{"Articles:"}, Response: `{"Obscure A": 0.1, "Obscure B": 0.2}`},
	)
	orchestrator := newTestOrchestrator(client, llmClient, []articles.SourceArticle{
		{SourceName: articles.SourceOnlineWikipedia, SourceIdentifier: "1", Title: "Obscure A", SourceURL: "https://en.wikipedia.org/?curid=1", Language: "en", SourceType: "wikipedia", Text: "text a"},
		{SourceName: articles.SourceOnlineWikipedia, SourceIdentifier: "2", Title: "Obscure B", SourceURL: "https://en.wikipedia.org/?curid=2", Language: "en", SourceType: "wikipedia", Text: "text b"},
	})

	created := createTask(t, client, "completely obscure proper noun")
	result := orchestrator.Execute(ctx, created)

	require.NotNil(t, result)
	assert.Equal(t, task.StatusFailed, result.Status)
	assert.Equal(t, "no relevant articles", result.Notes)

	// The viewpoint created for the run is failed.
	vp, err := client.Viewpoint.Query().
		Where(entviewpoint.TopicEQ("completely obscure proper noun")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, entviewpoint.StatusFailed, vp.Status)

	// Exactly one scoring-complete progress event with zero relevant articles.
	steps, err := client.ProgressStep.Query().
		Where(
			progressstep.TaskIDEQ(created.ID),
			progressstep.StepNameEQ(events.StepArticleRelevanceScoring),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, float64(0), steps[0].Data["relevant_article_count"])

	// The terminal failure is also in the progress log.
	failures, err := client.ProgressStep.Query().
		Where(
			progressstep.TaskIDEQ(created.ID),
			progressstep.StepNameEQ(events.StepTaskFailed),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "no relevant articles", failures[0].Message)
}

// S6: a completed viewpoint for the same (topic, data_source_preference)
// short-circuits the pipeline — no LLM or acquisition activity, terminal
// completed result pointing at the prior viewpoint.
func TestExecuteSyntheticReuseHit(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	viewpoints := services.NewViewpointService(client.Client)
	existing, err := viewpoints.CreateSynthetic(ctx, "The Apollo program", "online_wikipedia")
	require.NoError(t, err)
	require.NoError(t, viewpoints.SetStatus(ctx, existing.ID, entviewpoint.StatusCompleted))

	llmClient := llmtest.NewScripted()
	orchestrator := newTestOrchestrator(client, llmClient, nil)

	created := createTask(t, client, "The Apollo program")
	result := orchestrator.Execute(ctx, created)

	require.NotNil(t, result)
	assert.Equal(t, task.StatusCompleted, result.Status)
	require.NotNil(t, result.ViewpointID)
	assert.Equal(t, existing.ID, *result.ViewpointID)

	// No pipeline activity on a reuse hit.
	assert.Zero(t, llmClient.CallCount())

	// Only the prior viewpoint exists; no second one was created.
	count, err := client.Viewpoint.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	steps, err := client.ProgressStep.Query().
		Where(
			progressstep.TaskIDEQ(created.ID),
			progressstep.StepNameEQ(events.StepTaskCompleted),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, true, steps[0].Data["reused"])
}

// Reuse requires matching data_source_preference, not just topic.
func TestExecuteSyntheticReuseMissesOnDifferentSource(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	viewpoints := services.NewViewpointService(client.Client)
	existing, err := viewpoints.CreateSynthetic(ctx, "The Apollo program", "online_wikinews")
	require.NoError(t, err)
	require.NoError(t, viewpoints.SetStatus(ctx, existing.ID, entviewpoint.StatusCompleted))

	llmClient := llmtest.NewScripted(
		&llmtest.Rule{Contains: []string{"detected_language"}, Response: keywordsResponse},
	)
	// No articles from the stub strategy: the run proceeds past reuse and
	// fails at acquisition.
	orchestrator := newTestOrchestrator(client, llmClient, nil)

	created := createTask(t, client, "The Apollo program")
	result := orchestrator.Execute(ctx, created)

	require.NotNil(t, result)
	assert.Equal(t, task.StatusFailed, result.Status)
	assert.Equal(t, "no articles found", result.Notes)
	assert.NotZero(t, llmClient.CallCount(), "pipeline must have run past the reuse check")
}

// Zero articles from every strategy fails the viewpoint and the task.
func TestExecuteSyntheticNoArticlesFails(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	llmClient := llmtest.NewScripted(
		&llmtest.Rule{Contains: []string{"detected_language"}, Response: keywordsResponse},
	)
	orchestrator := newTestOrchestrator(client, llmClient, nil)

	created := createTask(t, client, "topic with no sources")
	result := orchestrator.Execute(ctx, created)

	require.NotNil(t, result)
	assert.Equal(t, task.StatusFailed, result.Status)
	assert.Equal(t, "no articles found", result.Notes)

	vp, err := client.Viewpoint.Query().
		Where(entviewpoint.TopicEQ("topic with no sources")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, entviewpoint.StatusFailed, vp.Status)
}
