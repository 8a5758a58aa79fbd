package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/chronicle-dev/chronicle/ent"
	"github.com/chronicle-dev/chronicle/ent/task"
	"github.com/chronicle-dev/chronicle/ent/viewpoint"
	"github.com/chronicle-dev/chronicle/pkg/articles"
	"github.com/chronicle-dev/chronicle/pkg/canonical"
	"github.com/chronicle-dev/chronicle/pkg/config"
	"github.com/chronicle-dev/chronicle/pkg/events"
	"github.com/chronicle-dev/chronicle/pkg/keywords"
	"github.com/chronicle-dev/chronicle/pkg/llm"
	"github.com/chronicle-dev/chronicle/pkg/merger"
	"github.com/chronicle-dev/chronicle/pkg/queue"
	"github.com/chronicle-dev/chronicle/pkg/relevance"
	"github.com/chronicle-dev/chronicle/pkg/services"
)

// Orchestrator executes timeline generation tasks. It implements
// queue.TaskExecutor.
type Orchestrator struct {
	cfg       *config.Config
	client    *ent.Client
	llmClient llm.Client

	keywordExtractor *keywords.Extractor
	articleService   *articles.Service
	scorer           *relevance.Scorer
	canonicalStore   *canonical.Store
	viewpoints       *services.ViewpointService
	publisher        *events.Publisher
}

// NewOrchestrator wires the pipeline components.
func NewOrchestrator(
	cfg *config.Config,
	client *ent.Client,
	llmClient llm.Client,
	keywordExtractor *keywords.Extractor,
	articleService *articles.Service,
	scorer *relevance.Scorer,
	canonicalStore *canonical.Store,
	viewpoints *services.ViewpointService,
	publisher *events.Publisher,
) *Orchestrator {
	return &Orchestrator{
		cfg:              cfg,
		client:           client,
		llmClient:        llmClient,
		keywordExtractor: keywordExtractor,
		articleService:   articleService,
		scorer:           scorer,
		canonicalStore:   canonicalStore,
		viewpoints:       viewpoints,
		publisher:        publisher,
	}
}

// Execute implements queue.TaskExecutor: it routes by task type and returns
// the terminal state. All intermediate state is written progressively.
func (o *Orchestrator) Execute(ctx context.Context, t *ent.Task) *queue.ExecutionResult {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.Pipeline.TimelineGenerationTimeout)
	defer cancel()

	requestID := uuid.New().String()
	run := &taskRun{
		o:         o,
		task:      t,
		requestID: requestID,
		log:       slog.With("task_id", t.ID, "request_id", requestID),
	}

	switch t.TaskType {
	case task.TaskTypeDocumentCanonical:
		return run.executeDocumentCanonical(ctx)
	default:
		// entity_canonical seeds the synthetic pipeline with the entity name
		// as its viewpoint; the flow is otherwise identical.
		return run.executeSynthetic(ctx)
	}
}

// taskRun carries per-execution state.
type taskRun struct {
	o         *Orchestrator
	task      *ent.Task
	requestID string
	log       *slog.Logger
}

// progress publishes one progress event for this run.
func (r *taskRun) progress(ctx context.Context, step, message string, data map[string]any) {
	r.o.publisher.Publish(ctx, r.task.ID, r.requestID, step, message, data)
}

// executeSynthetic runs the full seven-stage pipeline.
func (r *taskRun) executeSynthetic(ctx context.Context) *queue.ExecutionResult {
	o := r.o
	t := r.task

	// 1. Validate task config.
	acqCfg, dataSource, err := ParseTaskConfig(t.Config, o.cfg.Pipeline)
	if err != nil {
		r.log.Warn("Task config validation failed", "error", err)
		return &queue.ExecutionResult{
			Status: task.StatusFailed,
			Notes:  fmt.Sprintf("invalid task config: %v", err),
		}
	}

	// 2+3. Ensure viewpoint, honoring composite reuse.
	if o.cfg.Pipeline.ReuseCompositeViewpoint {
		existing, err := o.viewpoints.FindReusable(ctx, t.TopicText, dataSource)
		if err != nil {
			r.log.Warn("Reusable viewpoint lookup failed", "error", err)
		} else if existing != nil {
			r.log.Info("Reusing existing viewpoint", "viewpoint_id", existing.ID)
			r.progress(ctx, events.StepTaskCompleted, "reused existing timeline", map[string]any{
				"viewpoint_id": existing.ID, "reused": true,
			})
			return &queue.ExecutionResult{
				Status:      task.StatusCompleted,
				ViewpointID: &existing.ID,
			}
		}
	}

	vp, err := o.viewpoints.CreateSynthetic(ctx, t.TopicText, dataSource)
	if err != nil {
		return r.fail(ctx, nil, fmt.Sprintf("creating viewpoint: %v", err))
	}
	if err := o.client.Task.UpdateOneID(t.ID).SetViewpointID(vp.ID).Exec(ctx); err != nil {
		r.log.Error("Failed to link viewpoint to task", "error", err)
	}

	// 6a. Keywords and language.
	r.progress(ctx, events.StepKeywordExtraction, "extracting keywords", nil)
	kw, err := o.keywordExtractor.Extract(ctx, t.TopicText)
	if err != nil {
		return r.fail(ctx, vp, fmt.Sprintf("keyword extraction failed: %v", err))
	}
	translated := kw.TranslatedViewpoint
	if translated == "" && kw.DetectedLanguage == "en" {
		translated = t.TopicText
	}
	r.progress(ctx, events.StepKeywordExtraction, "keywords extracted", map[string]any{
		"language": kw.DetectedLanguage, "keywords": kw.OriginalKeywords,
	})

	// 6b. Article acquisition.
	query := articles.QueryData{
		Keywords:             kw.OriginalKeywords,
		EnglishKeywords:      kw.EnglishKeywords,
		UserLanguage:         kw.DetectedLanguage,
		ViewpointText:        t.TopicText,
		TranslatedViewpoint:  translated,
		DataSourcePreference: dataSource,
		Config:               acqCfg,
		ParentRequestID:      r.requestID,
	}
	r.progress(ctx, events.StepArticleAcquisition, "discovering source articles", map[string]any{
		"sources": query.SelectedSources(),
	})
	found, err := o.articleService.Acquire(ctx, query, func(step, message string, data map[string]any) {
		r.progress(ctx, step, message, data)
	})
	if err != nil {
		return r.fail(ctx, vp, fmt.Sprintf("article acquisition failed: %v", err))
	}
	if len(found) == 0 {
		return r.fail(ctx, vp, "no articles found")
	}

	// 6c. Article relevance filter.
	relevant := r.filterArticles(ctx, translated, found, acqCfg.ArticleLimit)
	if len(relevant) == 0 {
		return r.fail(ctx, vp, "no relevant articles")
	}

	// 6d. Canonical processing per article; failures skip the article.
	eventIDs := r.processArticles(ctx, relevant, dataSource)
	if len(eventIDs) == 0 {
		return r.fail(ctx, vp, "no events extracted from relevant articles")
	}

	// 6e. Event relevance filter.
	inputs, err := r.loadEventInputs(ctx, eventIDs)
	if err != nil {
		return r.fail(ctx, vp, fmt.Sprintf("loading events: %v", err))
	}
	filtered := r.filterEvents(ctx, translated, inputs)
	if len(filtered) == 0 {
		return r.fail(ctx, vp, "no events relevant to the viewpoint")
	}

	// 6f. Merge.
	r.progress(ctx, events.StepEventMerging, "merging duplicate events", map[string]any{
		"event_count": len(filtered),
	})
	eventMerger, err := merger.New(o.cfg.Merger, o.llmClient, kw.DetectedLanguage)
	if err != nil {
		return r.fail(ctx, vp, fmt.Sprintf("initializing merger: %v", err))
	}
	groups, err := eventMerger.Merge(ctx, filtered)
	if err != nil {
		return r.fail(ctx, vp, fmt.Sprintf("event merging failed: %v", err))
	}
	counters := eventMerger.Counters()
	r.log.Info("Event merging complete", "groups", len(groups), "counters", counters.String())
	r.progress(ctx, events.StepEventMerging, "event merging complete", map[string]any{
		"group_count":     len(groups),
		"llm_calls_saved": counters.ConcurrentLLMCallsSaved,
	})

	// 6g+h. Materialize the synthetic viewpoint.
	if err := r.materialize(ctx, vp.ID, groups); err != nil {
		return r.fail(ctx, vp, fmt.Sprintf("materializing viewpoint: %v", err))
	}

	if err := o.viewpoints.SetStatus(ctx, vp.ID, viewpoint.StatusCompleted); err != nil {
		r.log.Error("Failed to complete viewpoint", "error", err)
	}
	r.progress(ctx, events.StepTaskCompleted, "timeline generated", map[string]any{
		"viewpoint_id": vp.ID, "event_count": len(groups),
	})
	return &queue.ExecutionResult{
		Status:      task.StatusCompleted,
		ViewpointID: &vp.ID,
	}
}

// fail marks the viewpoint failed (when one exists), publishes the terminal
// progress event, and returns the failed result.
func (r *taskRun) fail(ctx context.Context, vp *ent.Viewpoint, notes string) *queue.ExecutionResult {
	r.log.Warn("Task failed", "notes", notes)
	if vp != nil {
		if err := r.o.viewpoints.SetStatus(ctx, vp.ID, viewpoint.StatusFailed); err != nil {
			r.log.Error("Failed to mark viewpoint failed", "error", err)
		}
	}
	r.progress(ctx, events.StepTaskFailed, notes, nil)
	return &queue.ExecutionResult{Status: task.StatusFailed, Notes: notes}
}

// filterArticles scores articles against the viewpoint and keeps those at or
// above the article threshold, ordered by descending score and truncated to
// the article limit.
func (r *taskRun) filterArticles(ctx context.Context, viewpointText string, found []articles.SourceArticle, limit int) []articles.SourceArticle {
	threshold := r.o.cfg.Pipeline.ArticleFilterRelevanceThreshold

	inputs := make([]relevance.ArticleInput, 0, len(found))
	for _, a := range found {
		inputs = append(inputs, relevance.ArticleInput{Title: a.Title, Content: a.Text})
	}

	scores, err := r.o.scorer.ScoreArticles(ctx, viewpointText, inputs)
	if err != nil {
		r.log.Error("Article scoring failed, keeping all articles", "error", err)
		r.progress(ctx, events.StepArticleRelevanceScoring, "article scoring failed, keeping all", map[string]any{
			"relevant_article_count": len(found),
		})
		return found
	}

	kept := make([]articles.SourceArticle, 0, len(found))
	for _, a := range found {
		if scores[a.Title] >= threshold {
			kept = append(kept, a)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return scores[kept[i].Title] > scores[kept[j].Title]
	})
	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}

	r.progress(ctx, events.StepArticleRelevanceScoring, "articles scored", map[string]any{
		"scored_article_count":   len(found),
		"relevant_article_count": len(kept),
	})
	return kept
}

// processArticles runs the canonical store per article, bounded by the
// single-article timeout. Exceptions skip the article; the set of collected
// event IDs is deduplicated.
func (r *taskRun) processArticles(ctx context.Context, relevant []articles.SourceArticle, dataSource string) []int {
	seen := make(map[int]bool)
	var eventIDs []int
	for _, a := range relevant {
		articleCtx, cancel := context.WithTimeout(ctx, r.o.cfg.Pipeline.SingleArticleTimeout)
		ids, err := r.o.canonicalStore.GetOrCreateCanonical(articleCtx, a, dataSource)
		cancel()
		if err != nil {
			r.log.Error("Article processing failed, continuing",
				"title", a.Title, "error", err)
			r.progress(ctx, events.StepCanonicalProcessing, "article failed: "+a.Title, map[string]any{
				"title": a.Title, "error": err.Error(),
			})
			continue
		}
		added := 0
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				eventIDs = append(eventIDs, id)
				added++
			}
		}
		r.progress(ctx, events.StepCanonicalProcessing, "article processed: "+a.Title, map[string]any{
			"title": a.Title, "event_count": added,
		})
	}
	return eventIDs
}

// filterEvents scores events against the viewpoint and keeps those at or
// above the timeline threshold, attaching scores to the survivors.
func (r *taskRun) filterEvents(ctx context.Context, viewpointText string, inputs []*merger.EventInput) []*merger.EventInput {
	threshold := r.o.cfg.Pipeline.TimelineRelevanceThreshold

	scoreInputs := make([]relevance.EventInput, 0, len(inputs))
	for _, in := range inputs {
		scoreInputs = append(scoreInputs, relevance.EventInput{
			ID:          in.ID,
			Description: in.Description,
			DateStr:     in.EventDateStr,
		})
	}
	scores := r.o.scorer.ScoreEvents(ctx, viewpointText, scoreInputs)

	kept := make([]*merger.EventInput, 0, len(inputs))
	dropped := 0
	for _, in := range inputs {
		// Events the scorer could not score are dropped like sub-threshold
		// ones; only scored-and-passing events reach the merger.
		score, ok := scores[in.ID]
		if !ok || score < threshold {
			dropped++
			continue
		}
		s := score
		in.Relevance = &s
		kept = append(kept, in)
	}

	r.progress(ctx, events.StepEventRelevanceScoring, "events scored", map[string]any{
		"scored_event_count":   len(inputs),
		"relevant_event_count": len(kept),
		"dropped_event_count":  dropped,
	})
	return kept
}

// loadEventInputs loads events with entity and raw-event associations in one
// batched query and builds merger inputs.
func (r *taskRun) loadEventInputs(ctx context.Context, eventIDs []int) ([]*merger.EventInput, error) {
	loaded, err := loadEventInputs(ctx, r.o.client, eventIDs)
	if err != nil {
		return nil, err
	}
	return loaded, nil
}
