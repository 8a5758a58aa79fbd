package pipeline

import (
	"context"
	"fmt"

	"github.com/chronicle-dev/chronicle/ent/sourcedocument"
	"github.com/chronicle-dev/chronicle/ent/task"
	"github.com/chronicle-dev/chronicle/pkg/articles"
	"github.com/chronicle-dev/chronicle/pkg/events"
	"github.com/chronicle-dev/chronicle/pkg/queue"
)

// executeDocumentCanonical (re)builds the canonical viewpoint of one source
// document and attaches it to the task. The document ID arrives in the
// task config.
func (r *taskRun) executeDocumentCanonical(ctx context.Context) *queue.ExecutionResult {
	o := r.o

	docID, ok := documentIDFromConfig(r.task.Config)
	if !ok {
		return &queue.ExecutionResult{
			Status: task.StatusFailed,
			Notes:  "task config is missing source_document_id",
		}
	}

	doc, err := o.client.SourceDocument.Query().
		Where(sourcedocument.IDEQ(docID)).
		Only(ctx)
	if err != nil {
		return &queue.ExecutionResult{
			Status: task.StatusFailed,
			Notes:  fmt.Sprintf("source document %d not found", docID),
		}
	}

	r.progress(ctx, events.StepCanonicalProcessing, "building canonical viewpoint", map[string]any{
		"source_document_id": doc.ID, "title": doc.Title,
	})

	// Rebuild the article from its backend. Online documents refetch their
	// page text; dataset documents are identified by title.
	article := articles.SourceArticle{
		SourceName:       doc.SourceName,
		SourceIdentifier: doc.SourceIdentifier,
		Title:            doc.Title,
		SourceURL:        doc.URL,
		Language:         doc.Language,
		SourceType:       doc.SourceType,
	}
	query := articles.QueryData{
		Keywords:             []string{doc.Title},
		UserLanguage:         doc.Language,
		ViewpointText:        doc.Title,
		DataSourcePreference: doc.SourceName,
		Config: articles.AcquisitionConfig{
			SearchMode:   articles.SearchModeSemantic,
			VectorWeight: 1.0,
			ArticleLimit: 1,
		},
		ParentRequestID: r.requestID,
	}
	refetched, err := o.articleService.Acquire(ctx, query, nil)
	if err == nil {
		for _, a := range refetched {
			if a.SourceIdentifier == doc.SourceIdentifier || a.Title == doc.Title {
				article.Text = a.Text
				break
			}
		}
	}
	if article.Text == "" {
		return r.failDocument(ctx, doc.ID, "could not refetch document text")
	}

	eventIDs, err := o.canonicalStore.GetOrCreateCanonical(ctx, article, doc.SourceName)
	if err != nil {
		return r.failDocument(ctx, doc.ID, fmt.Sprintf("canonical processing failed: %v", err))
	}
	if len(eventIDs) == 0 {
		return r.failDocument(ctx, doc.ID, "no events extracted from document")
	}

	vp, err := o.client.SourceDocument.QueryCanonicalViewpoint(doc).Only(ctx)
	if err != nil {
		return r.failDocument(ctx, doc.ID, fmt.Sprintf("canonical viewpoint lookup failed: %v", err))
	}
	if err := o.client.Task.UpdateOneID(r.task.ID).SetViewpointID(vp.ID).Exec(ctx); err != nil {
		r.log.Error("Failed to link canonical viewpoint to task", "error", err)
	}

	r.progress(ctx, events.StepTaskCompleted, "canonical viewpoint ready", map[string]any{
		"viewpoint_id": vp.ID, "event_count": len(eventIDs),
	})
	return &queue.ExecutionResult{
		Status:      task.StatusCompleted,
		ViewpointID: &vp.ID,
	}
}

func (r *taskRun) failDocument(ctx context.Context, docID int, notes string) *queue.ExecutionResult {
	r.log.Warn("Document canonical task failed", "source_document_id", docID, "notes", notes)
	r.progress(ctx, events.StepTaskFailed, notes, map[string]any{"source_document_id": docID})
	return &queue.ExecutionResult{Status: task.StatusFailed, Notes: notes}
}

// documentIDFromConfig extracts source_document_id from the opaque config.
// JSON numbers decode as float64.
func documentIDFromConfig(cfg map[string]any) (int, bool) {
	raw, ok := cfg["source_document_id"]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
