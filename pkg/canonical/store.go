// Package canonical maintains the one-per-source-document canonical
// viewpoint: extraction, entity resolution, and atomic persistence of raw
// events, events, and their associations.
package canonical

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/chronicle-dev/chronicle/ent"
	"github.com/chronicle-dev/chronicle/ent/rawevent"
	"github.com/chronicle-dev/chronicle/ent/sourcedocument"
	"github.com/chronicle-dev/chronicle/ent/viewpoint"
	"github.com/chronicle-dev/chronicle/pkg/articles"
	"github.com/chronicle-dev/chronicle/pkg/dates"
	"github.com/chronicle-dev/chronicle/pkg/entitylink"
	"github.com/chronicle-dev/chronicle/pkg/extract"
)

// Store implements the canonical viewpoint protocol.
type Store struct {
	client    *ent.Client
	extractor *extract.Extractor
	linker    *entitylink.Linker

	// reuseBaseViewpoint returns existing canonical events for documents
	// already processed successfully.
	reuseBaseViewpoint bool
}

// NewStore creates a canonical viewpoint store.
func NewStore(client *ent.Client, extractor *extract.Extractor, linker *entitylink.Linker, reuseBaseViewpoint bool) *Store {
	return &Store{
		client:             client,
		extractor:          extractor,
		linker:             linker,
		reuseBaseViewpoint: reuseBaseViewpoint,
	}
}

// GetOrCreateCanonical persists the article's events atomically and returns
// the event IDs of its canonical viewpoint. On a reuse hit no extraction
// runs. On failure inside the transaction the document is marked failed and
// the error rethrown; other articles are unaffected.
func (s *Store) GetOrCreateCanonical(ctx context.Context, article articles.SourceArticle, dataSourcePreference string) ([]int, error) {
	doc, err := s.upsertSourceDocument(ctx, article)
	if err != nil {
		return nil, err
	}

	if s.reuseBaseViewpoint && doc.ProcessingStatus == sourcedocument.ProcessingStatusCompleted {
		ids, err := s.existingEventIDs(ctx, doc)
		if err == nil {
			slog.Info("Reusing canonical viewpoint",
				"source_document_id", doc.ID, "title", doc.Title, "event_count", len(ids))
			return ids, nil
		}
		slog.Warn("Canonical reuse lookup failed, regenerating",
			"source_document_id", doc.ID, "error", err)
	}

	events, err := s.extractor.ExtractEvents(ctx, article.Text)
	if err != nil {
		return nil, fmt.Errorf("extracting events from %q: %w", article.Title, err)
	}
	if len(events) == 0 {
		return nil, nil
	}

	entityIDs, err := s.resolveEntities(ctx, events, article.SourceType)
	if err != nil {
		return nil, fmt.Errorf("resolving entities for %q: %w", article.Title, err)
	}

	eventIDs, err := s.persist(ctx, doc, article, dataSourcePreference, events, entityIDs)
	if err != nil {
		if statusErr := s.client.SourceDocument.UpdateOneID(doc.ID).
			SetProcessingStatus(sourcedocument.ProcessingStatusFailed).
			Exec(ctx); statusErr != nil {
			slog.Error("Failed to mark source document failed",
				"source_document_id", doc.ID, "error", statusErr)
		}
		return nil, fmt.Errorf("persisting canonical viewpoint for %q: %w", article.Title, err)
	}
	return eventIDs, nil
}

// upsertSourceDocument creates or fetches the document row identified by
// (source_name, source_identifier).
func (s *Store) upsertSourceDocument(ctx context.Context, article articles.SourceArticle) (*ent.SourceDocument, error) {
	doc, err := s.client.SourceDocument.Query().
		Where(
			sourcedocument.SourceNameEQ(article.SourceName),
			sourcedocument.SourceIdentifierEQ(article.SourceIdentifier),
		).
		Only(ctx)
	if err == nil {
		return doc, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("querying source document: %w", err)
	}

	doc, err = s.client.SourceDocument.Create().
		SetSourceName(article.SourceName).
		SetSourceIdentifier(article.SourceIdentifier).
		SetTitle(article.Title).
		SetURL(article.SourceURL).
		SetLanguage(article.Language).
		SetSourceType(article.SourceType).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.client.SourceDocument.Query().
				Where(
					sourcedocument.SourceNameEQ(article.SourceName),
					sourcedocument.SourceIdentifierEQ(article.SourceIdentifier),
				).
				Only(ctx)
		}
		return nil, fmt.Errorf("creating source document: %w", err)
	}
	return doc, nil
}

// existingEventIDs returns the event IDs of the document's canonical
// viewpoint.
func (s *Store) existingEventIDs(ctx context.Context, doc *ent.SourceDocument) ([]int, error) {
	vp, err := doc.QueryCanonicalViewpoint().
		Where(viewpoint.StatusEQ(viewpoint.StatusCompleted)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return vp.QueryEvents().IDs(ctx)
}

// resolveEntities runs one entity batch for the whole article and returns,
// per event index, the resolved entity IDs.
func (s *Store) resolveEntities(ctx context.Context, events []extract.ProcessedEvent, sourceType string) ([][]string, error) {
	var requests []entitylink.Request
	var owners []int
	for i, ev := range events {
		for _, ref := range ev.MainEntities {
			requests = append(requests, entitylink.Request{
				Name:     ref.Name,
				Type:     ref.Type,
				Language: ref.Language,
			})
			owners = append(owners, i)
		}
	}

	responses, err := s.linker.BatchGetOrCreate(ctx, requests, sourceType)
	if err != nil {
		return nil, err
	}

	perEvent := make([][]string, len(events))
	for i, resp := range responses {
		if resp.EntityID == "" {
			continue
		}
		perEvent[owners[i]] = append(perEvent[owners[i]], resp.EntityID)
	}
	return perEvent, nil
}

// persist runs the single-transaction portion of the protocol.
func (s *Store) persist(
	ctx context.Context,
	doc *ent.SourceDocument,
	article articles.SourceArticle,
	dataSourcePreference string,
	events []extract.ProcessedEvent,
	entityIDs [][]string,
) ([]int, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}

	eventIDs, err := s.persistInTx(ctx, tx, doc, article, dataSourcePreference, events, entityIDs)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Error("Rollback failed", "source_document_id", doc.ID, "error", rbErr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}
	return eventIDs, nil
}

func (s *Store) persistInTx(
	ctx context.Context,
	tx *ent.Tx,
	doc *ent.SourceDocument,
	article articles.SourceArticle,
	dataSourcePreference string,
	events []extract.ProcessedEvent,
	entityIDs [][]string,
) ([]int, error) {
	vp, err := tx.Viewpoint.Create().
		SetTopic(article.Title).
		SetViewpointType(viewpoint.ViewpointTypeCanonical).
		SetDataSourcePreference(dataSourcePreference).
		SetStatus(viewpoint.StatusPopulating).
		SetCanonicalSource(doc).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating canonical viewpoint: %w", err)
	}

	var eventIDs []int
	seen := make(map[string]bool, len(events))
	for i, pe := range events {
		sig := Signature(doc.ID, pe.Description, pe.EventDateStr)
		if seen[sig] {
			continue
		}
		seen[sig] = true

		raw, err := getOrCreateRawEvent(ctx, tx, doc, pe, sig)
		if err != nil {
			return nil, err
		}

		create := tx.Event.Create().
			SetDescription(pe.Description).
			SetEventDateStr(pe.EventDateStr).
			AddRawEvents(raw)
		if di := dates.ToMap(pe.DateInfo); di != nil {
			create = create.SetDateInfo(di)
		}
		if ids := dedupeStrings(entityIDs[i]); len(ids) > 0 {
			create = create.AddEntityIDs(ids...)
		}

		ev, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("creating event: %w", err)
		}

		if err := tx.ViewpointEvent.Create().
			SetViewpointID(vp.ID).
			SetEventID(ev.ID).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("associating event with canonical viewpoint: %w", err)
		}
		eventIDs = append(eventIDs, ev.ID)
	}

	if err := tx.Viewpoint.UpdateOneID(vp.ID).
		SetStatus(viewpoint.StatusCompleted).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("completing canonical viewpoint: %w", err)
	}
	if err := tx.SourceDocument.UpdateOneID(doc.ID).
		SetProcessingStatus(sourcedocument.ProcessingStatusCompleted).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("completing source document: %w", err)
	}
	return eventIDs, nil
}

func getOrCreateRawEvent(ctx context.Context, tx *ent.Tx, doc *ent.SourceDocument, pe extract.ProcessedEvent, sig string) (*ent.RawEvent, error) {
	existing, err := tx.RawEvent.Query().
		Where(
			rawevent.HasSourceDocumentWith(sourcedocument.IDEQ(doc.ID)),
			rawevent.DedupSignatureEQ(sig),
		).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("querying raw event: %w", err)
	}

	create := tx.RawEvent.Create().
		SetOriginalDescription(pe.Description).
		SetEventDateStr(pe.EventDateStr).
		SetSourceTextSnippet(pe.SourceTextSnippet).
		SetDedupSignature(sig).
		SetSourceDocument(doc)
	if di := dates.ToMap(pe.DateInfo); di != nil {
		create = create.SetDateInfo(di)
	}
	raw, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating raw event: %w", err)
	}
	return raw, nil
}

// Signature is the per-document raw event deduplication signature:
// sha256("{source_document_id}-{description}-{date_str}").
func Signature(sourceDocumentID int, description, dateStr string) string {
	h := sha256.Sum256([]byte(strconv.Itoa(sourceDocumentID) + "-" + description + "-" + dateStr))
	return hex.EncodeToString(h[:])
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
