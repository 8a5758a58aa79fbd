package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/chronicle-dev/chronicle/ent"
	"github.com/chronicle-dev/chronicle/ent/task"
	"github.com/chronicle-dev/chronicle/ent/viewpointevent"
	"github.com/chronicle-dev/chronicle/pkg/dates"
	"github.com/chronicle-dev/chronicle/pkg/models"
)

// TimelineService assembles the final timeline of a completed task: events
// with relevance scores, entities, and full source provenance.
type TimelineService struct {
	client *ent.Client
}

// NewTimelineService creates a timeline service.
func NewTimelineService(client *ent.Client) *TimelineService {
	return &TimelineService{client: client}
}

// GetTimelineResult loads the embedded timeline for a task. Events and their
// associations load in one batch per relation to avoid N+1 queries.
func (s *TimelineService) GetTimelineResult(ctx context.Context, t *ent.Task) (*models.TimelineResult, error) {
	result := &models.TimelineResult{
		Status: string(t.Status),
		Topic:  t.TopicText,
	}
	if t.ViewpointID == nil {
		if t.Status == task.StatusCompleted {
			return nil, ErrNoTimeline
		}
		return result, nil
	}

	associations, err := s.client.ViewpointEvent.Query().
		Where(viewpointevent.ViewpointIDEQ(*t.ViewpointID)).
		WithEvent(func(q *ent.EventQuery) {
			q.WithEntities()
			q.WithRawEvents(func(rq *ent.RawEventQuery) {
				rq.WithSourceDocument()
			})
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying viewpoint events: %w", err)
	}

	sourceNames := make(map[string]bool)
	events := make([]models.TimelineEvent, 0, len(associations))
	for _, assoc := range associations {
		ev := assoc.Edges.Event
		if ev == nil {
			continue
		}

		te := models.TimelineEvent{
			EventID:        ev.ID,
			Date:           ev.EventDateStr,
			Description:    ev.Description,
			RelevanceScore: assoc.RelevanceScore,
		}
		if pd := dates.FromMap(ev.DateInfo); pd != nil {
			te.Timestamp = pd.StartTimestamp()
		}
		for _, e := range ev.Edges.Entities {
			te.Entities = append(te.Entities, models.TimelineEntity{
				Name: e.EntityName,
				Type: e.EntityType,
			})
		}
		for _, raw := range ev.Edges.RawEvents {
			doc := raw.Edges.SourceDocument
			if doc == nil {
				continue
			}
			te.Sources = append(te.Sources, models.TimelineSource{
				SourceName: doc.SourceName,
				Title:      doc.Title,
				URL:        doc.URL,
				Language:   doc.Language,
				Snippet:    raw.SourceTextSnippet,
			})
			sourceNames[doc.SourceName] = true
		}
		te.IsMerged = len(ev.Edges.RawEvents) > 1
		events = append(events, te)
	}

	// Chronological order, events without a timestamp first.
	sort.SliceStable(events, func(i, j int) bool {
		ti, tj := events[i].Timestamp, events[j].Timestamp
		switch {
		case ti == nil && tj == nil:
			return events[i].EventID < events[j].EventID
		case ti == nil:
			return true
		case tj == nil:
			return false
		default:
			return ti.Before(*tj)
		}
	})

	names := make([]string, 0, len(sourceNames))
	for name := range sourceNames {
		names = append(names, name)
	}
	sort.Strings(names)

	result.TimelineEvents = events
	result.EventCount = len(events)
	result.SourcesSummary = models.SourcesSummary{
		TotalSources: len(names),
		SourceNames:  names,
	}
	return result, nil
}
