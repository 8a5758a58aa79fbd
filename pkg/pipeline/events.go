package pipeline

import (
	"context"
	"fmt"

	"github.com/chronicle-dev/chronicle/ent"
	"github.com/chronicle-dev/chronicle/ent/event"
	"github.com/chronicle-dev/chronicle/pkg/dates"
	"github.com/chronicle-dev/chronicle/pkg/merger"
)

// loadEventInputs loads the given events with their entity and raw-event
// associations in one batch (no per-event queries) and converts them into
// merger inputs.
func loadEventInputs(ctx context.Context, client *ent.Client, eventIDs []int) ([]*merger.EventInput, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}

	rows, err := client.Event.Query().
		Where(event.IDIn(eventIDs...)).
		WithEntities().
		WithRawEvents(func(q *ent.RawEventQuery) {
			q.WithSourceDocument()
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}

	// Preserve the caller's ID order.
	byID := make(map[int]*ent.Event, len(rows))
	for _, ev := range rows {
		byID[ev.ID] = ev
	}

	inputs := make([]*merger.EventInput, 0, len(rows))
	for _, id := range eventIDs {
		ev, ok := byID[id]
		if !ok {
			continue
		}

		entities := make([]merger.EntityInfo, 0, len(ev.Edges.Entities))
		for _, e := range ev.Edges.Entities {
			entities = append(entities, merger.EntityInfo{
				Name: e.EntityName,
				Type: e.EntityType,
				UUID: e.ID,
			})
		}

		var language, snippet, sourceURL, sourceTitle string
		if len(ev.Edges.RawEvents) > 0 {
			raw := ev.Edges.RawEvents[0]
			snippet = raw.SourceTextSnippet
			if doc := raw.Edges.SourceDocument; doc != nil {
				language = doc.Language
				sourceURL = doc.URL
				sourceTitle = doc.Title
			}
		}

		inputs = append(inputs, merger.NewEventInput(
			ev.ID,
			ev.Description,
			ev.EventDateStr,
			dates.FromMap(ev.DateInfo),
			entities,
			language,
			snippet,
			sourceURL,
			sourceTitle,
			nil,
		))
	}
	return inputs, nil
}
