package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chronicle-dev/chronicle/ent"
	"github.com/chronicle-dev/chronicle/ent/event"
	"github.com/chronicle-dev/chronicle/pkg/dates"
	"github.com/chronicle-dev/chronicle/pkg/events"
	"github.com/chronicle-dev/chronicle/pkg/merger"
)

// materialize writes the merged groups into the synthetic viewpoint in one
// consolidation transaction. Unmerged groups reuse their existing event;
// merged groups get a new event carrying the union of raw-event provenance
// and entity associations of all contributors.
func (r *taskRun) materialize(ctx context.Context, viewpointID int, groups []*merger.MergedEventGroup) error {
	r.progress(ctx, events.StepViewpointMaterialization, "writing timeline", map[string]any{
		"group_count": len(groups),
	})

	tx, err := r.o.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting materialization transaction: %w", err)
	}

	if err := materializeInTx(ctx, tx, viewpointID, groups); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Error("Materialization rollback failed",
				"viewpoint_id", viewpointID, "error", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing materialization: %w", err)
	}
	return nil
}

func materializeInTx(ctx context.Context, tx *ent.Tx, viewpointID int, groups []*merger.MergedEventGroup) error {
	for _, g := range groups {
		eventID, err := resolveGroupEvent(ctx, tx, g)
		if err != nil {
			return err
		}

		if err := tx.ViewpointEvent.Create().
			SetViewpointID(viewpointID).
			SetEventID(eventID).
			SetRelevanceScore(g.Relevance).
			Exec(ctx); err != nil {
			return fmt.Errorf("associating event %d with viewpoint: %w", eventID, err)
		}
	}
	return nil
}

// resolveGroupEvent returns the event ID representing the group: the
// existing event for single-member groups, or a freshly created consolidated
// event for merged ones.
func resolveGroupEvent(ctx context.Context, tx *ent.Tx, g *merger.MergedEventGroup) (int, error) {
	if !g.IsMerged() {
		return g.Events[0].ID, nil
	}

	rep := g.Representative

	contributorIDs := make([]int, 0, len(g.Events))
	for _, e := range g.Events {
		contributorIDs = append(contributorIDs, e.ID)
	}

	// Union of raw-event provenance across contributors, in one query.
	contributors, err := tx.Event.Query().
		Where(event.IDIn(contributorIDs...)).
		WithRawEvents().
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading contributor provenance: %w", err)
	}
	rawIDSet := make(map[int]bool)
	var rawIDs []int
	for _, c := range contributors {
		for _, raw := range c.Edges.RawEvents {
			if !rawIDSet[raw.ID] {
				rawIDSet[raw.ID] = true
				rawIDs = append(rawIDs, raw.ID)
			}
		}
	}

	// Union of entity associations, deduplicated.
	entitySet := make(map[string]bool)
	var entityIDs []string
	for _, e := range g.Events {
		for id := range e.EntityUUIDs {
			if !entitySet[id] {
				entitySet[id] = true
				entityIDs = append(entityIDs, id)
			}
		}
	}

	create := tx.Event.Create().
		SetDescription(rep.Description).
		SetEventDateStr(rep.EventDateStr)
	if di := dates.ToMap(rep.DateInfo); di != nil {
		create = create.SetDateInfo(di)
	}
	if len(rawIDs) > 0 {
		create = create.AddRawEventIDs(rawIDs...)
	}
	if len(entityIDs) > 0 {
		create = create.AddEntityIDs(entityIDs...)
	}

	merged, err := create.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("creating merged event: %w", err)
	}
	return merged.ID, nil
}
