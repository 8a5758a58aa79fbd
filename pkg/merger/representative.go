package merger

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/chronicle-dev/chronicle/pkg/dates"
	"github.com/chronicle-dev/chronicle/pkg/llm"
)

const pickSystemPrompt = `You are given several records describing the same historical event.
Pick the record whose description is the most comprehensive and precise.
Respond with JSON: {"event_id": <the chosen record's id>}
Respond ONLY with JSON.`

// Heuristic fallback scoring for representative selection.
const (
	userLangBonus       = 100.0
	englishBonus        = 50.0
	perCharBonus        = 0.1
	dayPrecisionBonus   = 30.0
	monthPrecisionBonus = 20.0
	yearPrecisionBonus  = 10.0
)

// representativePicker chooses the most comprehensive contributor of a
// multi-event group.
type representativePicker interface {
	Pick(ctx context.Context, events []*EventInput) (int, error)
}

// llmPicker asks the LLM to pick deterministically (temperature 0).
type llmPicker struct {
	client llm.Client
}

// Pick implements representativePicker.
func (p *llmPicker) Pick(ctx context.Context, events []*EventInput) (int, error) {
	var b strings.Builder
	b.WriteString("Records:\n")
	for _, e := range events {
		fmt.Fprintf(&b, "id=%d [%s] %s\n", e.ID, e.EventDateStr, e.Description)
	}

	raw, err := p.client.GenerateChatCompletion(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: pickSystemPrompt},
		{Role: llm.RoleUser, Content: b.String()},
	}, llm.Options{Temperature: llm.Temp(0), ResponseFormat: llm.ResponseFormatJSON})
	if err != nil {
		return 0, err
	}

	var v struct {
		EventID int `json:"event_id"`
	}
	if err := llm.ExtractJSON(raw, &v); err != nil {
		return 0, err
	}
	for _, e := range events {
		if e.ID == v.EventID {
			return v.EventID, nil
		}
	}
	return 0, fmt.Errorf("picker returned unknown event id %d", v.EventID)
}

// finalizeGroup selects the representative, applies the repair rules, and
// computes the group's relevance (max over contributors with known scores).
func (m *Merger) finalizeGroup(ctx context.Context, g *MergedEventGroup) {
	chosen := g.Events[0]
	if len(g.Events) > 1 {
		if id, err := m.picker.Pick(ctx, g.Events); err == nil {
			for _, e := range g.Events {
				if e.ID == id {
					chosen = e
					break
				}
			}
		} else {
			slog.Warn("Representative pick failed, using heuristic fallback", "error", err)
			chosen = m.heuristicPick(g.Events)
		}
	}

	g.Representative = m.buildRepresentative(chosen, g.Events)

	for _, e := range g.Events {
		if e.Relevance != nil && *e.Relevance > g.Relevance {
			g.Relevance = *e.Relevance
		}
	}
}

// heuristicPick scores contributors: user language beats English beats
// other languages; longer descriptions and finer date precision win ties.
func (m *Merger) heuristicPick(events []*EventInput) *EventInput {
	best := events[0]
	bestScore := -1.0
	for _, e := range events {
		score := 0.0
		switch {
		case m.userLang != "" && e.Language == m.userLang:
			score += userLangBonus
		case e.Language == "en":
			score += englishBonus
		}
		score += perCharBonus * float64(len(e.Description))
		if e.DateInfo != nil {
			switch e.DateInfo.Precision {
			case dates.PrecisionDay:
				score += dayPrecisionBonus
			case dates.PrecisionMonth:
				score += monthPrecisionBonus
			case dates.PrecisionYear:
				score += yearPrecisionBonus
			}
		}
		if score > bestScore {
			bestScore = score
			best = e
		}
	}
	return best
}

// buildRepresentative assembles the output record, repairing missing date
// fields from other contributors when possible.
func (m *Merger) buildRepresentative(chosen *EventInput, all []*EventInput) *Representative {
	rep := &Representative{
		EventID:      chosen.ID,
		EventDateStr: chosen.EventDateStr,
		Description:  chosen.Description,
		MainEntities: chosen.Entities,
		DateInfo:     chosen.DateInfo,
		Snippet:      chosen.Snippet,
		SourceURL:    chosen.SourceURL,
		SourceTitle:  chosen.SourceTitle,
		Language:     chosen.Language,
	}

	dateRange := chosen.DateRange
	if dateRange == nil {
		for _, e := range all {
			if e.DateRange != nil {
				dateRange = e.DateRange
				rep.DateInfo = e.DateInfo
				break
			}
		}
	}
	if rep.EventDateStr == "" {
		for _, e := range all {
			if e.EventDateStr != "" {
				rep.EventDateStr = e.EventDateStr
				break
			}
		}
	}
	if rep.EventDateStr == "" {
		if dateRange != nil {
			rep.EventDateStr = strconv.Itoa(dateRange.Start.Year)
		} else {
			rep.EventDateStr = "Unknown"
		}
	}

	if rep.DateInfo != nil {
		rep.Timestamp = rep.DateInfo.StartTimestamp()
	}
	return rep
}
