package merger

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/chronicle-dev/chronicle/pkg/config"
	"github.com/chronicle-dev/chronicle/pkg/llm"
)

// Pre-filter thresholds.
const (
	quickExcludeYearDelta = 2
	llmEligibleYearDelta  = 3
	maxDescLengthRatio    = 5
)

// scoredCandidate pairs a candidate group with its cheap-feature score.
type scoredCandidate struct {
	group *MergedEventGroup
	score int
}

// Merger deduplicates events into merged groups.
type Merger struct {
	cfg      *config.MergerConfig
	matcher  SemanticMatcher
	picker   representativePicker
	userLang string

	// llmSlots caps concurrent adjudication calls globally, across windows.
	llmSlots chan struct{}

	counters Counters
}

// New creates a merger backed by the LLM for semantic matching and
// representative selection. userLang biases representative language choice.
func New(cfg *config.MergerConfig, client llm.Client, userLang string) (*Merger, error) {
	matcher, err := newLLMMatcher(client, cfg.ConfidenceThreshold, cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Merger{
		cfg:      cfg,
		matcher:  matcher,
		picker:   &llmPicker{client: client},
		userLang: userLang,
		llmSlots: make(chan struct{}, cfg.MaxConcurrentRequests),
	}, nil
}

// Counters returns a copy of the merger's monitoring counters.
func (m *Merger) Counters() Counters {
	c := m.counters
	if lm, ok := m.matcher.(*llmMatcher); ok {
		c.CacheHits = lm.CacheHits()
	}
	return c
}

// Merge assigns every input event to exactly one group and returns the
// groups ordered by representative timestamp ascending (unknown timestamps
// first, stable by group creation order).
func (m *Merger) Merge(ctx context.Context, inputs []*EventInput) ([]*MergedEventGroup, error) {
	m.counters.TotalEvents += int64(len(inputs))

	// Events with a known year first, ascending; year-less events last.
	sorted := make([]*EventInput, len(inputs))
	copy(sorted, inputs)
	sort.SliceStable(sorted, func(i, j int) bool {
		yi, yj := sorted[i].EventYear, sorted[j].EventYear
		switch {
		case yi == nil && yj == nil:
			return false
		case yi == nil:
			return false
		case yj == nil:
			return true
		default:
			return *yi < *yj
		}
	})

	indexes := newGroupIndexes()
	var groups []*MergedEventGroup

	for _, e := range sorted {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		group, err := m.findGroup(ctx, e, indexes)
		if err != nil {
			return nil, err
		}
		if group != nil {
			group.Events = append(group.Events, e)
			continue
		}

		g := &MergedEventGroup{Events: []*EventInput{e}, creationOrder: len(groups)}
		indexes.register(g)
		groups = append(groups, g)
	}

	for _, g := range groups {
		m.finalizeGroup(ctx, g)
	}
	sortGroups(groups)
	return groups, nil
}

// findGroup locates the existing group e belongs to, or nil for a new one.
func (m *Merger) findGroup(ctx context.Context, e *EventInput, indexes *groupIndexes) (*MergedEventGroup, error) {
	candidates, lookups := indexes.candidates(e)
	m.counters.IndexLookups += lookups
	if len(candidates) == 0 {
		return nil, nil
	}

	ranked := make([]scoredCandidate, 0, len(candidates))
	for _, g := range candidates {
		ranked = append(ranked, scoredCandidate{group: g, score: scoreCandidate(e, g)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	window := m.cfg.ConcurrentWindowSize
	for start := 0; start < len(ranked); start += window {
		end := start + window
		if end > len(ranked) {
			end = len(ranked)
		}

		// Pre-filter the window without the LLM.
		var eligible []scoredCandidate
		for _, cand := range ranked[start:end] {
			head := cand.group.head()

			if m.quickExclude(e, head) {
				m.counters.QuickExclusions++
				continue
			}

			if m.ruleBasedMatch(e, head) {
				m.counters.RuleBasedMerges++
				// Every already-eligible candidate's LLM call is saved.
				m.counters.ConcurrentLLMCallsSaved += int64(len(eligible))
				return cand.group, nil
			}

			if m.llmEligible(e, head, cand.score) {
				eligible = append(eligible, cand)
			} else {
				m.counters.LowScoreRejections++
			}
		}
		if len(eligible) == 0 {
			continue
		}

		match, err := m.adjudicateWindow(ctx, e, eligible)
		if err != nil {
			return nil, err
		}
		if match != nil {
			return match, nil
		}
	}
	return nil, nil
}

// quickExclude rejects a candidate without LLM involvement: years more than
// 2 apart, no entity and no type overlap, or wildly different description
// lengths.
func (m *Merger) quickExclude(e, head *EventInput) bool {
	if dy, ok := yearDelta(e, head); ok && dy > quickExcludeYearDelta {
		return true
	}
	if overlapCount(e.EntityUUIDs, head.EntityUUIDs) == 0 &&
		overlapCount(e.EntityTypes, head.EntityTypes) == 0 {
		return true
	}
	if descriptionLengthRatio(e, head) > maxDescLengthRatio {
		return true
	}
	return false
}

// ruleBasedMatch merges without the LLM when entity overlap (relative to
// the smaller set) reaches the configured ratio and the date ranges overlap
// (or both events carry no range).
func (m *Merger) ruleBasedMatch(e, head *EventInput) bool {
	if overlapRatio(e.EntityUUIDs, head.EntityUUIDs) < m.cfg.RuleOverlapRatio {
		return false
	}
	switch {
	case e.DateRange == nil && head.DateRange == nil:
		return true
	case e.DateRange == nil || head.DateRange == nil:
		return false
	default:
		return e.DateRange.Overlaps(*head.DateRange)
	}
}

// llmEligible gates a candidate into LLM adjudication.
func (m *Merger) llmEligible(e, head *EventInput, score int) bool {
	if overlapCount(e.EntityUUIDs, head.EntityUUIDs) < m.cfg.MinCommonEntities {
		return false
	}
	if dy, ok := yearDelta(e, head); !ok || dy > llmEligibleYearDelta {
		return false
	}
	return score >= m.cfg.LLMScoreThreshold
}

// adjudicateWindow launches one LLM adjudication per eligible candidate
// concurrently, then consumes results in score order: the first confirmed
// match wins and the remaining results are ignored (counted as saved; their
// verdicts stay cached for future pairs).
func (m *Merger) adjudicateWindow(ctx context.Context, e *EventInput, eligible []scoredCandidate) (*MergedEventGroup, error) {
	m.counters.ConcurrentWindowsProcessed++
	m.counters.LLMCandidates += int64(len(eligible))

	type outcome struct {
		matched bool
		err     error
	}
	outcomes := make([]outcome, len(eligible))

	var wg sync.WaitGroup
	for i, cand := range eligible {
		wg.Add(1)
		go func(i int, g *MergedEventGroup) {
			defer wg.Done()
			select {
			case m.llmSlots <- struct{}{}:
				defer func() { <-m.llmSlots }()
			case <-ctx.Done():
				outcomes[i] = outcome{err: ctx.Err()}
				return
			}
			matched, err := m.matcher.Match(ctx, g.head(), e)
			outcomes[i] = outcome{matched: matched, err: err}
		}(i, cand.group)
	}
	wg.Wait()

	for i, o := range outcomes {
		if o.err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// A failed adjudication only rejects this candidate.
			slog.Warn("Semantic match failed, treating as non-match",
				"event_id", e.ID, "error", o.err)
			continue
		}
		if o.matched {
			m.counters.LLMConfirmedMerges++
			m.counters.ConcurrentLLMCallsSaved += int64(len(eligible) - i - 1)
			return eligible[i].group, nil
		}
	}
	return nil, nil
}

// sortGroups orders groups by representative timestamp ascending; groups
// without a timestamp sort to the beginning, stable by creation order.
func sortGroups(groups []*MergedEventGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		ti, tj := groups[i].Representative.Timestamp, groups[j].Representative.Timestamp
		switch {
		case ti == nil && tj == nil:
			return groups[i].creationOrder < groups[j].creationOrder
		case ti == nil:
			return true
		case tj == nil:
			return false
		case ti.Equal(*tj):
			return groups[i].creationOrder < groups[j].creationOrder
		default:
			return ti.Before(*tj)
		}
	})
}

// String implements fmt.Stringer for log lines.
func (c Counters) String() string {
	return fmt.Sprintf(
		"events=%d quick_exclusions=%d rule_merges=%d llm_candidates=%d llm_confirmed=%d low_score_rejections=%d index_lookups=%d cache_hits=%d windows=%d llm_calls_saved=%d",
		c.TotalEvents, c.QuickExclusions, c.RuleBasedMerges, c.LLMCandidates,
		c.LLMConfirmedMerges, c.LowScoreRejections, c.IndexLookups, c.CacheHits,
		c.ConcurrentWindowsProcessed, c.ConcurrentLLMCallsSaved)
}
