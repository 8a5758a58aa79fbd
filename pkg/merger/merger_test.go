package merger

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronicle-dev/chronicle/pkg/config"
	"github.com/chronicle-dev/chronicle/pkg/dates"
)

// funcMatcher adapts a function to SemanticMatcher.
type funcMatcher struct {
	fn    func(a, b *EventInput) (bool, error)
	calls atomic.Int64
}

func (m *funcMatcher) Match(_ context.Context, a, b *EventInput) (bool, error) {
	m.calls.Add(1)
	return m.fn(a, b)
}

// staticPicker always picks the first contributor.
type staticPicker struct{}

func (staticPicker) Pick(_ context.Context, events []*EventInput) (int, error) {
	return events[0].ID, nil
}

func newTestMerger(cfg *config.MergerConfig, matcher SemanticMatcher) *Merger {
	if cfg == nil {
		cfg = config.DefaultMergerConfig()
	}
	return &Merger{
		cfg:      cfg,
		matcher:  matcher,
		picker:   staticPicker{},
		userLang: "en",
		llmSlots: make(chan struct{}, cfg.MaxConcurrentRequests),
	}
}

// dayDate builds a day-precision ParsedDate.
func dayDate(year, month, day int) *dates.ParsedDate {
	return &dates.ParsedDate{
		Precision:  dates.PrecisionDay,
		StartYear:  &year,
		StartMonth: &month,
		StartDay:   &day,
	}
}

func yearDate(year int) *dates.ParsedDate {
	return &dates.ParsedDate{Precision: dates.PrecisionYear, StartYear: &year}
}

func entities(names ...string) []EntityInfo {
	out := make([]EntityInfo, 0, len(names))
	for _, n := range names {
		out = append(out, EntityInfo{Name: n, Type: "battle", UUID: "uuid-" + n})
	}
	return out
}

func mkEvent(id int, desc string, date *dates.ParsedDate, lang string, ents ...string) *EventInput {
	return NewEventInput(id, desc, "date-str", date, entities(ents...), lang, "snippet", "url", "title", nil)
}

// Rule-based matching merges without consulting the LLM.
func TestRuleBasedMergeSkipsLLM(t *testing.T) {
	matcher := &funcMatcher{fn: func(a, b *EventInput) (bool, error) {
		t.Fatal("LLM matcher must not be called for rule-based merges")
		return false, nil
	}}
	m := newTestMerger(nil, matcher)

	a := mkEvent(1, "The battle began near the river crossing.", dayDate(1805, 12, 2), "en", "E1", "E2", "E3", "E4")
	b := mkEvent(2, "The battle commenced by the river.", dayDate(1805, 12, 2), "en", "E1", "E2", "E3")

	groups, err := m.Merge(context.Background(), []*EventInput{a, b})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.True(t, groups[0].IsMerged())
	assert.Equal(t, int64(1), m.Counters().RuleBasedMerges)
	assert.Zero(t, m.Counters().LLMCandidates)
}

// Years more than two apart are excluded before any LLM involvement.
func TestQuickExcludeByYearDistance(t *testing.T) {
	matcher := &funcMatcher{fn: func(a, b *EventInput) (bool, error) { return true, nil }}
	m := newTestMerger(nil, matcher)

	a := mkEvent(1, "Treaty negotiations opened in the capital.", yearDate(1800), "en", "E1")
	b := mkEvent(2, "Treaty negotiations opened in the capital.", yearDate(1805), "en", "E1")

	groups, err := m.Merge(context.Background(), []*EventInput{a, b})
	require.NoError(t, err)
	assert.Len(t, groups, 2)
	assert.GreaterOrEqual(t, m.Counters().QuickExclusions, int64(1))
	assert.Zero(t, matcher.calls.Load())
}

// S5: window of 3 with 5 eligible candidates; the second-ranked confirms.
// Three concurrent calls run, one result is ignored (saved), and the second
// window never runs.
func TestWindowEarlyTermination(t *testing.T) {
	cfg := config.DefaultMergerConfig()

	e := mkEvent(100, "The fleet engaged at dawn near the cape.", dayDate(1900, 6, 15), "en",
		"S1", "S2", "S3", "S4", "S5")

	indexes := newGroupIndexes()
	var groups []*MergedEventGroup
	for i := 1; i <= 5; i++ {
		ents := make([]string, 0, i+2)
		ents = append(ents, []string{"S1", "S2", "S3", "S4", "S5"}[:i]...)
		ents = append(ents, fmt.Sprintf("U%d-a", i), fmt.Sprintf("U%d-b", i))
		// Same year but a disjoint date range, so rule-based matching cannot
		// fire even at full entity overlap.
		head := mkEvent(i, "The fleet engaged at dawn near the cape.", dayDate(1900, 1, i), "en", ents...)
		g := &MergedEventGroup{Events: []*EventInput{head}, creationOrder: i}
		indexes.register(g)
		groups = append(groups, g)
	}
	secondRanked := groups[3] // shares 4 entities; ranked second after the 5-entity group

	matcher := &funcMatcher{fn: func(a, b *EventInput) (bool, error) {
		return a.ID == secondRanked.head().ID || b.ID == secondRanked.head().ID, nil
	}}
	m := newTestMerger(cfg, matcher)

	got, err := m.findGroup(context.Background(), e, indexes)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, secondRanked, got)

	c := m.Counters()
	assert.Equal(t, int64(1), c.ConcurrentWindowsProcessed)
	assert.Equal(t, int64(3), c.LLMCandidates)
	assert.Equal(t, int64(1), c.LLMConfirmedMerges)
	assert.Equal(t, int64(1), c.ConcurrentLLMCallsSaved)
	assert.Equal(t, int64(3), matcher.calls.Load())
}

// Soundness: every input event lands in exactly one group; contributions
// over all groups equal the input set.
func TestMergeSoundness(t *testing.T) {
	matcher := &funcMatcher{fn: func(a, b *EventInput) (bool, error) { return false, nil }}
	m := newTestMerger(nil, matcher)

	inputs := []*EventInput{
		mkEvent(1, "First event happened in the north.", yearDate(1900), "en", "A"),
		mkEvent(2, "Second event happened in the south.", yearDate(1910), "en", "B"),
		mkEvent(3, "Third event happened in the east.", nil, "en", "C"),
		mkEvent(4, "Fourth event happened in the west.", yearDate(1920), "en", "D"),
	}

	groups, err := m.Merge(context.Background(), inputs)
	require.NoError(t, err)

	seen := map[int]int{}
	total := 0
	for _, g := range groups {
		for _, c := range g.Contributions() {
			seen[c.Event.ID]++
			total++
		}
	}
	assert.Equal(t, len(inputs), total)
	for _, in := range inputs {
		assert.Equal(t, 1, seen[in.ID], "event %d must appear exactly once", in.ID)
	}
}

// Idempotence: merging the same input twice yields identical partitions.
func TestMergeIdempotent(t *testing.T) {
	mkInputs := func() []*EventInput {
		return []*EventInput{
			mkEvent(1, "The armies clashed at the bridge.", dayDate(1805, 10, 1), "en", "X", "Y", "Z"),
			mkEvent(2, "The armies fought at the bridge crossing.", dayDate(1805, 10, 1), "en", "X", "Y", "Z"),
			mkEvent(3, "A treaty was signed far away.", yearDate(1815), "en", "Q"),
		}
	}

	partition := func(groups []*MergedEventGroup) [][]int {
		var out [][]int
		for _, g := range groups {
			var ids []int
			for _, e := range g.Events {
				ids = append(ids, e.ID)
			}
			out = append(out, ids)
		}
		return out
	}

	m1 := newTestMerger(nil, &funcMatcher{fn: func(a, b *EventInput) (bool, error) { return false, nil }})
	m2 := newTestMerger(nil, &funcMatcher{fn: func(a, b *EventInput) (bool, error) { return false, nil }})

	g1, err := m1.Merge(context.Background(), mkInputs())
	require.NoError(t, err)
	g2, err := m2.Merge(context.Background(), mkInputs())
	require.NoError(t, err)

	assert.Equal(t, partition(g1), partition(g2))
}

// Output ordering: ascending by representative timestamp, events without a
// timestamp first, stable by creation order.
func TestMergeOutputOrdering(t *testing.T) {
	matcher := &funcMatcher{fn: func(a, b *EventInput) (bool, error) { return false, nil }}
	m := newTestMerger(nil, matcher)

	inputs := []*EventInput{
		mkEvent(1, "Late event in the records.", dayDate(1969, 7, 20), "en", "A"),
		mkEvent(2, "Undated event from tradition.", nil, "en", "B"),
		mkEvent(3, "Early event in the records.", dayDate(1914, 6, 28), "en", "C"),
		mkEvent(4, "Ancient event before the common era.", yearDate(-44), "en", "D"),
	}

	groups, err := m.Merge(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, groups, 4)

	// Null timestamps (undated and BCE) first, then chronological.
	assert.Nil(t, groups[0].Representative.Timestamp)
	assert.Nil(t, groups[1].Representative.Timestamp)
	require.NotNil(t, groups[2].Representative.Timestamp)
	require.NotNil(t, groups[3].Representative.Timestamp)
	assert.True(t, groups[2].Representative.Timestamp.Before(*groups[3].Representative.Timestamp))
}

// Group relevance is the max over contributors carrying a known score.
func TestGroupRelevanceIsMaxOfContributors(t *testing.T) {
	m := newTestMerger(nil, &funcMatcher{fn: func(a, b *EventInput) (bool, error) { return false, nil }})

	low, high := 0.65, 0.9
	a := mkEvent(1, "The same event, tersely.", dayDate(1805, 12, 2), "en", "E1", "E2", "E3")
	a.Relevance = &low
	b := mkEvent(2, "The same event, more words.", dayDate(1805, 12, 2), "en", "E1", "E2", "E3")
	b.Relevance = &high

	groups, err := m.Merge(context.Background(), []*EventInput{a, b})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 0.9, groups[0].Relevance)
}
