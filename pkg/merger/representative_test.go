package merger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingPicker forces the heuristic fallback.
type failingPicker struct{}

func (failingPicker) Pick(_ context.Context, _ []*EventInput) (int, error) {
	return 0, errors.New("pick unavailable")
}

func TestHeuristicPickPrefersUserLanguage(t *testing.T) {
	m := newTestMerger(nil, nil)
	m.userLang = "zh"
	m.picker = failingPicker{}

	zh := mkEvent(1, "短描述", dayDate(1941, 12, 7), "zh", "E")
	en := mkEvent(2, "A much longer English description of the same event with detail.", dayDate(1941, 12, 7), "en", "E")

	g := &MergedEventGroup{Events: []*EventInput{en, zh}}
	m.finalizeGroup(context.Background(), g)

	assert.Equal(t, 1, g.Representative.EventID, "user-language contributor must win")
}

func TestHeuristicPickPrefersFinerPrecisionAmongEnglish(t *testing.T) {
	m := newTestMerger(nil, nil)
	m.picker = failingPicker{}

	day := mkEvent(1, "Same length text!", dayDate(1941, 12, 7), "en", "E")
	year := mkEvent(2, "Same length text!", yearDate(1941), "en", "E")

	g := &MergedEventGroup{Events: []*EventInput{year, day}}
	m.finalizeGroup(context.Background(), g)
	assert.Equal(t, 1, g.Representative.EventID)
}

// Repair: a representative without date fields borrows them from another
// contributor.
func TestRepresentativeRepairsMissingDate(t *testing.T) {
	m := newTestMerger(nil, nil)

	undated := NewEventInput(1, "Chosen but undated description.", "", nil, entities("E"), "en", "", "", "", nil)
	dated := mkEvent(2, "Dated sibling.", dayDate(1815, 6, 18), "en", "E")

	rep := m.buildRepresentative(undated, []*EventInput{undated, dated})
	assert.Equal(t, "date-str", rep.EventDateStr)
	require.NotNil(t, rep.DateInfo)
	require.NotNil(t, rep.Timestamp)
}

func TestRepresentativeLastResortDateString(t *testing.T) {
	m := newTestMerger(nil, nil)

	a := NewEventInput(1, "No dates anywhere.", "", nil, entities("E"), "en", "", "", "", nil)
	rep := m.buildRepresentative(a, []*EventInput{a})
	assert.Equal(t, "Unknown", rep.EventDateStr)

	b := NewEventInput(2, "Year known via date info.", "", yearDate(1066), entities("E"), "en", "", "", "", nil)
	b.EventDateStr = ""
	rep = m.buildRepresentative(b, []*EventInput{b})
	assert.Equal(t, "1066", rep.EventDateStr)
}

func TestLLMPickerResultUsedWhenValid(t *testing.T) {
	m := newTestMerger(nil, nil)
	m.picker = pickByID(2)

	a := mkEvent(1, "Short.", dayDate(1900, 1, 1), "en", "E")
	b := mkEvent(2, "Longer description of the same incident.", dayDate(1900, 1, 1), "en", "E")

	g := &MergedEventGroup{Events: []*EventInput{a, b}}
	m.finalizeGroup(context.Background(), g)
	assert.Equal(t, 2, g.Representative.EventID)
}

type pickByID int

func (p pickByID) Pick(_ context.Context, _ []*EventInput) (int, error) {
	return int(p), nil
}
