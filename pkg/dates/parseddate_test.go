package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestRangeYearPrecision(t *testing.T) {
	pd := &ParsedDate{Precision: PrecisionYear, StartYear: intp(1969)}
	r := pd.Range()
	require.NotNil(t, r)
	assert.Equal(t, CalendarDate{1969, 1, 1}, r.Start)
	assert.Equal(t, CalendarDate{1969, 12, 31}, r.End)
}

func TestRangeMonthPrecision(t *testing.T) {
	pd := &ParsedDate{Precision: PrecisionMonth, StartYear: intp(1969), StartMonth: intp(7)}
	r := pd.Range()
	require.NotNil(t, r)
	assert.Equal(t, CalendarDate{1969, 7, 1}, r.Start)
	assert.Equal(t, CalendarDate{1969, 7, 31}, r.End)
}

func TestRangeMonthPrecisionFebruaryLeap(t *testing.T) {
	pd := &ParsedDate{Precision: PrecisionMonth, StartYear: intp(2020), StartMonth: intp(2)}
	r := pd.Range()
	require.NotNil(t, r)
	assert.Equal(t, CalendarDate{2020, 2, 29}, r.End)
}

func TestRangeDayPrecision(t *testing.T) {
	pd := &ParsedDate{
		Precision: PrecisionDay,
		StartYear: intp(1969), StartMonth: intp(7), StartDay: intp(20),
	}
	r := pd.Range()
	require.NotNil(t, r)
	assert.Equal(t, r.Start, r.End)
}

func TestRangeDecadePrecision(t *testing.T) {
	pd := &ParsedDate{Precision: PrecisionDecade, StartYear: intp(1960)}
	r := pd.Range()
	require.NotNil(t, r)
	assert.Equal(t, CalendarDate{1960, 1, 1}, r.Start)
	assert.Equal(t, CalendarDate{1969, 12, 31}, r.End)
}

func TestRangeBCEYearsAreNegative(t *testing.T) {
	// 5th century BCE: -500 .. -401
	pd := &ParsedDate{
		Precision: PrecisionCentury,
		StartYear: intp(-500), EndYear: intp(-401),
		IsBCE: true,
	}
	r := pd.Range()
	require.NotNil(t, r)
	assert.Equal(t, -500, r.Start.Year)
	assert.Equal(t, -401, r.End.Year)
	assert.LessOrEqual(t, r.Start.Compare(r.End), 0)
}

func TestRangeSwapsInvertedBounds(t *testing.T) {
	pd := &ParsedDate{
		Precision: PrecisionYear,
		StartYear: intp(1945), EndYear: intp(1939),
	}
	r := pd.Range()
	require.NotNil(t, r)
	assert.Equal(t, 1939, r.Start.Year)
	assert.Equal(t, 1945, r.End.Year)
}

func TestRangeUnknownPrecision(t *testing.T) {
	pd := &ParsedDate{Precision: PrecisionUnknown}
	assert.Nil(t, pd.Range())
}

// Date round-trip invariants: start<=end; year precision pins the month/day
// bounds; BCE years negative.
func TestRangeInvariantsAcrossPrecisions(t *testing.T) {
	cases := []*ParsedDate{
		{Precision: PrecisionDay, StartYear: intp(1969), StartMonth: intp(7), StartDay: intp(20)},
		{Precision: PrecisionMonth, StartYear: intp(1914), StartMonth: intp(8)},
		{Precision: PrecisionYear, StartYear: intp(476)},
		{Precision: PrecisionDecade, StartYear: intp(1880)},
		{Precision: PrecisionCentury, StartYear: intp(1801), EndYear: intp(1900)},
		{Precision: PrecisionMillennium, StartYear: intp(1001), EndYear: intp(2000)},
		{Precision: PrecisionYear, StartYear: intp(-44)},
	}
	for _, pd := range cases {
		r := pd.Range()
		require.NotNil(t, r, "precision %s", pd.Precision)
		assert.LessOrEqual(t, r.Start.Compare(r.End), 0)
		if pd.Precision == PrecisionYear {
			assert.Equal(t, 1, r.Start.Month)
			assert.Equal(t, 1, r.Start.Day)
			assert.Equal(t, 12, r.End.Month)
			assert.Equal(t, 31, r.End.Day)
		}
	}
}

func TestOverlaps(t *testing.T) {
	a := DateRange{Start: CalendarDate{1939, 1, 1}, End: CalendarDate{1945, 12, 31}}
	b := DateRange{Start: CalendarDate{1944, 6, 6}, End: CalendarDate{1944, 6, 6}}
	c := DateRange{Start: CalendarDate{1950, 1, 1}, End: CalendarDate{1953, 12, 31}}

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c))
}

func TestContainsDate(t *testing.T) {
	r := DateRange{Start: CalendarDate{1969, 1, 1}, End: CalendarDate{1969, 12, 31}}
	assert.True(t, r.ContainsDate(CalendarDate{1969, 7, 20}))
	assert.False(t, r.ContainsDate(CalendarDate{1970, 1, 1}))
}

func TestStartTimestamp(t *testing.T) {
	pd := &ParsedDate{Precision: PrecisionDay, StartYear: intp(1969), StartMonth: intp(7), StartDay: intp(20)}
	ts := pd.StartTimestamp()
	require.NotNil(t, ts)
	assert.Equal(t, "1969-07-20T00:00:00Z", ts.UTC().Format("2006-01-02T15:04:05Z"))

	bce := &ParsedDate{Precision: PrecisionYear, StartYear: intp(-44)}
	assert.Nil(t, bce.StartTimestamp())
}

func TestEventYearFallsBackToEndYear(t *testing.T) {
	pd := &ParsedDate{Precision: PrecisionYear, EndYear: intp(1815)}
	year, ok := pd.EventYear()
	require.True(t, ok)
	assert.Equal(t, 1815, year)

	none := &ParsedDate{Precision: PrecisionUnknown}
	_, ok = none.EventYear()
	assert.False(t, ok)
}
