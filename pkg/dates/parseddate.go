// Package dates provides structured historical date parsing with era-level
// precision and BCE support.
package dates

import (
	"fmt"
	"log/slog"
	"time"
)

// Precision of a parsed date.
type Precision string

// Precision constants, finest to coarsest.
const (
	PrecisionDay        Precision = "day"
	PrecisionMonth      Precision = "month"
	PrecisionYear       Precision = "year"
	PrecisionDecade     Precision = "decade"
	PrecisionCentury    Precision = "century"
	PrecisionMillennium Precision = "millennium"
	PrecisionEra        Precision = "era"
	PrecisionUnknown    Precision = "unknown"
)

// ParsedDate is the structured form of a raw historical date string.
// BCE years are negative integers. The JSON field names are the wire
// contract with the date-parsing LLM call.
type ParsedDate struct {
	OriginalText string    `json:"original_text"`
	DisplayText  string    `json:"display_text"`
	Precision    Precision `json:"precision"`
	StartYear    *int      `json:"start_year"`
	StartMonth   *int      `json:"start_month"`
	StartDay     *int      `json:"start_day"`
	EndYear      *int      `json:"end_year"`
	EndMonth     *int      `json:"end_month"`
	EndDay       *int      `json:"end_day"`
	IsBCE        bool      `json:"is_bce"`
}

// CalendarDate is a single concrete date. Year may be negative (BCE).
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// Compare returns -1, 0, or 1 ordering d against other.
func (d CalendarDate) Compare(other CalendarDate) int {
	a := [3]int{d.Year, d.Month, d.Day}
	b := [3]int{other.Year, other.Month, other.Day}
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%05d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DateRange is a concrete inclusive [Start, End] interval.
type DateRange struct {
	Start CalendarDate
	End   CalendarDate
}

// Overlaps reports whether two ranges intersect.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Compare(other.End) <= 0 && other.Start.Compare(r.End) <= 0
}

// ContainsDate reports whether d falls inside the range.
func (r DateRange) ContainsDate(d CalendarDate) bool {
	return r.Start.Compare(d) <= 0 && d.Compare(r.End) <= 0
}

// Range derives the concrete DateRange honoring precision:
// year expands to [Y-01-01, Y-12-31], month to the full month, decade to
// [Y, Y+9], day to equal bounds. Returns nil when no year is known.
// A start after end is swapped with a warning.
func (p *ParsedDate) Range() *DateRange {
	if p == nil || p.Precision == PrecisionUnknown {
		return nil
	}

	startYear := p.StartYear
	endYear := p.EndYear
	if startYear == nil && endYear == nil {
		return nil
	}
	if startYear == nil {
		startYear = endYear
	}
	if endYear == nil {
		endYear = startYear
	}

	start := CalendarDate{Year: *startYear, Month: valueOr(p.StartMonth, 1), Day: valueOr(p.StartDay, 1)}
	end := CalendarDate{Year: *endYear, Month: valueOr(p.EndMonth, 12), Day: 0}
	if p.EndDay != nil {
		end.Day = *p.EndDay
	} else {
		end.Day = daysInMonth(end.Year, end.Month)
	}

	switch p.Precision {
	case PrecisionDay:
		if p.EndYear == nil && p.EndMonth == nil && p.EndDay == nil {
			end = start
		}
	case PrecisionMonth:
		if p.EndMonth == nil {
			end.Month = start.Month
			end.Day = daysInMonth(end.Year, end.Month)
		}
	case PrecisionDecade:
		if p.EndYear == nil {
			end.Year = start.Year + 9
			end.Month = 12
			end.Day = 31
		}
	}

	if start.Compare(end) > 0 {
		slog.Warn("Parsed date range has start after end, swapping",
			"original_text", p.OriginalText, "start", start.String(), "end", end.String())
		start, end = end, start
	}
	return &DateRange{Start: start, End: end}
}

// StartTimestamp returns the midnight-UTC time of the range start, when it
// is representable by time.Time (year >= 1). Ancient and BCE dates return
// nil; callers sort them to the beginning.
func (p *ParsedDate) StartTimestamp() *time.Time {
	r := p.Range()
	if r == nil || r.Start.Year < 1 {
		return nil
	}
	t := time.Date(r.Start.Year, time.Month(r.Start.Month), r.Start.Day, 0, 0, 0, 0, time.UTC)
	return &t
}

// EventYear returns the start year, falling back to the end year. Second
// return is false when the date carries no year at all.
func (p *ParsedDate) EventYear() (int, bool) {
	if p == nil {
		return 0, false
	}
	if p.StartYear != nil {
		return *p.StartYear, true
	}
	if p.EndYear != nil {
		return *p.EndYear, true
	}
	return 0, false
}

func valueOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func daysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 31
	}
	// time.Date normalizes day 0 of the next month to the last day of this
	// month; proleptic-Gregorian is fine for range bounds.
	y := year
	if y < 1 {
		// Leap rule applied to the absolute year keeps BCE bounds sane.
		y = -y + 1
	}
	return time.Date(y, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
