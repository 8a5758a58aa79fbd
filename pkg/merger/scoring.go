package merger

// Candidate scoring weights (0-100 scale).
const (
	entityOverlapWeight = 10
	typeOverlapWeight   = 5
	sameYearScore       = 30
	adjacentYearScore   = 20
	nearYearScore       = 10
	languageMatchScore  = 10
	descHashMatchScore  = 10
)

// scoreCandidate rates how likely e belongs to group g based on cheap
// features: entity overlap, entity-type overlap, year proximity, language,
// and identical description hashes.
func scoreCandidate(e *EventInput, g *MergedEventGroup) int {
	head := g.head()
	score := 0

	score += entityOverlapWeight * overlapCount(e.EntityUUIDs, head.EntityUUIDs)
	score += typeOverlapWeight * overlapCount(e.EntityTypes, head.EntityTypes)

	if dy, ok := yearDelta(e, head); ok {
		switch dy {
		case 0:
			score += sameYearScore
		case 1:
			score += adjacentYearScore
		case 2:
			score += nearYearScore
		}
	}

	if e.Language != "" && e.Language == head.Language {
		score += languageMatchScore
	}
	if e.DescriptionHash == head.DescriptionHash {
		score += descHashMatchScore
	}
	return score
}

// overlapCount counts keys present in both sets.
func overlapCount(a, b map[string]bool) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if b[k] {
			n++
		}
	}
	return n
}

// yearDelta returns |Δy| between the two events' years; ok is false when
// either year is unknown.
func yearDelta(a, b *EventInput) (int, bool) {
	if a.EventYear == nil || b.EventYear == nil {
		return 0, false
	}
	d := *a.EventYear - *b.EventYear
	if d < 0 {
		d = -d
	}
	return d, true
}

// overlapRatio returns the entity overlap relative to the smaller set.
func overlapRatio(a, b map[string]bool) float64 {
	smaller := len(a)
	if len(b) < smaller {
		smaller = len(b)
	}
	if smaller == 0 {
		return 0
	}
	return float64(overlapCount(a, b)) / float64(smaller)
}

// descriptionLengthRatio returns the longer/shorter description length
// ratio; events with empty descriptions ratio to the maximum.
func descriptionLengthRatio(a, b *EventInput) float64 {
	la, lb := len(a.Description), len(b.Description)
	if la == 0 || lb == 0 {
		return 1e9
	}
	if la < lb {
		la, lb = lb, la
	}
	return float64(la) / float64(lb)
}
