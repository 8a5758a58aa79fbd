package merger

// hybridKey indexes groups by (entity UUID, event year).
type hybridKey struct {
	entityUUID string
	year       int
}

// groupIndexes maintains the four candidate-lookup indexes. Groups register
// on creation; lookups return the union across dimensions.
type groupIndexes struct {
	byEntity     map[string][]*MergedEventGroup
	byEntityType map[string][]*MergedEventGroup
	byYear       map[int][]*MergedEventGroup
	byHybrid     map[hybridKey][]*MergedEventGroup
}

func newGroupIndexes() *groupIndexes {
	return &groupIndexes{
		byEntity:     make(map[string][]*MergedEventGroup),
		byEntityType: make(map[string][]*MergedEventGroup),
		byYear:       make(map[int][]*MergedEventGroup),
		byHybrid:     make(map[hybridKey][]*MergedEventGroup),
	}
}

// register adds a group to every index dimension derived from its head
// event.
func (ix *groupIndexes) register(g *MergedEventGroup) {
	head := g.head()
	for id := range head.EntityUUIDs {
		ix.byEntity[id] = append(ix.byEntity[id], g)
	}
	for t := range head.EntityTypes {
		ix.byEntityType[t] = append(ix.byEntityType[t], g)
	}
	if head.EventYear != nil {
		y := *head.EventYear
		ix.byYear[y] = append(ix.byYear[y], g)
		for id := range head.EntityUUIDs {
			k := hybridKey{entityUUID: id, year: y}
			ix.byHybrid[k] = append(ix.byHybrid[k], g)
		}
	}
}

// candidates returns the deduplicated union of index hits for e: groups
// sharing an entity UUID, an entity type, the same year or a neighboring
// year, or a hybrid (entity, year) key. The second return counts index
// lookups performed.
func (ix *groupIndexes) candidates(e *EventInput) ([]*MergedEventGroup, int64) {
	seen := make(map[*MergedEventGroup]bool)
	var out []*MergedEventGroup
	var lookups int64

	add := func(groups []*MergedEventGroup) {
		lookups++
		for _, g := range groups {
			if !seen[g] {
				seen[g] = true
				out = append(out, g)
			}
		}
	}

	for id := range e.EntityUUIDs {
		add(ix.byEntity[id])
	}
	for t := range e.EntityTypes {
		add(ix.byEntityType[t])
	}
	if e.EventYear != nil {
		y := *e.EventYear
		add(ix.byYear[y])
		add(ix.byYear[y-1])
		add(ix.byYear[y+1])
		for id := range e.EntityUUIDs {
			add(ix.byHybrid[hybridKey{entityUUID: id, year: y}])
		}
	}
	return out, lookups
}
