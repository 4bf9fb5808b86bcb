package pagingview

// slotIndex orders the three page slots.
type slotIndex int

const (
	slotCurrent slotIndex = iota
	slotNext
	slotPrevious
	slotCount
)

func slotFor(t PageType) slotIndex {
	switch t {
	case PageTypeNext:
		return slotNext
	case PageTypePrevious:
		return slotPrevious
	default:
		return slotCurrent
	}
}

// pageSlots holds the three live page instances. An instance occupies at
// most one slot at a time; rotations move instances between roles without
// copying them.
type pageSlots struct {
	pages [slotCount]Page
}

func (s *pageSlots) page(t PageType) Page { return s.pages[slotFor(t)] }

func (s *pageSlots) set(t PageType, page Page) { s.pages[slotFor(t)] = page }

func (s *pageSlots) occupied(t PageType) bool { return s.page(t) != nil }

// promote rotates roles one step toward next: the previous page falls out
// and is returned for recycling, current becomes previous, next becomes
// current, and the next slot is left empty for a fetch.
func (s *pageSlots) promote() Page {
	evicted := s.pages[slotPrevious]
	s.pages[slotPrevious] = s.pages[slotCurrent]
	s.pages[slotCurrent] = s.pages[slotNext]
	s.pages[slotNext] = nil
	return evicted
}

// demote mirrors promote for a turn toward previous.
func (s *pageSlots) demote() Page {
	evicted := s.pages[slotNext]
	s.pages[slotNext] = s.pages[slotCurrent]
	s.pages[slotCurrent] = s.pages[slotPrevious]
	s.pages[slotPrevious] = nil
	return evicted
}

// swapAdjacent exchanges the side slots. Used when a dynamic direction
// commit relabels the adjacent pages without moving them on screen.
func (s *pageSlots) swapAdjacent() {
	s.pages[slotPrevious], s.pages[slotNext] = s.pages[slotNext], s.pages[slotPrevious]
}

// evictAll empties every slot and returns the displaced instances.
func (s *pageSlots) evictAll() []Page {
	var out []Page
	for i := range s.pages {
		if s.pages[i] != nil {
			out = append(out, s.pages[i])
			s.pages[i] = nil
		}
	}
	return out
}

// visible returns the occupied slot instances. Order is not significant.
func (s *pageSlots) visible() []Page {
	var out []Page
	for i := range s.pages {
		if s.pages[i] != nil {
			out = append(out, s.pages[i])
		}
	}
	return out
}
