package pagingview

// scrollState tracks what the surface is doing.
type scrollState int

const (
	stateIdle scrollState = iota
	stateDragging
	stateAnimating
)

// scrollCoordinator is the per-gesture bookkeeping: which side has been
// announced so far, and which slot the running animation settles on.
type scrollCoordinator struct {
	state     scrollState
	noted     PageType
	hasNoted  bool
	target    PageType
	hasTarget bool
}

// HandleDragBegin marks the start of an interactive drag. Ignored while an
// animated turn is still in flight.
func (pv *PagerView) HandleDragBegin() {
	if pv.coord.state != stateIdle {
		return
	}
	if !pv.beginMutation() {
		return
	}
	defer pv.endMutation()
	pv.coord = scrollCoordinator{state: stateDragging}
}

// HandleOffsetChange reads the surface offset and announces threshold
// crossings. Hosts call it for every interactive offset move, and may also
// call it while playing an animation so WillTurnToPage fires mid-flight.
// This is also where dynamic direction inference observes the gesture.
func (pv *PagerView) HandleOffsetChange() {
	if pv.coord.state == stateIdle {
		return
	}
	if !pv.beginMutation() {
		return
	}
	defer pv.endMutation()

	side, crossed := pv.layout.thresholdSide(pv.surface.ContentOffset().X)
	if !crossed {
		pv.coord.hasNoted = false
		return
	}
	if pv.coord.state == stateDragging {
		side = pv.inferDirection(side)
	}
	pv.notifyWillTurn(side)
}

// HandleDragEnd settles the gesture: past an adjacent midpoint the surface
// is animated onto that page, otherwise back onto the current one. The slot
// rotation itself waits for HandleAnimationEnd, so a crossing that is
// dragged back before release commits nothing.
func (pv *PagerView) HandleDragEnd() {
	if pv.coord.state != stateDragging {
		return
	}
	if !pv.beginMutation() {
		return
	}
	defer pv.endMutation()

	side, crossed := pv.layout.thresholdSide(pv.surface.ContentOffset().X)
	target := pv.restOffset()
	if crossed {
		target = pv.layout.frames[slotFor(side)].Origin
	}
	pv.coord.state = stateAnimating
	pv.coord.hasTarget = crossed
	if crossed {
		pv.coord.target = side
	}
	if pv.surface.ContentOffset() == target {
		pv.settle()
		return
	}
	pv.surface.AnimateContentOffset(target)
}

// HandleAnimationEnd commits whatever the animation settled on: a slot
// rotation when the target was an adjacent page, otherwise just a return to
// rest.
func (pv *PagerView) HandleAnimationEnd() {
	if pv.coord.state != stateAnimating {
		return
	}
	if !pv.beginMutation() {
		return
	}
	defer pv.endMutation()
	pv.settle()
}

// settle assumes the mutation guard is held and the coordinator is in the
// animating state.
func (pv *PagerView) settle() {
	if pv.coord.hasTarget {
		pv.commitTurn(pv.coord.target)
		return
	}
	pv.coord = scrollCoordinator{}
	pv.layoutAndRest()
}

// inferDirection lets the first drag past an initial page decide which way
// pages ascend. When the user pulls toward the previous side of a page
// reporting IsInitialPage while inference is armed, the direction flips and
// the adjacent slots swap roles in place: the frames do not move, so the
// gesture continues seamlessly with the page under the drag now playing
// next. Returns the side the crossing counts as after any flip.
func (pv *PagerView) inferDirection(side PageType) PageType {
	if side != PageTypePrevious || !pv.dynamicDirection || pv.directionLocked {
		return side
	}
	initial, ok := pv.slots.page(PageTypeCurrent).(InitialPage)
	if !ok || !initial.IsInitialPage() {
		return side
	}
	pv.directionLocked = true
	pv.slots.swapAdjacent()
	pv.commitDirection(pv.direction.Reversed())
	pv.layout = computeLayout(pv.surface.Bounds().Size, pv.spacing, pv.direction, &pv.slots)
	return PageTypeNext
}
