package pagingview

// TurnToNextPage advances one page toward next. Animated turns slide the
// surface and commit when the host reports HandleAnimationEnd; non-animated
// turns commit before returning. A no-op while the next slot is empty or a
// gesture or animation is in flight.
func (pv *PagerView) TurnToNextPage(animated bool) { pv.turnTo(PageTypeNext, animated) }

// TurnToPreviousPage mirrors TurnToNextPage toward previous.
func (pv *PagerView) TurnToPreviousPage(animated bool) { pv.turnTo(PageTypePrevious, animated) }

// TurnToLeftPage turns toward whichever role occupies the physical left
// under the committed direction.
func (pv *PagerView) TurnToLeftPage(animated bool) {
	pv.turnTo(leftPageType(pv.direction), animated)
}

// TurnToRightPage mirrors TurnToLeftPage.
func (pv *PagerView) TurnToRightPage(animated bool) {
	pv.turnTo(rightPageType(pv.direction), animated)
}

// SkipForwardToNewPage discards the stale next page (the caller has already
// repositioned its data source), fetches its replacement and turns to it.
func (pv *PagerView) SkipForwardToNewPage(animated bool) {
	pv.skipTo(PageTypeNext, animated, nil)
}

// SkipBackwardToNewPage mirrors SkipForwardToNewPage toward previous.
func (pv *PagerView) SkipBackwardToNewPage(animated bool) {
	pv.skipTo(PageTypePrevious, animated, nil)
}

// JumpToNextPage is SkipForwardToNewPage with the replacement page supplied
// by provide instead of the data source.
func (pv *PagerView) JumpToNextPage(animated bool, provide func(pager *PagerView, current Page) Page) {
	pv.skipTo(PageTypeNext, animated, provide)
}

// JumpToPreviousPage mirrors JumpToNextPage.
func (pv *PagerView) JumpToPreviousPage(animated bool, provide func(pager *PagerView, current Page) Page) {
	pv.skipTo(PageTypePrevious, animated, provide)
}

func (pv *PagerView) turnTo(t PageType, animated bool) {
	if t == PageTypeCurrent || pv.coord.state != stateIdle {
		return
	}
	if !pv.beginMutation() {
		return
	}
	defer pv.endMutation()
	pv.startTurn(t, animated)
}

func (pv *PagerView) skipTo(t PageType, animated bool, provide func(*PagerView, Page) Page) {
	if pv.coord.state != stateIdle {
		return
	}
	if !pv.beginMutation() {
		return
	}
	defer pv.endMutation()

	// Discard the stale page before refetching so the data source can
	// dequeue the instance that just retired.
	pv.assign(t, nil)
	var page Page
	if provide != nil {
		page = provide(pv, pv.slots.page(PageTypeCurrent))
	} else {
		page = pv.providePage(t)
	}
	if page == nil {
		pv.layoutAndRest()
		return
	}
	pv.assign(t, page)
	pv.layoutAndRest()
	pv.startTurn(t, animated)
}

// startTurn assumes the mutation guard is held. Empty target slots make it
// a no-op.
func (pv *PagerView) startTurn(t PageType, animated bool) {
	if !pv.slots.occupied(t) {
		return
	}
	if !animated {
		pv.commitTurn(t)
		return
	}
	pv.coord.state = stateAnimating
	pv.coord.target = t
	pv.coord.hasTarget = true
	pv.surface.AnimateContentOffset(pv.layout.frames[slotFor(t)].Origin)
}

// commitTurn rotates the slots for a completed move onto t, recycles the
// page that fell out of reach, refills the emptied slot and rests the
// offset on the new current page.
func (pv *PagerView) commitTurn(t PageType) {
	pv.notifyWillTurn(t)
	switch t {
	case PageTypeNext:
		pv.recycle(pv.slots.promote())
	case PageTypePrevious:
		pv.recycle(pv.slots.demote())
	default:
		return
	}
	if pv.dynamicDirection {
		pv.directionLocked = true
	}
	pv.coord = scrollCoordinator{}
	pv.fetchAdjacent()
	pv.layoutAndRest()
	if pv.DidTurnToPage != nil {
		pv.DidTurnToPage(t)
	}
}

// notifyWillTurn fires the WillTurnToPage hook once per announced side;
// repeated calls for the side already announced are dropped.
func (pv *PagerView) notifyWillTurn(t PageType) {
	if pv.coord.hasNoted && pv.coord.noted == t {
		return
	}
	pv.coord.noted = t
	pv.coord.hasNoted = true
	if pv.WillTurnToPage != nil {
		pv.WillTurnToPage(t)
	}
}
