package pagingview

// PagerView coordinates the three page slots over a scrollable surface: it
// lays the slots out, recycles pages that fall out of reach, asks the data
// source for new neighbors, and keeps the content offset parked on the
// current page so paging feels endless.
//
// All methods must be called from the host's event loop goroutine; the
// engine performs no locking of its own. Mutating calls issued from inside
// data source or hook callbacks are ignored.
type PagerView struct {
	// DataSource supplies pages. It may be swapped at runtime; call Reload
	// afterwards so every slot is re-requested.
	DataSource DataSource

	// Optional event hooks. Nil hooks are skipped. WillTurnToPage fires
	// when the offset crosses the halfway point toward an adjacent page,
	// DidTurnToPage once the move commits, DidChangeDirection whenever the
	// committed direction changes, whether set explicitly or inferred.
	WillTurnToPage     func(PageType)
	DidTurnToPage      func(PageType)
	DidChangeDirection func(Direction)

	surface  Surface
	registry *pageRegistry
	pool     *reusePool
	slots    pageSlots
	layout   layoutMetrics
	coord    scrollCoordinator

	spacing   float64
	direction Direction

	dynamicDirection bool
	directionLocked  bool

	mutating bool
}

// New wires a PagerView to the surface it drives. The surface's bounds are
// re-read on every layout pass; hosts call HandleBoundsChange when they
// change.
func New(surface Surface) *PagerView {
	return &PagerView{
		surface:   surface,
		registry:  newPageRegistry(),
		pool:      newReusePool(),
		spacing:   DefaultPageSpacing,
		direction: DirectionLeftToRight,
	}
}

// Surface returns the canvas this view drives.
func (pv *PagerView) Surface() Surface { return pv.surface }

// Register files a page factory under a reuse identifier. Use
// DefaultPageIdentifier (or an empty string) when the application only has
// one kind of page. Registering an identifier twice replaces the earlier
// factory.
func (pv *PagerView) Register(identifier string, factory PageFactory) {
	pv.registry.register(identifier, factory)
}

// DequeueReusablePage returns a recycled or freshly built page filed under
// DefaultPageIdentifier, or nil when nothing is pooled and no factory is
// registered.
func (pv *PagerView) DequeueReusablePage() Page {
	return pv.DequeueReusablePageForIdentifier(DefaultPageIdentifier)
}

// DequeueReusablePageForIdentifier returns a recycled page for id, building
// a fresh one through the registered factory when the pool bucket is empty.
// Pooled pages were reset through PrepareForReuse as they retired. Returns
// nil when nothing is pooled and no factory is registered.
func (pv *PagerView) DequeueReusablePageForIdentifier(id string) Page {
	if id == "" {
		id = DefaultPageIdentifier
	}
	if page := pv.pool.dequeue(id); page != nil {
		return page
	}
	page, err := pv.registry.instantiate(id)
	if err != nil {
		return nil
	}
	return page
}

// Reload discards every slot into the reuse pool and rebuilds the view from
// the data source. Without a data source, or when it returns no current
// page, the view empties silently. Reload also re-arms dynamic direction
// inference for the new cycle.
func (pv *PagerView) Reload() {
	if !pv.beginMutation() {
		return
	}
	defer pv.endMutation()

	for _, page := range pv.slots.evictAll() {
		pv.recycle(page)
	}
	pv.coord = scrollCoordinator{}
	pv.directionLocked = false

	if page := pv.providePage(PageTypeCurrent); page != nil {
		pv.assign(PageTypeCurrent, page)
		pv.fetchAdjacent()
	}
	pv.layoutAndRest()
}

// ReloadAdjacentPages discards the previous and next slots into the pool
// and re-requests both around the retained current page.
func (pv *PagerView) ReloadAdjacentPages() {
	if !pv.beginMutation() {
		return
	}
	defer pv.endMutation()

	pv.assign(PageTypePrevious, nil)
	pv.assign(PageTypeNext, nil)
	pv.fetchAdjacent()
	pv.layoutAndRest()
}

// FetchAdjacentPages asks the data source to fill whichever adjacent slots
// are empty. A nil reply leaves the slot empty; slots already occupied are
// left alone, so calling this repeatedly is cheap.
func (pv *PagerView) FetchAdjacentPages() {
	if !pv.beginMutation() {
		return
	}
	defer pv.endMutation()

	if pv.fetchAdjacent() {
		pv.layoutAndRest()
	}
}

// CurrentPage returns the page in the current slot, or nil.
func (pv *PagerView) CurrentPage() Page { return pv.slots.page(PageTypeCurrent) }

// NextPage returns the page in the next slot, or nil.
func (pv *PagerView) NextPage() Page { return pv.slots.page(PageTypeNext) }

// PreviousPage returns the page in the previous slot, or nil.
func (pv *PagerView) PreviousPage() Page { return pv.slots.page(PageTypePrevious) }

// VisiblePages returns the pages occupying slots right now. Order is not
// significant.
func (pv *PagerView) VisiblePages() []Page { return pv.slots.visible() }

// PageForUniqueIdentifier finds the slotted page whose UniqueIdentifier
// matches id. Pooled pages are not searched; nil when no occupied slot
// matches.
func (pv *PagerView) PageForUniqueIdentifier(id string) Page {
	for _, page := range pv.slots.visible() {
		if u, ok := page.(UniquePage); ok && u.UniqueIdentifier() == id {
			return page
		}
	}
	return nil
}

// PageFrame returns the frame the slot for t occupies, in content units.
// ok is false while the slot is empty.
func (pv *PagerView) PageFrame(t PageType) (Rect, bool) {
	i := slotFor(t)
	if !pv.layout.present[i] {
		return Rect{}, false
	}
	return pv.layout.frames[i], true
}

// PageSpacing returns the gap between adjacent page frames.
func (pv *PagerView) PageSpacing() float64 { return pv.spacing }

// SetPageSpacing changes the gap and re-lays the slots out immediately.
// Negative values are treated as zero.
func (pv *PagerView) SetPageSpacing(spacing float64) {
	if spacing < 0 {
		spacing = 0
	}
	if spacing == pv.spacing {
		return
	}
	if !pv.beginMutation() {
		return
	}
	defer pv.endMutation()
	pv.spacing = spacing
	pv.layoutAndRest()
}

// ScrollDirection returns the committed direction.
func (pv *PagerView) ScrollDirection() Direction { return pv.direction }

// SetScrollDirection commits dir, mirrors the layout and notifies
// direction-aware pages and the DidChangeDirection hook. A no-op when dir
// already matches.
func (pv *PagerView) SetScrollDirection(dir Direction) {
	if dir == pv.direction {
		return
	}
	if !pv.beginMutation() {
		return
	}
	defer pv.endMutation()
	pv.commitDirection(dir)
	pv.layoutAndRest()
}

// DynamicDirectionEnabled reports whether direction inference is armed.
func (pv *PagerView) DynamicDirectionEnabled() bool { return pv.dynamicDirection }

// SetDynamicDirectionEnabled arms direction inference: while armed, the
// first drag past an initial page decides which way pages ascend. Inference
// re-arms on every Reload.
func (pv *PagerView) SetDynamicDirectionEnabled(enabled bool) {
	pv.dynamicDirection = enabled
}

// HandleBoundsChange re-derives the layout after the surface's bounds
// change, e.g. a terminal or window resize. Any in-flight gesture or
// animation is abandoned.
func (pv *PagerView) HandleBoundsChange() {
	if !pv.beginMutation() {
		return
	}
	defer pv.endMutation()
	pv.coord = scrollCoordinator{}
	pv.layoutAndRest()
}

// beginMutation guards against reentrant mutation from data source or hook
// callbacks: calls made while another mutation is running report false and
// are dropped by their callers.
func (pv *PagerView) beginMutation() bool {
	if pv.mutating {
		return false
	}
	pv.mutating = true
	return true
}

func (pv *PagerView) endMutation() { pv.mutating = false }

// providePage asks the data source for the page of type t. Nil when there
// is no data source or nothing exists in that position.
func (pv *PagerView) providePage(t PageType) Page {
	if pv.DataSource == nil {
		return nil
	}
	return pv.DataSource.ProvidePage(pv, t, pv.slots.page(PageTypeCurrent))
}

// assign places page into the slot for t, evicting any prior occupant into
// the reuse pool first, and briefs the newcomer on the committed direction.
// An instance already occupying another slot is refused so no page ever
// holds two slots; one sitting in the pool is pulled out of it.
func (pv *PagerView) assign(t PageType, page Page) {
	if prior := pv.slots.page(t); prior != nil {
		if prior == page {
			return
		}
		pv.slots.set(t, nil)
		pv.recycle(prior)
	}
	if page == nil {
		return
	}
	for _, other := range pv.slots.visible() {
		if other == page {
			return
		}
	}
	pv.pool.remove(page)
	pv.slots.set(t, page)
	if aware, ok := page.(DirectionAwarePage); ok {
		aware.SetPageDirection(pv.direction)
	}
}

func (pv *PagerView) recycle(page Page) { pv.pool.enqueue(page) }

// fetchAdjacent fills empty side slots from the data source. Reports
// whether any slot changed. Nothing is fetched while the current slot is
// empty.
func (pv *PagerView) fetchAdjacent() bool {
	if !pv.slots.occupied(PageTypeCurrent) {
		return false
	}
	changed := false
	for _, t := range []PageType{PageTypeNext, PageTypePrevious} {
		if pv.slots.occupied(t) {
			continue
		}
		if page := pv.providePage(t); page != nil {
			pv.assign(t, page)
			changed = true
		}
	}
	return changed
}

// layoutAndRest recomputes slot geometry and parks the offset back on the
// current page. Every non-interactive geometry change funnels through here
// so the visible page never appears to move.
func (pv *PagerView) layoutAndRest() {
	pv.layout = computeLayout(pv.surface.Bounds().Size, pv.spacing, pv.direction, &pv.slots)
	pv.surface.SetContentSize(pv.layout.contentSize)
	pv.surface.SetContentOffset(pv.restOffset())
}

// restOffset is the current slot's origin, clamped to the scrollable range.
func (pv *PagerView) restOffset() Point {
	off := pv.layout.currentOrigin
	off.X = clampOffset(off.X, pv.layout.contentSize.Width, pv.surface.Bounds().Size.Width)
	return off
}

// commitDirection records dir and tells every slotted page and the
// DidChangeDirection hook about it.
func (pv *PagerView) commitDirection(dir Direction) {
	pv.direction = dir
	for _, page := range pv.slots.visible() {
		if aware, ok := page.(DirectionAwarePage); ok {
			aware.SetPageDirection(dir)
		}
	}
	if pv.DidChangeDirection != nil {
		pv.DidChangeDirection(dir)
	}
}
