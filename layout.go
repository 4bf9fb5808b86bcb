package pagingview

// DefaultPageSpacing is the gap between adjacent page frames in content
// units.
const DefaultPageSpacing = 40.0

// layoutMetrics is the geometry of one slot arrangement: where each
// occupied slot sits, how far the content runs, and where the offset rests
// so the current page fills the viewport.
type layoutMetrics struct {
	contentSize   Size
	frames        [slotCount]Rect
	present       [slotCount]bool
	currentOrigin Point
}

// computeLayout arranges the occupied slots side by side in physical order
// for dir, one viewport-sized frame per slot, spacing apart. Identical
// inputs always yield identical metrics.
func computeLayout(bounds Size, spacing float64, dir Direction, slots *pageSlots) layoutMetrics {
	var m layoutMetrics
	x := 0.0
	placed := 0
	for _, t := range physicalOrder(dir) {
		if !slots.occupied(t) {
			continue
		}
		if placed > 0 {
			x += spacing
		}
		i := slotFor(t)
		m.frames[i] = Rect{Origin: Point{X: x}, Size: bounds}
		m.present[i] = true
		x += bounds.Width
		placed++
	}
	if placed == 0 {
		return m
	}
	m.contentSize = Size{Width: x, Height: bounds.Height}
	m.currentOrigin = m.frames[slotCurrent].Origin
	return m
}

// physicalOrder lists page roles left to right for dir.
func physicalOrder(dir Direction) [slotCount]PageType {
	if dir == DirectionRightToLeft {
		return [slotCount]PageType{PageTypeNext, PageTypeCurrent, PageTypePrevious}
	}
	return [slotCount]PageType{PageTypePrevious, PageTypeCurrent, PageTypeNext}
}

// thresholdSide classifies offset x against the midpoints between the
// current frame and its occupied neighbors. ok is false while x remains on
// the current page's side of both midpoints.
func (m layoutMetrics) thresholdSide(x float64) (PageType, bool) {
	if !m.present[slotCurrent] {
		return PageTypeCurrent, false
	}
	cur := m.currentOrigin.X
	for _, t := range []PageType{PageTypeNext, PageTypePrevious} {
		i := slotFor(t)
		if !m.present[i] {
			continue
		}
		origin := m.frames[i].Origin.X
		mid := (cur + origin) / 2
		if origin < cur && x < mid {
			return t, true
		}
		if origin > cur && x > mid {
			return t, true
		}
	}
	return PageTypeCurrent, false
}

// clampOffset keeps x inside the scrollable range for content width cw and
// viewport width vw.
func clampOffset(x, cw, vw float64) float64 {
	max := cw - vw
	if max < 0 {
		max = 0
	}
	if x < 0 {
		return 0
	}
	if x > max {
		return max
	}
	return x
}
