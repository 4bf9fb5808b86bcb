package pagingview

// Surface is the scrollable canvas a PagerView drives. Adapters implement
// it over whatever their toolkit scrolls: terminal cells, pixels, points.
//
// The engine owns the content size and the rest offset. The host owns
// gesture input and animation playback, and reports both back through the
// PagerView Handle methods: SetContentOffset applies instantly, while
// AnimateContentOffset starts an asynchronous slide toward target that the
// host finishes by calling HandleAnimationEnd once the offset arrives.
type Surface interface {
	Bounds() Rect
	ContentSize() Size
	SetContentSize(Size)
	ContentOffset() Point
	SetContentOffset(Point)
	AnimateContentOffset(target Point)
}
