package pagingview

// Page is the content an application places in a slot. The engine treats
// pages as opaque values; adapters define their own rendering contracts, and
// the optional capabilities below are discovered by type assertion.
type Page interface{}

// PageFactory builds a fresh page instance when the reuse pool has nothing
// to hand out.
type PageFactory func() Page

// ReusablePage is reset as the instance retires into the reuse pool, so a
// later dequeue hands out a clean page.
type ReusablePage interface {
	PrepareForReuse()
}

// IdentifiablePage groups instances under a shared reuse identifier. Pages
// without it recycle under DefaultPageIdentifier.
type IdentifiablePage interface {
	PageIdentifier() string
}

// UniquePage carries a stable per-instance identity so occupied slots can
// be searched with PageForUniqueIdentifier.
type UniquePage interface {
	UniqueIdentifier() string
}

// InitialPage marks the origin page of a data set. Dynamic direction
// inference only commits while the current page reports true.
type InitialPage interface {
	IsInitialPage() bool
}

// DirectionAwarePage is told the committed direction when it enters a slot
// and again whenever the direction changes.
type DirectionAwarePage interface {
	SetPageDirection(Direction)
}

// DataSource supplies page content on demand. ProvidePage must return
// synchronously; a nil page means nothing exists in that position and the
// slot stays empty. current is the page occupying the current slot at the
// time of the request, or nil during a reload.
type DataSource interface {
	ProvidePage(pager *PagerView, pageType PageType, current Page) Page
}
