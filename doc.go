// Package pagingview implements an endlessly paging horizontal view engine.
//
// Overview
//
// Exactly three page slots exist at any moment: previous, current and next,
// laid out side by side on a scrollable Surface whose content region is just
// wide enough for the occupied slots plus spacing. When a gesture or a
// programmatic turn settles on an adjacent page, the engine rotates the slot
// roles, recycles the page that fell out of reach into a reuse pool, asks the
// DataSource for the newly needed neighbor, and resets the offset so the
// visible page never appears to move. Data sets of any size page with three
// live instances.
//
// Key concepts
//   - PagerView: orchestrates slots, layout, recycling and turn events.
//   - Surface: the scrollable canvas an adapter implements; the engine sets
//     content size and rest offset, the host feeds drag and animation events
//     back through the Handle methods.
//   - DataSource: one callback, ProvidePage, answering "what sits next to
//     the current page?"; nil means nothing, and absence is never an error.
//   - Capabilities: optional interfaces (ReusablePage, IdentifiablePage,
//     UniquePage, InitialPage, DirectionAwarePage) pages adopt as needed.
//
// The tuipager and glpager packages adapt the engine to Bubble Tea and
// raylib respectively.
package pagingview
