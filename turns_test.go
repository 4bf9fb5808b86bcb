package pagingview

import (
	"fmt"
	"testing"
)

// recordHooks wires counting hooks onto pv and returns the event log in
// firing order.
func recordHooks(pv *PagerView) *[]string {
	events := &[]string{}
	pv.WillTurnToPage = func(t PageType) { *events = append(*events, "will:"+t.String()) }
	pv.DidTurnToPage = func(t PageType) { *events = append(*events, "did:"+t.String()) }
	return events
}

func TestTurnToNextPageRotatesSlots(t *testing.T) {
	pv, surface, _ := newTestPager()
	pv.Reload()
	events := recordHooks(pv)

	pv.TurnToNextPage(false)

	if got := uidOf(pv.CurrentPage()); got != "B" {
		t.Fatalf("current = %q, want B", got)
	}
	if got := uidOf(pv.PreviousPage()); got != "A" {
		t.Fatalf("previous = %q, want A", got)
	}
	if got := uidOf(pv.NextPage()); got != "C" {
		t.Fatalf("next = %q, want C", got)
	}
	if pv.pool.count() != 1 {
		t.Fatalf("pool count = %d, want the evicted page", pv.pool.count())
	}
	if surface.offset.X != 100+DefaultPageSpacing {
		t.Fatalf("offset should rest on the new current page, got %v", surface.offset.X)
	}
	want := []string{"will:next", "did:next"}
	if len(*events) != 2 || (*events)[0] != want[0] || (*events)[1] != want[1] {
		t.Fatalf("events = %v, want %v", *events, want)
	}
}

func TestTurnToPreviousPageRotatesSlots(t *testing.T) {
	pv, surface, _ := newTestPager()
	pv.Reload()

	pv.TurnToPreviousPage(false)

	if got := uidOf(pv.CurrentPage()); got != "A2" {
		t.Fatalf("current = %q, want A2", got)
	}
	if got := uidOf(pv.NextPage()); got != "A" {
		t.Fatalf("next = %q, want A", got)
	}
	if pv.PreviousPage() != nil {
		t.Fatalf("no page exists before A2")
	}
	// With the start of the run reached, the current frame sits at zero.
	if surface.offset.X != 0 {
		t.Fatalf("offset = %v, want 0", surface.offset.X)
	}
}

func TestTurnRoundTripRestoresSameInstances(t *testing.T) {
	pv, _, _ := newTestPager()
	pv.Reload()
	current := pv.CurrentPage()
	previous := pv.PreviousPage()

	pv.TurnToNextPage(false)
	pv.TurnToPreviousPage(false)

	if pv.CurrentPage() != current {
		t.Fatalf("forward then backward should land on the same instance")
	}
	if pv.PreviousPage() != previous {
		t.Fatalf("the previous page should come back out of the pool, not a copy")
	}
	if pv.pool.count() != 1 {
		t.Fatalf("pool count = %d, want 1", pv.pool.count())
	}
}

func TestTurnIntoEmptySlotIsIgnored(t *testing.T) {
	surface := newFakeSurface(100, 50)
	src := newListSource("only")
	pv := New(surface)
	pv.DataSource = src
	pv.Reload()
	events := recordHooks(pv)

	pv.TurnToNextPage(false)
	pv.TurnToPreviousPage(false)

	if got := uidOf(pv.CurrentPage()); got != "only" {
		t.Fatalf("current = %q, want only", got)
	}
	if len(*events) != 0 {
		t.Fatalf("no hooks should fire, got %v", *events)
	}
	if surface.offset.X != 0 {
		t.Fatalf("offset = %v, want 0", surface.offset.X)
	}
}

func TestAnimatedTurnCommitsOnAnimationEnd(t *testing.T) {
	pv, surface, _ := newTestPager()
	pv.Reload()
	events := recordHooks(pv)

	pv.TurnToNextPage(true)

	if got := uidOf(pv.CurrentPage()); got != "A" {
		t.Fatalf("slots must not rotate before the animation lands, current = %q", got)
	}
	if surface.animTarget.X != 280 {
		t.Fatalf("animation target = %v, want the next frame origin 280", surface.animTarget.X)
	}

	surface.finishAnimation(pv)

	if got := uidOf(pv.CurrentPage()); got != "B" {
		t.Fatalf("current = %q after landing, want B", got)
	}
	if surface.offset.X != 140 {
		t.Fatalf("offset should re-rest on the current frame, got %v", surface.offset.X)
	}
	want := []string{"will:next", "did:next"}
	if len(*events) != 2 || (*events)[0] != want[0] || (*events)[1] != want[1] {
		t.Fatalf("events = %v, want %v", *events, want)
	}
}

func TestAnimatedTurnAnnouncesOnceAcrossOffsetReports(t *testing.T) {
	pv, surface, _ := newTestPager()
	pv.Reload()
	events := recordHooks(pv)

	pv.TurnToNextPage(true)
	surface.offset.X = 180
	pv.HandleOffsetChange()
	surface.offset.X = 250
	pv.HandleOffsetChange()
	surface.offset.X = 270
	pv.HandleOffsetChange()
	surface.finishAnimation(pv)

	want := []string{"will:next", "did:next"}
	if len(*events) != 2 || (*events)[0] != want[0] || (*events)[1] != want[1] {
		t.Fatalf("events = %v, want %v", *events, want)
	}
}

func TestTurnWhileAnimatingIsIgnored(t *testing.T) {
	pv, surface, _ := newTestPager()
	pv.Reload()

	pv.TurnToNextPage(true)
	pv.TurnToNextPage(true)
	pv.TurnToPreviousPage(false)

	if surface.animCalls != 1 {
		t.Fatalf("animation calls = %d, want 1", surface.animCalls)
	}
	surface.finishAnimation(pv)
	if got := uidOf(pv.CurrentPage()); got != "B" {
		t.Fatalf("exactly one turn should land, current = %q", got)
	}
}

func TestLeftAndRightTurnsFollowDirection(t *testing.T) {
	pv, _, src := newTestPager()
	pv.Reload()

	pv.TurnToRightPage(false)
	if got := uidOf(pv.CurrentPage()); got != "B" {
		t.Fatalf("right under left-to-right should be next, current = %q", got)
	}
	pv.TurnToLeftPage(false)
	if got := uidOf(pv.CurrentPage()); got != "A" {
		t.Fatalf("left under left-to-right should be previous, current = %q", got)
	}

	src.start = 1
	pv.SetScrollDirection(DirectionRightToLeft)
	pv.Reload()
	pv.TurnToLeftPage(false)
	if got := uidOf(pv.CurrentPage()); got != "B" {
		t.Fatalf("left under right-to-left should be next, current = %q", got)
	}
	pv.TurnToRightPage(false)
	if got := uidOf(pv.CurrentPage()); got != "A" {
		t.Fatalf("right under right-to-left should be previous, current = %q", got)
	}
}

func TestSkipForwardFetchesReplacementBeforeTurning(t *testing.T) {
	pv, _, src := newTestPager()
	pv.Reload()
	oldNext := pv.NextPage().(*testPage)
	replacement := &testPage{uid: "B2"}
	src.pages[2] = replacement

	pv.SkipForwardToNewPage(false)

	if got := uidOf(pv.CurrentPage()); got != "B2" {
		t.Fatalf("current = %q, want the replacement B2", got)
	}
	if oldNext.reused == 0 {
		t.Fatalf("the discarded next page should have retired into the pool")
	}
}

func TestSkipBackwardFetchesReplacementBeforeTurning(t *testing.T) {
	pv, _, src := newTestPager()
	pv.Reload()
	replacement := &testPage{uid: "A2new"}
	src.pages[0] = replacement

	pv.SkipBackwardToNewPage(false)

	if got := uidOf(pv.CurrentPage()); got != "A2new" {
		t.Fatalf("current = %q, want the replacement A2new", got)
	}
}

func TestSkipWithoutReplacementStaysPut(t *testing.T) {
	surface := newFakeSurface(100, 50)
	src := newListSource("A2", "A")
	src.start = 1
	pv := New(surface)
	pv.DataSource = src
	pv.Reload()
	events := recordHooks(pv)

	pv.SkipForwardToNewPage(false)

	if got := uidOf(pv.CurrentPage()); got != "A" {
		t.Fatalf("current = %q, want A", got)
	}
	if len(*events) != 0 {
		t.Fatalf("no hooks should fire, got %v", *events)
	}
	if surface.offset.X != 140 {
		t.Fatalf("offset = %v, want 140", surface.offset.X)
	}
}

func TestSkipAnimatedCommitsOnAnimationEnd(t *testing.T) {
	pv, surface, src := newTestPager()
	pv.Reload()
	src.pages[2] = &testPage{uid: "B2"}

	pv.SkipForwardToNewPage(true)
	if got := uidOf(pv.CurrentPage()); got != "A" {
		t.Fatalf("skip must not commit before the animation lands")
	}
	if got := uidOf(pv.NextPage()); got != "B2" {
		t.Fatalf("next = %q, want the staged replacement", got)
	}
	surface.finishAnimation(pv)
	if got := uidOf(pv.CurrentPage()); got != "B2" {
		t.Fatalf("current = %q after landing, want B2", got)
	}
}

func TestJumpUsesProvidedPageInsteadOfDataSource(t *testing.T) {
	pv, _, _ := newTestPager()
	pv.Reload()
	original := pv.CurrentPage()
	custom := &testPage{uid: "custom"}
	var sawCurrent Page

	pv.JumpToNextPage(false, func(_ *PagerView, current Page) Page {
		sawCurrent = current
		return custom
	})

	if sawCurrent != original {
		t.Fatalf("the provider should see the pre-jump current page")
	}
	if pv.CurrentPage() != Page(custom) {
		t.Fatalf("current should be the provided page")
	}
	if pv.PreviousPage() != original {
		t.Fatalf("the old current page should slide into previous")
	}
	if pv.NextPage() != nil {
		t.Fatalf("the list knows nothing after a custom page")
	}
}

func TestJumpBackwardUsesProvidedPage(t *testing.T) {
	pv, _, _ := newTestPager()
	pv.Reload()
	original := pv.CurrentPage()
	custom := &testPage{uid: "custom"}

	pv.JumpToPreviousPage(false, func(_ *PagerView, _ Page) Page { return custom })

	if pv.CurrentPage() != Page(custom) {
		t.Fatalf("current should be the provided page")
	}
	if pv.NextPage() != original {
		t.Fatalf("the old current page should slide into next")
	}
}

func TestForwardWalkRecyclesThreeInstances(t *testing.T) {
	surface := newFakeSurface(100, 50)
	pv := New(surface)
	built := 0
	pv.Register("card", func() Page {
		built++
		return &testPage{id: "card"}
	})
	pv.DataSource = funcSource(func(inner *PagerView, pt PageType, current Page) Page {
		target := 0
		if current != nil {
			fmt.Sscanf(uidOf(current), "card-%d", &target)
		}
		switch pt {
		case PageTypeNext:
			target++
		case PageTypePrevious:
			target--
		}
		if target < 0 {
			return nil
		}
		page := inner.DequeueReusablePageForIdentifier("card").(*testPage)
		page.uid = fmt.Sprintf("card-%d", target)
		return page
	})

	pv.Reload()
	for i := 0; i < 10; i++ {
		pv.TurnToNextPage(false)
	}

	if built != 3 {
		t.Fatalf("a long forward walk should cycle three instances, built %d", built)
	}
	if got := uidOf(pv.CurrentPage()); got != "card-10" {
		t.Fatalf("current = %q, want card-10", got)
	}
}
