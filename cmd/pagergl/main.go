// Command pagergl is a raylib demo of the paging engine: an endless strip
// of numbered cards with drag, wheel, and keyboard turns.
//
//	pagergl -cards 0 -dynamic
//
// Drag or scroll to page. Left and right arrows turn, r reloads, d
// reverses the scroll direction. With -dynamic the direction is inferred
// from the first drag away from card 0.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/okibalabs/pagingview"
	"github.com/okibalabs/pagingview/glpager"
)

const cardKind = "card"

var cardPalette = []rl.Color{
	rl.NewColor(137, 180, 250, 255),
	rl.NewColor(166, 227, 161, 255),
	rl.NewColor(250, 179, 135, 255),
	rl.NewColor(243, 139, 168, 255),
	rl.NewColor(203, 166, 247, 255),
	rl.NewColor(148, 226, 213, 255),
}

// cardPage is a solid-color card labeled with its position. It opts into
// every engine capability so the demo exercises reuse, identity lookup,
// and direction inference.
type cardPage struct {
	index     int
	direction pagingview.Direction
	reuses    int
}

func (c *cardPage) PageIdentifier() string   { return cardKind }
func (c *cardPage) UniqueIdentifier() string { return fmt.Sprintf("card-%d", c.index) }
func (c *cardPage) IsInitialPage() bool      { return c.index == 0 }

func (c *cardPage) PrepareForReuse() {
	c.index = 0
	c.reuses++
}

func (c *cardPage) SetPageDirection(d pagingview.Direction) { c.direction = d }

func (c *cardPage) Draw(bounds pagingview.Rect) {
	col := cardPalette[absInt(c.index)%len(cardPalette)]
	rl.DrawRectangle(
		int32(bounds.Origin.X), int32(bounds.Origin.Y),
		int32(bounds.Size.Width), int32(bounds.Size.Height), col,
	)

	label := strconv.Itoa(c.index)
	const size = 96
	w := rl.MeasureText(label, size)
	rl.DrawText(label,
		int32(bounds.Origin.X+bounds.Size.Width/2)-w/2,
		int32(bounds.Origin.Y+bounds.Size.Height/2)-size/2,
		size, rl.RayWhite,
	)

	if c.reuses > 0 {
		badge := fmt.Sprintf("recycled x%d", c.reuses)
		rl.DrawText(badge, int32(bounds.Origin.X)+12, int32(bounds.MaxY())-28, 16, rl.Black)
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// cardSource serves the integer line, optionally bounded to [0, count).
// Pages come out of the reuse pool so three instances cover any walk.
type cardSource struct {
	count int
}

func (s *cardSource) ProvidePage(pager *pagingview.PagerView, t pagingview.PageType, current pagingview.Page) pagingview.Page {
	index := 0
	if card, ok := current.(*cardPage); ok {
		switch t {
		case pagingview.PageTypeNext:
			index = card.index + 1
		case pagingview.PageTypePrevious:
			index = card.index - 1
		default:
			index = card.index
		}
	}
	if s.count > 0 && (index < 0 || index >= s.count) {
		return nil
	}
	card, _ := pager.DequeueReusablePageForIdentifier(cardKind).(*cardPage)
	if card == nil {
		return nil
	}
	card.index = index
	return card
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	width := flag.Int("width", 960, "window width in pixels")
	height := flag.Int("height", 540, "window height in pixels")
	cards := flag.Int("cards", 0, "number of cards, 0 for an endless strip")
	spacing := flag.Float64("spacing", 40, "gap between cards in pixels")
	dynamic := flag.Bool("dynamic", false, "infer scroll direction from the first drag")
	flag.Parse()

	rl.InitWindow(int32(*width), int32(*height), "pagingview demo")
	defer rl.CloseWindow()
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(60)

	host := glpager.NewHost(*width, *height, &cardSource{count: *cards})

	pager := host.Pager()
	pager.Register(cardKind, func() pagingview.Page { return &cardPage{} })
	pager.SetPageSpacing(*spacing)
	pager.SetDynamicDirectionEnabled(*dynamic)
	pager.DidTurnToPage = func(t pagingview.PageType) {
		if card, ok := pager.CurrentPage().(*cardPage); ok {
			log.Printf("turned %s, now on card %d", t, card.index)
		}
	}
	pager.DidChangeDirection = func(d pagingview.Direction) {
		log.Printf("scroll direction now %s", d)
	}
	pager.Reload()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyR) {
			pager.Reload()
		}
		if rl.IsKeyPressed(rl.KeyD) {
			pager.SetScrollDirection(pager.ScrollDirection().Reversed())
		}
		host.HandleFrame()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		host.Draw()
		drawHUD(pager)
		rl.EndDrawing()
	}
}

func drawHUD(pager *pagingview.PagerView) {
	line := "card -"
	if card, ok := pager.CurrentPage().(*cardPage); ok {
		line = "card " + strconv.Itoa(card.index)
	}
	line += "  |  " + pager.ScrollDirection().String()
	if pager.DynamicDirectionEnabled() {
		line += "  |  dynamic"
	}
	rl.DrawText(line, 12, 12, 20, rl.RayWhite)
	rl.DrawText("drag / wheel / arrows to page, r reload, d reverse", 12, 38, 16, rl.Gray)
}
