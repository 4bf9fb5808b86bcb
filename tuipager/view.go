package tuipager

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/okibalabs/pagingview"
)

// View renders the viewport window: the occupied page frames are composed
// into one wide strip and the window [offset, offset+width) is cut out of
// it, so mid-gesture offsets show both pages split across the screen.
func (m Model) View() string {
	w, h := m.surface.width, m.surface.height
	if w <= 0 || h <= 0 {
		return ""
	}
	placed := m.placedPages()
	if len(placed) == 0 {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
			m.Styles.EmptyHint.Render("no pages"))
	}

	strip := renderStrip(placed, w, h, m.Styles)
	off := int(math.Round(m.surface.offset.X))
	if off < 0 {
		off = 0
	}
	lines := make([]string, h)
	for i, row := range strip {
		row = ansi.TruncateLeft(row, off, "")
		row = ansi.Truncate(row, w, "")
		if pad := w - ansi.StringWidth(row); pad > 0 {
			row += strings.Repeat(" ", pad)
		}
		lines[i] = row
	}
	return strings.Join(lines, "\n")
}

type placedPage struct {
	frame pagingview.Rect
	page  pagingview.Page
}

func (m Model) placedPages() []placedPage {
	var placed []placedPage
	for _, t := range []pagingview.PageType{
		pagingview.PageTypePrevious,
		pagingview.PageTypeCurrent,
		pagingview.PageTypeNext,
	} {
		frame, ok := m.pager.PageFrame(t)
		if !ok {
			continue
		}
		placed = append(placed, placedPage{frame: frame, page: m.pageInSlot(t)})
	}
	sort.Slice(placed, func(i, j int) bool {
		return placed[i].frame.Origin.X < placed[j].frame.Origin.X
	})
	return placed
}

func (m Model) pageInSlot(t pagingview.PageType) pagingview.Page {
	switch t {
	case pagingview.PageTypePrevious:
		return m.pager.PreviousPage()
	case pagingview.PageTypeNext:
		return m.pager.NextPage()
	default:
		return m.pager.CurrentPage()
	}
}

// renderStrip lays the placed pages side by side in physical order, filling
// the spacing between frames with the gutter style.
func renderStrip(placed []placedPage, w, h int, styles Styles) []string {
	rows := make([]string, h)
	cursor := 0
	for _, pl := range placed {
		start := int(math.Round(pl.frame.Origin.X))
		if gap := start - cursor; gap > 0 {
			fill := styles.Gutter.Render(strings.Repeat(" ", gap))
			for i := range rows {
				rows[i] += fill
			}
			cursor = start
		}
		block := renderPageBlock(pl.page, w, h)
		for i := range rows {
			rows[i] += block[i]
		}
		cursor += w
	}
	return rows
}

// renderPageBlock normalizes a page's view to exactly w by h cells. Pages
// without the CellPage capability render blank.
func renderPageBlock(page pagingview.Page, w, h int) []string {
	view := ""
	if cell, ok := page.(CellPage); ok {
		view = cell.View(w, h)
	}
	lines := strings.Split(view, "\n")
	block := make([]string, h)
	for i := 0; i < h; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		line = ansi.Truncate(line, w, "")
		if pad := w - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		block[i] = line
	}
	return block
}
