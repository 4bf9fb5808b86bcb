package glpager

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/okibalabs/pagingview"
)

var (
	gutterColor = rl.NewColor(24, 24, 37, 255)
	hintColor   = rl.NewColor(166, 173, 200, 255)
)

const hintFontSize = 20

// Draw paints the visible pages. Call between BeginDrawing and
// EndDrawing; the host clears the gutter itself.
func (h *Host) Draw() {
	s := h.surface
	rl.DrawRectangle(0, 0, int32(s.width), int32(s.height), gutterColor)
	if h.pager.CurrentPage() == nil {
		h.drawHint("no pages")
		return
	}
	for _, t := range []pagingview.PageType{
		pagingview.PageTypePrevious,
		pagingview.PageTypeCurrent,
		pagingview.PageTypeNext,
	} {
		frame, ok := h.pager.PageFrame(t)
		if !ok {
			continue
		}
		canvas, ok := h.pageInSlot(t).(CanvasPage)
		if !ok {
			continue
		}
		visible := translateFrame(frame, s.offset)
		if !frameOnScreen(visible, float64(s.width)) {
			continue
		}
		rl.BeginScissorMode(
			int32(visible.Origin.X),
			int32(visible.Origin.Y),
			int32(visible.Size.Width),
			int32(visible.Size.Height),
		)
		canvas.Draw(visible)
		rl.EndScissorMode()
	}
}

func (h *Host) pageInSlot(t pagingview.PageType) pagingview.Page {
	switch t {
	case pagingview.PageTypePrevious:
		return h.pager.PreviousPage()
	case pagingview.PageTypeNext:
		return h.pager.NextPage()
	default:
		return h.pager.CurrentPage()
	}
}

func (h *Host) drawHint(text string) {
	s := h.surface
	w := rl.MeasureText(text, hintFontSize)
	rl.DrawText(text, (int32(s.width)-w)/2, (int32(s.height)-hintFontSize)/2, hintFontSize, hintColor)
}

// translateFrame shifts a content-space frame into window space.
func translateFrame(frame pagingview.Rect, offset pagingview.Point) pagingview.Rect {
	frame.Origin.X -= offset.X
	frame.Origin.Y -= offset.Y
	return frame
}

// frameOnScreen reports whether any part of a window-space frame lies
// inside a viewport of the given width.
func frameOnScreen(frame pagingview.Rect, width float64) bool {
	return frame.MaxX() > 0 && frame.MinX() < width
}
