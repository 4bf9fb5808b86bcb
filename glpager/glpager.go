// Package glpager hosts a pagingview engine in a raylib window.
//
// The host owns a pixel-unit surface and bridges raylib input to the
// engine once per frame: a left-button drag maps one to one onto the
// content offset, the wheel scrubs in fixed steps, and arrow keys start
// animated turns. Turn animations run on a critically damped spring
// stepped every frame until the offset lands on the engine's target.
//
// Input handling is split from device polling so the gesture logic can
// run headless: HandleFrame polls raylib and feeds the result to
// process, which touches no raylib state.
package glpager

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/okibalabs/pagingview"
)

const (
	hostFPS         = 60
	springFrequency = 7.0
	springDamping   = 1.0

	// wheelStepPx is the offset travel per wheel notch.
	wheelStepPx = 120.0

	// wheelQuietFrames is how many wheel-free frames end a wheel scrub.
	wheelQuietFrames = 9
)

// CanvasPage is drawn with raylib calls inside the frame the host
// computed for it. The bounds are in window pixels, already shifted by
// the scroll offset, and the host has a scissor region active so the
// page may paint edge to edge without bleeding into its neighbors.
type CanvasPage interface {
	Draw(bounds pagingview.Rect)
}

// Host drives a PagerView from a raylib main loop. Call HandleFrame
// once per iteration before drawing and Draw between BeginDrawing and
// EndDrawing.
type Host struct {
	pager   *pagingview.PagerView
	surface *pixelSurface

	pointerDrag bool
	pressX      float64
	dragOrigin  float64

	wheelScrub bool
	wheelQuiet int
}

// NewHost builds a host for a window of the given pixel size.
func NewHost(width, height int, source pagingview.DataSource) *Host {
	h := &Host{surface: newPixelSurface(width, height, hostFPS)}
	h.pager = pagingview.New(h.surface)
	h.pager.SetDataSource(source)
	return h
}

// Pager exposes the engine for registration, hooks, and turns.
func (h *Host) Pager() *pagingview.PagerView { return h.pager }

// Bounds reports the hosted viewport in pixels.
func (h *Host) Bounds() pagingview.Rect { return h.surface.Bounds() }

// HandleFrame polls raylib input and advances gestures and animation by
// one frame.
func (h *Host) HandleFrame() {
	h.process(readInput())
}

// input is one frame of polled device state.
type input struct {
	resized       bool
	width, height int

	pressed  bool
	down     bool
	released bool
	mouseX   float64

	wheel float64

	pageLeft  bool
	pageRight bool
}

func readInput() input {
	return input{
		resized:   rl.IsWindowResized(),
		width:     rl.GetScreenWidth(),
		height:    rl.GetScreenHeight(),
		pressed:   rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		down:      rl.IsMouseButtonDown(rl.MouseButtonLeft),
		released:  rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		mouseX:    float64(rl.GetMousePosition().X),
		wheel:     float64(rl.GetMouseWheelMove()),
		pageLeft:  rl.IsKeyPressed(rl.KeyLeft),
		pageRight: rl.IsKeyPressed(rl.KeyRight),
	}
}

func (h *Host) process(in input) {
	if in.resized {
		h.resize(in.width, in.height)
	}
	if in.pageLeft {
		h.pager.TurnToLeftPage(true)
	}
	if in.pageRight {
		h.pager.TurnToRightPage(true)
	}
	h.processPointer(in)
	h.processWheel(in)
	h.stepAnimation()
}

// resize abandons any gesture or animation in flight and lets the
// engine re-center on the new viewport.
func (h *Host) resize(width, height int) {
	s := h.surface
	s.width = width
	s.height = height
	s.animating = false
	s.velocity = 0
	h.pointerDrag = false
	h.wheelScrub = false
	h.pager.HandleBoundsChange()
}

func (h *Host) processPointer(in input) {
	s := h.surface
	if in.pressed && !s.animating && !h.wheelScrub {
		h.pointerDrag = true
		h.pressX = in.mouseX
		h.dragOrigin = s.offset.X
		h.pager.HandleDragBegin()
	}
	if !h.pointerDrag {
		return
	}
	if in.down {
		// Content tracks the pointer: dragging left reveals the page
		// on the right.
		s.offset.X = clampScrub(h.dragOrigin-(in.mouseX-h.pressX), s.maxOffset())
		h.pager.HandleOffsetChange()
	}
	if in.released {
		h.pointerDrag = false
		h.pager.HandleDragEnd()
	}
}

func (h *Host) processWheel(in input) {
	s := h.surface
	if in.wheel != 0 && !s.animating && !h.pointerDrag {
		if !h.wheelScrub {
			h.wheelScrub = true
			h.pager.HandleDragBegin()
		}
		s.offset.X = clampScrub(s.offset.X-in.wheel*wheelStepPx, s.maxOffset())
		h.pager.HandleOffsetChange()
		h.wheelQuiet = wheelQuietFrames
		return
	}
	if h.wheelScrub {
		h.wheelQuiet--
		if h.wheelQuiet <= 0 {
			h.wheelScrub = false
			h.pager.HandleDragEnd()
		}
	}
}

func (h *Host) stepAnimation() {
	s := h.surface
	if !s.animating {
		return
	}
	done := s.step()
	h.pager.HandleOffsetChange()
	if done {
		h.pager.HandleAnimationEnd()
	}
}
