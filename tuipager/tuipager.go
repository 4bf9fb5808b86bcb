// Package tuipager embeds a pagingview.PagerView in a Bubble Tea program.
//
// Model is a component in the bubbles mold: route messages through Update,
// compose View into your layout, and call SetSize when the window changes.
// It owns a cell-unit surface for the engine, so one content unit is one
// terminal column. Pages implement CellPage on top of whichever engine
// capabilities they need.
//
// Turns animate on a spring driven by tea.Tick frames. Mouse wheel input
// scrubs the surface as a synthetic drag that settles after a short quiet
// period, which routes wheel gestures through exactly the same engine state
// machine as a pointer drag.
//
// Model is a handle: copies share the same pager, so the usual value-style
// Update loop works without losing state.
package tuipager

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okibalabs/pagingview"
)

const (
	defaultFPS      = 30
	springFrequency = 7.0
	springDamping   = 1.0

	// wheelSettleDelay is how long the wheel must stay quiet before the
	// synthetic drag releases.
	wheelSettleDelay = 150 * time.Millisecond
)

// CellPage is the rendering capability terminal pages implement on top of
// the engine's page capabilities. View returns the page's content for a
// viewport of the given size; longer lines and extra rows are clipped.
type CellPage interface {
	View(width, height int) string
}

// Model drives a PagerView from Bubble Tea messages.
type Model struct {
	// KeyMap and Styles may be replaced wholesale before the first Update.
	KeyMap KeyMap
	Styles Styles

	pager   *pagingview.PagerView
	surface *cellSurface
	events  *eventQueue
}

// New builds a pager component over source. Register page factories and
// call Reload through Pager before the first View.
func New(source pagingview.DataSource) Model {
	surface := newCellSurface(defaultFPS)
	events := &eventQueue{}

	pv := pagingview.New(surface)
	pv.DataSource = source
	pv.WillTurnToPage = func(t pagingview.PageType) {
		events.push(WillTurnMsg{Type: t})
	}
	pv.DidTurnToPage = func(t pagingview.PageType) {
		events.push(PageTurnedMsg{Type: t, Page: pv.CurrentPage()})
	}
	pv.DidChangeDirection = func(d pagingview.Direction) {
		events.push(DirectionChangedMsg{Direction: d})
	}

	return Model{
		KeyMap:  DefaultKeyMap(),
		Styles:  DefaultStyles(),
		pager:   pv,
		surface: surface,
		events:  events,
	}
}

// Pager exposes the engine for registration, reloads, programmatic turns
// and configuration. After calling an animated operation directly, run
// StartAnimation so the frame loop spins up.
func (m Model) Pager() *pagingview.PagerView { return m.pager }

// Width returns the viewport width in cells.
func (m Model) Width() int { return m.surface.width }

// Height returns the viewport height in cells.
func (m Model) Height() int { return m.surface.height }

// SetSize resizes the viewport. Any gesture or animation in flight is
// abandoned and the offset re-rests on the current page.
func (m Model) SetSize(width, height int) {
	s := m.surface
	s.width = width
	s.height = height
	s.animating = false
	s.scrubbing = false
	s.velocity = 0
	m.pager.HandleBoundsChange()
}

// Update handles key, mouse and internal frame messages. It emits
// WillTurnMsg, PageTurnedMsg and DirectionChangedMsg commands for the
// enclosing program.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.PageLeft):
			m.pager.TurnToLeftPage(true)
		case key.Matches(msg, m.KeyMap.PageRight):
			m.pager.TurnToRightPage(true)
		case key.Matches(msg, m.KeyMap.ScrubLeft):
			cmds = append(cmds, m.scrub(-m.wheelStep()))
		case key.Matches(msg, m.KeyMap.ScrubRight):
			cmds = append(cmds, m.scrub(m.wheelStep()))
		}
	case tea.MouseMsg:
		cmds = append(cmds, m.handleWheel(msg))
	case animFrameMsg:
		cmds = append(cmds, m.handleAnimFrame())
	case scrubSettleMsg:
		m.handleScrubSettle(msg)
	}
	cmds = append(cmds, m.drain(), m.StartAnimation())
	return m, tea.Batch(cmds...)
}

// StartAnimation returns the command driving any pending surface
// animation, or nil when nothing is animating. Update runs it on its own;
// it only needs calling after driving the engine directly through Pager.
func (m Model) StartAnimation() tea.Cmd {
	s := m.surface
	if !s.animating || s.ticking {
		return nil
	}
	s.ticking = true
	return tea.Tick(time.Second/defaultFPS, func(time.Time) tea.Msg {
		return animFrameMsg{}
	})
}

func (m Model) handleWheel(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		return m.scrub(-m.wheelStep())
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		return m.scrub(m.wheelStep())
	}
	return nil
}

// scrub nudges the offset as part of a synthetic drag, opening the drag on
// the first nudge and scheduling the quiet-period release.
func (m Model) scrub(delta float64) tea.Cmd {
	s := m.surface
	if s.animating {
		return nil
	}
	if !s.scrubbing {
		m.pager.HandleDragBegin()
		s.scrubbing = true
	}
	x := s.offset.X + delta
	if x < 0 {
		x = 0
	}
	if max := s.maxOffset(); x > max {
		x = max
	}
	s.offset.X = x
	m.pager.HandleOffsetChange()

	s.scrubSeq++
	seq := s.scrubSeq
	return tea.Tick(wheelSettleDelay, func(time.Time) tea.Msg {
		return scrubSettleMsg{seq: seq}
	})
}

func (m Model) handleScrubSettle(msg scrubSettleMsg) {
	s := m.surface
	if !s.scrubbing || msg.seq != s.scrubSeq {
		return
	}
	s.scrubbing = false
	m.pager.HandleDragEnd()
}

func (m Model) handleAnimFrame() tea.Cmd {
	s := m.surface
	s.ticking = false
	if !s.animating {
		return nil
	}
	done := s.step()
	m.pager.HandleOffsetChange()
	if done {
		m.pager.HandleAnimationEnd()
	}
	return nil
}

func (m Model) wheelStep() float64 {
	step := m.surface.width / 5
	if step < 2 {
		step = 2
	}
	return float64(step)
}

func (m Model) drain() tea.Cmd {
	msgs := m.events.take()
	if len(msgs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(msgs))
	for i, msg := range msgs {
		cmds[i] = func() tea.Msg { return msg }
	}
	return tea.Batch(cmds...)
}
