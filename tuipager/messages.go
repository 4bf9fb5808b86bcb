package tuipager

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okibalabs/pagingview"
)

// WillTurnMsg is emitted when the view crosses the halfway point toward an
// adjacent page, before anything commits. A retracted gesture emits no
// follow-up.
type WillTurnMsg struct {
	Type pagingview.PageType
}

// PageTurnedMsg is emitted once a turn commits. Page is the page now
// occupying the current slot.
type PageTurnedMsg struct {
	Type pagingview.PageType
	Page pagingview.Page
}

// DirectionChangedMsg is emitted when the committed scroll direction
// changes, whether set explicitly or inferred from the first gesture.
type DirectionChangedMsg struct {
	Direction pagingview.Direction
}

type animFrameMsg struct{}

type scrubSettleMsg struct {
	seq int
}

// eventQueue buffers engine hook firings until Update can turn them into
// commands.
type eventQueue struct {
	msgs []tea.Msg
}

func (q *eventQueue) push(msg tea.Msg) { q.msgs = append(q.msgs, msg) }

func (q *eventQueue) take() []tea.Msg {
	msgs := q.msgs
	q.msgs = nil
	return msgs
}
