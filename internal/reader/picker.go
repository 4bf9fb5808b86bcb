package reader

import (
	"github.com/okibalabs/pagingview/internal/library"
)

type pickerAction int

const (
	pickerActionNone pickerAction = iota
	pickerActionMoved
	pickerActionSelected
	pickerActionCancelled
)

type pickerResult struct {
	action  pickerAction
	chapter library.ChapterSummary
}

// chapterPicker is the pure state behind the chapter modal: a query, the
// chapters ranked against it, and a cursor. Key handling works on key names
// so it never touches the terminal.
type chapterPicker struct {
	chapters []library.ChapterSummary
	matches  []library.ChapterMatch
	query    string
	cursor   int
}

func newChapterPicker(chapters []library.ChapterSummary) *chapterPicker {
	p := &chapterPicker{chapters: chapters}
	p.rebuild()
	return p
}

func (p *chapterPicker) Query() string { return p.query }

func (p *chapterPicker) Cursor() int { return p.cursor }

func (p *chapterPicker) Matches() []library.ChapterMatch {
	return append([]library.ChapterMatch(nil), p.matches...)
}

func (p *chapterPicker) SetQuery(q string) {
	p.query = q
	p.rebuild()
}

func (p *chapterPicker) CursorUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *chapterPicker) CursorDown() {
	if p.cursor < len(p.matches)-1 {
		p.cursor++
	}
}

func (p *chapterPicker) Current() (library.ChapterSummary, bool) {
	if len(p.matches) == 0 {
		return library.ChapterSummary{}, false
	}
	idx := p.cursor
	if idx >= len(p.matches) {
		idx = len(p.matches) - 1
	}
	return p.matches[idx].ChapterSummary, true
}

func (p *chapterPicker) HandleKey(keyName string) pickerResult {
	switch keyName {
	case "k", "up":
		before := p.cursor
		p.CursorUp()
		if p.cursor != before {
			return pickerResult{action: pickerActionMoved}
		}
		return pickerResult{action: pickerActionNone}
	case "j", "down":
		before := p.cursor
		p.CursorDown()
		if p.cursor != before {
			return pickerResult{action: pickerActionMoved}
		}
		return pickerResult{action: pickerActionNone}
	case "enter":
		ch, ok := p.Current()
		if !ok {
			return pickerResult{action: pickerActionNone}
		}
		return pickerResult{action: pickerActionSelected, chapter: ch}
	case "esc":
		return pickerResult{action: pickerActionCancelled}
	case "backspace":
		if len(p.query) > 0 {
			p.SetQuery(p.query[:len(p.query)-1])
		}
		return pickerResult{action: pickerActionNone}
	default:
		if isPrintableASCIIKey(keyName) {
			p.SetQuery(p.query + keyName)
		}
		return pickerResult{action: pickerActionNone}
	}
}

func (p *chapterPicker) rebuild() {
	p.matches = library.RankChapters(p.query, p.chapters)
	maxIdx := len(p.matches) - 1
	if maxIdx < 0 {
		p.cursor = 0
	} else if p.cursor > maxIdx {
		p.cursor = maxIdx
	}
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
