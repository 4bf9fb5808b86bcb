// Package reader is the terminal book reader built on the paging engine:
// a pager over the open book's pages, a status bar, a key footer, and a
// chapter picker modal backed by fuzzy title search.
package reader

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/samber/lo"

	"github.com/okibalabs/pagingview"
	"github.com/okibalabs/pagingview/internal/config"
	"github.com/okibalabs/pagingview/internal/library"
	"github.com/okibalabs/pagingview/tuipager"
)

type modalState string

const (
	modalNone     modalState = ""
	modalChapters modalState = "chapters"
)

// Repos bundles the store access the reader needs.
type Repos struct {
	Books    *library.BookRepo
	Chapters *library.ChapterRepo
	Pages    *library.PageRepo
}

// App ties the pager, the book source, and the chrome together.
type App struct {
	cfg    config.Config
	styles *styleSet
	keys   keyMap

	book      library.Book
	summaries []library.ChapterSummary
	source    *bookSource
	pager     tuipager.Model
	picker    *chapterPicker

	modal     modalState
	status    string
	statusErr bool
	width     int
	height    int
}

// New builds the reader over an already-opened book. The caller resolves
// the book row, its chapter summaries, and the page total up front; the
// app fetches individual pages on demand as the reader turns.
func New(ctx context.Context, cfg config.Config, repos Repos, book library.Book, summaries []library.ChapterSummary, total int) *App {
	styles := newStyleSet(cfg.UI.Accent, cfg.UI.Muted)
	source := newBookSource(ctx, book, repos.Pages, summaries, total, styles)

	pager := tuipager.New(source)
	pv := pager.Pager()
	pv.Register(textPageKind, func() pagingview.Page { return newTextPage(styles) })
	pv.Register(coverPageKind, func() pagingview.Page { return newCoverPage(styles) })
	pv.SetPageSpacing(float64(cfg.Pager.Spacing))
	if cfg.Pager.NormalizedDirection() == "rtl" {
		pv.SetScrollDirection(pagingview.DirectionRightToLeft)
	}
	pv.SetDynamicDirectionEnabled(cfg.Pager.Dynamic)
	pv.Reload()

	return &App{
		cfg:       cfg,
		styles:    styles,
		keys:      defaultKeyMap(),
		book:      book,
		summaries: summaries,
		source:    source,
		pager:     pager,
		status:    fmt.Sprintf("opened %q", book.Title),
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.pager.SetSize(m.Width, a.pagerHeight())
		return a, nil

	case tea.KeyMsg:
		if a.modal == modalChapters {
			return a.handlePickerKey(m)
		}
		switch {
		case key.Matches(m, a.keys.Quit):
			a.persistConfig()
			return a, tea.Quit
		case key.Matches(m, a.keys.Chapters):
			a.picker = newChapterPicker(a.summaries)
			a.modal = modalChapters
			return a, nil
		case key.Matches(m, a.keys.NextChapter):
			a.jumpChapter(1)
			return a.forward(msg)
		case key.Matches(m, a.keys.PrevChapter):
			a.jumpChapter(-1)
			return a.forward(msg)
		case key.Matches(m, a.keys.Cover):
			a.jumpTo(0, "cover")
			return a.forward(msg)
		case key.Matches(m, a.keys.LastPage):
			a.jumpTo(a.source.total, "last page")
			return a.forward(msg)
		case key.Matches(m, a.keys.Direction):
			pv := a.pager.Pager()
			pv.SetScrollDirection(pv.ScrollDirection().Reversed())
			return a.forward(msg)
		case key.Matches(m, a.keys.Reload):
			a.pager.Pager().Reload()
			a.status = "reloaded"
			return a.forward(msg)
		}
		return a.forward(msg)

	case tuipager.PageTurnedMsg:
		a.source.position = a.source.positionOf(a.pager.Pager().CurrentPage())
		a.status = ""
		a.statusErr = false
		return a, nil

	case tuipager.WillTurnMsg:
		return a, nil

	case tuipager.DirectionChangedMsg:
		a.status = "reading " + directionLabel(m.Direction)
		a.statusErr = false
		return a, nil
	}

	return a.forward(msg)
}

// forward routes a message through the pager and surfaces any fetch error
// the source hit while serving it.
func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.pager, cmd = a.pager.Update(msg)
	if err := a.source.takeErr(); err != nil {
		a.status = "error: " + err.Error()
		a.statusErr = true
	}
	return a, cmd
}

func (a *App) handlePickerKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Only ctrl+c quits here; plain q types into the query.
	if m.String() == "ctrl+c" {
		a.persistConfig()
		return a, tea.Quit
	}
	res := a.picker.HandleKey(m.String())
	switch res.action {
	case pickerActionSelected:
		a.modal = modalNone
		a.jumpTo(res.chapter.StartPage, res.chapter.Title)
	case pickerActionCancelled:
		a.modal = modalNone
	}
	return a, nil
}

// jumpTo retargets the source and reloads the pager around the new
// position. Any gesture or turn in flight is abandoned by the reload.
func (a *App) jumpTo(position int, label string) {
	a.source.moveTo(position)
	a.pager.Pager().Reload()
	a.status = "jumped to " + label
	a.statusErr = false
}

func (a *App) jumpChapter(delta int) {
	target := a.currentChapterIndex() + delta
	if target < 0 {
		a.jumpTo(0, "cover")
		return
	}
	if target >= len(a.summaries) {
		return
	}
	ch := a.summaries[target]
	a.jumpTo(ch.StartPage, ch.Title)
}

// currentChapterIndex reports which chapter holds the current position,
// or -1 on the cover.
func (a *App) currentChapterIndex() int {
	pos := a.source.position
	for i, ch := range a.summaries {
		if pos >= ch.StartPage && pos < ch.StartPage+ch.PageCount {
			return i
		}
	}
	return -1
}

func (a *App) persistConfig() {
	a.cfg.Book.ID = a.book.ID
	a.cfg.Pager.Direction = directionLabel(a.pager.Pager().ScrollDirection())
	_ = config.Save(a.cfg)
}

func (a *App) pagerHeight() int {
	return max(0, a.height-2)
}

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	var body string
	if a.modal == modalChapters {
		body = a.renderPicker()
	} else {
		body = a.pager.View()
	}
	return a.renderStatusBar() + "\n" + body + "\n" + a.renderFooter()
}

func (a *App) renderStatusBar() string {
	style := a.styles.statusBar
	if a.statusErr {
		style = a.styles.statusErrBar
	}
	pos := a.source.position
	where := lo.Ternary(pos == 0, "cover", fmt.Sprintf("page %d/%d", pos, a.source.total))
	parts := []string{a.book.Title}
	if chapter := a.source.chapterTitleFor(pos); chapter != "" {
		parts = append(parts, chapter)
	}
	parts = append(parts, where, directionLabel(a.pager.Pager().ScrollDirection()))
	if a.status != "" {
		parts = append(parts, a.status)
	}
	return renderBar(style, max(1, a.width), strings.Join(parts, "  |  "))
}

func (a *App) renderFooter() string {
	bindings := append(a.pager.KeyMap.ShortHelp(), a.keys.footerBindings()...)
	space := a.styles.footer.Render(" ")
	sep := a.styles.footer.Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, a.styles.footerKey.Render(h.Key)+space+a.styles.footerDesc.Render(h.Desc))
	}
	return renderBar(a.styles.footer, max(1, a.width), strings.Join(parts, sep))
}

func (a *App) renderPicker() string {
	s := a.styles
	var b strings.Builder
	b.WriteString(s.pickerTitle.Render("Chapters") + "\n")
	b.WriteString(s.pickerQuery.Render("> "+a.picker.Query()) + "\n\n")

	matches := a.picker.Matches()
	if len(matches) == 0 {
		b.WriteString(s.pickerHint.Render("no chapters match") + "\n")
	}
	for i, m := range matches {
		line := fmt.Sprintf("%d. %s  p.%d (%d pages)", m.Position, m.Title, m.StartPage, m.PageCount)
		if i == a.picker.Cursor() {
			b.WriteString(s.pickerSelected.Render("▶ "+line) + "\n")
		} else {
			b.WriteString(s.pickerItem.Render("  "+line) + "\n")
		}
	}
	b.WriteString("\n" + s.pickerHint.Render("enter jump  esc close"))

	box := s.pickerBox.Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.Place(a.width, a.pagerHeight(), lipgloss.Center, lipgloss.Center, box)
}

// renderBar pins a single line of text to an exact width.
func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func directionLabel(d pagingview.Direction) string {
	return lo.Ternary(d == pagingview.DirectionRightToLeft, "rtl", "ltr")
}
