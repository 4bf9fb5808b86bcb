package reader

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/okibalabs/pagingview"
	"github.com/okibalabs/pagingview/internal/config"
	"github.com/okibalabs/pagingview/internal/library"
	"github.com/okibalabs/pagingview/tuipager"
)

func newTestApp(t *testing.T) (*App, *sql.DB) {
	t.Helper()
	db, book, summaries, total := openSeededLibrary(t)

	cfg := config.Config{
		Pager: config.PagerConfig{Spacing: 4, Direction: "ltr", FPS: 30},
	}
	repos := Repos{
		Books:    library.NewBookRepo(db),
		Chapters: library.NewChapterRepo(db),
		Pages:    library.NewPageRepo(db),
	}
	a := New(testContext(t), cfg, repos, book, summaries, total)
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return a, db
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runCmd executes a command tree and returns the messages it produced.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func appLines(t *testing.T, a *App) []string {
	t.Helper()
	return strings.Split(ansi.Strip(a.View()), "\n")
}

func TestAppSizesPagerFromWindow(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)

	require.Equal(t, 80, a.pager.Width())
	require.Equal(t, 22, a.pager.Height())
	require.Len(t, appLines(t, a), 24)
}

func TestAppViewBeforeSizingIsEmpty(t *testing.T) {
	t.Parallel()
	db, book, summaries, total := openSeededLibrary(t)
	a := New(testContext(t), config.Config{}, Repos{Pages: library.NewPageRepo(db)}, book, summaries, total)
	require.Empty(t, a.View())
}

func TestAppOpensOnCover(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)

	require.Zero(t, a.source.position)
	_, ok := a.pager.Pager().CurrentPage().(*CoverPage)
	require.True(t, ok)

	lines := appLines(t, a)
	require.Contains(t, lines[0], "The Long Way Ashore")
	require.Contains(t, lines[0], "cover")
	require.Contains(t, lines[len(lines)-1], "page left")
	require.Contains(t, lines[len(lines)-1], "chapters")
}

func TestAppJumpKeys(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)

	a.Update(runeKey("G"))
	require.Equal(t, a.source.total, a.source.position)
	cur, ok := a.pager.Pager().CurrentPage().(*TextPage)
	require.True(t, ok)
	require.Equal(t, a.source.total, cur.position)
	require.Contains(t, a.status, "last page")

	a.Update(runeKey("g"))
	require.Zero(t, a.source.position)
	_, ok = a.pager.Pager().CurrentPage().(*CoverPage)
	require.True(t, ok)
}

func TestAppChapterKeysWalkTheBook(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)

	a.Update(runeKey("n"))
	require.Equal(t, 1, a.source.position)
	require.Contains(t, a.status, "Harbor Lights")

	a.Update(runeKey("n"))
	require.Equal(t, 6, a.source.position)
	require.Contains(t, a.status, "The Crossing")

	a.Update(runeKey("p"))
	require.Equal(t, 1, a.source.position)

	a.Update(runeKey("p"))
	require.Zero(t, a.source.position)

	// next past the last chapter stays put
	a.Update(runeKey("G"))
	a.Update(runeKey("n"))
	require.Equal(t, a.source.total, a.source.position)
}

func TestAppChapterPickerJumps(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)

	a.Update(runeKey("c"))
	require.Equal(t, modalChapters, a.modal)

	view := ansi.Strip(a.View())
	require.Contains(t, view, "Chapters")
	require.Contains(t, view, "▶ 1. Harbor Lights  p.1 (5 pages)")

	for _, r := range "cross" {
		a.Update(runeKey(string(r)))
	}
	a.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, modalNone, a.modal)
	require.Equal(t, 6, a.source.position)
	require.Contains(t, a.status, "The Crossing")
}

func TestAppChapterPickerEscCloses(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)

	a.Update(runeKey("G"))
	a.Update(runeKey("c"))
	a.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.Equal(t, modalNone, a.modal)
	require.Equal(t, a.source.total, a.source.position)
}

func TestAppDirectionKeyReversesEngine(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)

	_, cmd := a.Update(runeKey("d"))
	require.Equal(t, pagingview.DirectionRightToLeft, a.pager.Pager().ScrollDirection())

	for _, msg := range runCmd(cmd) {
		a.Update(msg)
	}
	require.Contains(t, a.status, "rtl")
	require.Contains(t, appLines(t, a)[0], "rtl")

	a.Update(runeKey("d"))
	require.Equal(t, pagingview.DirectionLeftToRight, a.pager.Pager().ScrollDirection())
}

func TestAppForwardsPagerKeysToPager(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)

	// Three scrub steps drag the surface past the next page's midpoint,
	// which announces the upcoming turn.
	a.Update(runeKey("L"))
	a.Update(runeKey("L"))
	_, cmd := a.Update(runeKey("L"))

	var willTurn bool
	for _, msg := range runCmd(cmd) {
		if _, ok := msg.(tuipager.WillTurnMsg); ok {
			willTurn = true
		}
	}
	require.True(t, willTurn, "scrub keys should reach the pager")
}

func TestAppTracksCompletedTurns(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)

	a.pager.Pager().TurnToNextPage(false)
	a.Update(tuipager.PageTurnedMsg{})
	require.Equal(t, 1, a.source.position)

	a.pager.Pager().TurnToNextPage(false)
	a.Update(tuipager.PageTurnedMsg{})
	require.Equal(t, 2, a.source.position)
	require.Contains(t, appLines(t, a)[0], "page 2/20")
}

func TestAppReloadKeepsPosition(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)

	a.Update(runeKey("G"))
	a.Update(runeKey("R"))
	require.Equal(t, "reloaded", a.status)
	require.Equal(t, a.source.total, a.source.position)
}

func TestAppShowsFetchErrorsInStatusBar(t *testing.T) {
	t.Parallel()
	a, db := newTestApp(t)

	require.NoError(t, db.Close())
	a.Update(runeKey("G"))

	require.True(t, a.statusErr)
	require.Contains(t, a.status, "error:")
	require.Contains(t, appLines(t, a)[0], "error:")
}

func TestAppQuitPersistsSession(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PAGEREADER_CONFIG", filepath.Join(home, "config.toml"))

	a, _ := newTestApp(t)
	a.Update(runeKey("d"))

	_, cmd := a.Update(runeKey("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, a.book.ID, cfg.Book.ID)
	require.Equal(t, "rtl", cfg.Pager.Direction)
}

func TestAppPickerCtrlCQuits(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PAGEREADER_CONFIG", filepath.Join(home, "config.toml"))

	a, _ := newTestApp(t)
	a.Update(runeKey("c"))

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}
