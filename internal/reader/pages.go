package reader

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/okibalabs/pagingview"
	"github.com/okibalabs/pagingview/internal/library"
)

// Reuse identifiers for the two page kinds the reader registers.
const (
	textPageKind  = "prose"
	coverPageKind = "cover"
)

// TextPage renders one prose page of the open book. Instances recycle
// through the pager's reuse pool; fill rebinds one to a database row and
// its unique identifier is the row's id.
type TextPage struct {
	styles *styleSet

	uid      string
	chapter  string
	body     string
	position int
	total    int

	direction pagingview.Direction
}

func newTextPage(styles *styleSet) *TextPage {
	return &TextPage{styles: styles, direction: pagingview.DirectionLeftToRight}
}

func (p *TextPage) PageIdentifier() string   { return textPageKind }
func (p *TextPage) UniqueIdentifier() string { return p.uid }

func (p *TextPage) PrepareForReuse() {
	p.uid = ""
	p.chapter = ""
	p.body = ""
	p.position = 0
	p.total = 0
}

func (p *TextPage) SetPageDirection(d pagingview.Direction) { p.direction = d }

func (p *TextPage) fill(row library.Page, chapterTitle string, total int) {
	p.uid = row.ID
	p.chapter = chapterTitle
	p.body = row.Body
	p.position = row.Position
	p.total = total
}

func (p *TextPage) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	heading := p.styles.chapterHeading.Render(ansi.Truncate(p.chapter, width, "…"))
	body := p.styles.pageBody.Width(width).Render(p.body)

	lines := []string{heading, ""}
	lines = append(lines, strings.Split(body, "\n")...)
	lines = fitLines(lines, height-1)

	number := p.styles.pageNumber.Render(fmt.Sprintf("%d / %d", p.position, p.total))
	side := lipgloss.Right
	if p.direction == pagingview.DirectionRightToLeft {
		side = lipgloss.Left
	}
	lines = append(lines, lipgloss.PlaceHorizontal(width, side, number))
	return strings.Join(lines, "\n")
}

// CoverPage is the virtual page at position 0: the book's title leaf. It
// reports itself as the initial page so dynamic direction inference can
// decide reading order from the first swipe away from it.
type CoverPage struct {
	styles *styleSet

	uid    string
	title  string
	author string
	total  int

	direction pagingview.Direction
}

func newCoverPage(styles *styleSet) *CoverPage {
	return &CoverPage{styles: styles, direction: pagingview.DirectionLeftToRight}
}

func (c *CoverPage) PageIdentifier() string   { return coverPageKind }
func (c *CoverPage) UniqueIdentifier() string { return c.uid }
func (c *CoverPage) IsInitialPage() bool      { return true }

func (c *CoverPage) PrepareForReuse() {
	c.uid = ""
	c.title = ""
	c.author = ""
	c.total = 0
}

func (c *CoverPage) SetPageDirection(d pagingview.Direction) { c.direction = d }

func (c *CoverPage) fill(book library.Book, total int) {
	c.uid = book.ID
	c.title = book.Title
	c.author = book.Author
	c.total = total
}

func (c *CoverPage) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	hint := "→ to begin"
	if c.direction == pagingview.DirectionRightToLeft {
		hint = "← to begin"
	}
	block := lipgloss.JoinVertical(lipgloss.Center,
		c.styles.coverTitle.Render(c.title),
		c.styles.coverByline.Render(c.author),
		"",
		c.styles.coverHint.Render(fmt.Sprintf("%d pages, %s", c.total, hint)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

// fitLines clips or pads to exactly n rows.
func fitLines(lines []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(lines) > n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}
