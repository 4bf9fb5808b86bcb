package reader

import (
	"context"

	"github.com/okibalabs/pagingview"
	"github.com/okibalabs/pagingview/internal/library"
)

// bookSource feeds the pager from the library one position at a time.
// Position 0 is the virtual cover; prose pages run 1..total. The pager asks
// for neighbors relative to the occupant of the current slot, so only
// position arithmetic and one row fetch happen per request.
type bookSource struct {
	ctx       context.Context
	book      library.Book
	pages     *library.PageRepo
	summaries []library.ChapterSummary
	styles    *styleSet

	total    int
	position int

	err error
}

func newBookSource(ctx context.Context, book library.Book, pages *library.PageRepo, summaries []library.ChapterSummary, total int, styles *styleSet) *bookSource {
	return &bookSource{
		ctx:       ctx,
		book:      book,
		pages:     pages,
		summaries: summaries,
		styles:    styles,
		total:     total,
	}
}

func (s *bookSource) ProvidePage(pager *pagingview.PagerView, t pagingview.PageType, current pagingview.Page) pagingview.Page {
	pos := s.position
	switch t {
	case pagingview.PageTypeNext:
		pos = s.positionOf(current) + 1
	case pagingview.PageTypePrevious:
		pos = s.positionOf(current) - 1
	}
	if pos < 0 || pos > s.total {
		return nil
	}
	if pos == 0 {
		cover, _ := pager.DequeueReusablePageForIdentifier(coverPageKind).(*CoverPage)
		if cover == nil {
			return nil
		}
		cover.fill(s.book, s.total)
		return cover
	}

	row, err := s.pages.ByPosition(s.ctx, s.book.ID, pos)
	if err != nil {
		s.err = err
		return nil
	}
	if row == nil {
		return nil
	}
	page, _ := pager.DequeueReusablePageForIdentifier(textPageKind).(*TextPage)
	if page == nil {
		return nil
	}
	page.fill(*row, s.chapterTitleFor(pos), s.total)
	return page
}

// positionOf maps a slotted page back to its book position. Unknown page
// values fall back to the source's tracked position.
func (s *bookSource) positionOf(p pagingview.Page) int {
	switch v := p.(type) {
	case *CoverPage:
		return 0
	case *TextPage:
		return v.position
	}
	return s.position
}

// moveTo retargets the source; the caller reloads the pager afterwards.
func (s *bookSource) moveTo(position int) {
	if position < 0 {
		position = 0
	}
	if position > s.total {
		position = s.total
	}
	s.position = position
}

// takeErr returns and clears the last row-fetch failure.
func (s *bookSource) takeErr() error {
	err := s.err
	s.err = nil
	return err
}

func (s *bookSource) chapterTitleFor(position int) string {
	for _, ch := range s.summaries {
		if position >= ch.StartPage && position < ch.StartPage+ch.PageCount {
			return ch.Title
		}
	}
	return ""
}
