package library

import "time"

// Book represents a book row.
type Book struct {
	ID        string
	Title     string
	Author    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Chapter represents a chapter row. Position is the chapter's 1-based order
// within its book.
type Chapter struct {
	ID       string
	BookID   string
	Position int
	Title    string
}

// Page represents a prose page row. Position is the page's 1-based order
// within the whole book; position 0 is reserved for the reader's virtual
// cover page and never stored.
type Page struct {
	ID        string
	BookID    string
	ChapterID string
	Position  int
	Body      string
}

// ChapterSummary is a chapter with the page range it spans, used by the
// chapter picker.
type ChapterSummary struct {
	Chapter
	StartPage int
	PageCount int
}
