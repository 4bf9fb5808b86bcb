package library

import (
	"context"
	"database/sql"
)

// ChapterRepo handles chapters.
type ChapterRepo struct {
	db *sql.DB
}

func NewChapterRepo(db *sql.DB) *ChapterRepo {
	return &ChapterRepo{db: db}
}

func (r *ChapterRepo) Upsert(ctx context.Context, c Chapter) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO chapters(id, book_id, position, title)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 book_id=excluded.book_id,
	 position=excluded.position,
	 title=excluded.title;
	`, c.ID, c.BookID, c.Position, c.Title)
	return err
}

func (r *ChapterRepo) ListByBook(ctx context.Context, bookID string) ([]Chapter, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, book_id, position, title FROM chapters
	WHERE book_id = ? ORDER BY position`, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Chapter
	for rows.Next() {
		var c Chapter
		if err := rows.Scan(&c.ID, &c.BookID, &c.Position, &c.Title); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Summaries returns a book's chapters with the page range each one spans,
// ordered by chapter position. Chapters without pages are skipped.
func (r *ChapterRepo) Summaries(ctx context.Context, bookID string) ([]ChapterSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT c.id, c.book_id, c.position, c.title, MIN(p.position), COUNT(p.id)
	FROM chapters c
	JOIN pages p ON p.chapter_id = c.id
	WHERE c.book_id = ?
	GROUP BY c.id
	ORDER BY c.position`, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ChapterSummary
	for rows.Next() {
		var s ChapterSummary
		if err := rows.Scan(&s.ID, &s.BookID, &s.Position, &s.Title, &s.StartPage, &s.PageCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ForPage returns the chapter containing the page at the given book
// position, or nil when no page sits there.
func (r *ChapterRepo) ForPage(ctx context.Context, bookID string, position int) (*Chapter, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT c.id, c.book_id, c.position, c.title
	FROM chapters c JOIN pages p ON p.chapter_id = c.id
	WHERE p.book_id = ? AND p.position = ?`, bookID, position)
	var c Chapter
	err := row.Scan(&c.ID, &c.BookID, &c.Position, &c.Title)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
