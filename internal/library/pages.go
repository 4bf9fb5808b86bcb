package library

import (
	"context"
	"database/sql"
)

// PageRepo handles prose pages.
type PageRepo struct {
	db *sql.DB
}

func NewPageRepo(db *sql.DB) *PageRepo {
	return &PageRepo{db: db}
}

func (r *PageRepo) Upsert(ctx context.Context, p Page) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO pages(id, book_id, chapter_id, position, body)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 book_id=excluded.book_id,
	 chapter_id=excluded.chapter_id,
	 position=excluded.position,
	 body=excluded.body;
	`, p.ID, p.BookID, p.ChapterID, p.Position, p.Body)
	return err
}

// ByPosition returns the page at a 1-based book position, or nil when the
// position is past either end of the book.
func (r *PageRepo) ByPosition(ctx context.Context, bookID string, position int) (*Page, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, book_id, chapter_id, position, body FROM pages
	WHERE book_id = ? AND position = ?`, bookID, position)
	var p Page
	err := row.Scan(&p.ID, &p.BookID, &p.ChapterID, &p.Position, &p.Body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Count returns how many prose pages a book has.
func (r *PageRepo) Count(ctx context.Context, bookID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pages WHERE book_id = ?`, bookID).Scan(&n)
	return n, err
}
