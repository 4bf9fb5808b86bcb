package library

import (
	"context"
	"database/sql"
)

// BookRepo handles books.
type BookRepo struct {
	db *sql.DB
}

func NewBookRepo(db *sql.DB) *BookRepo {
	return &BookRepo{db: db}
}

func (r *BookRepo) Upsert(ctx context.Context, b Book) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO books(id, title, author, created_at, updated_at)
	VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 title=excluded.title,
	 author=excluded.author,
	 updated_at=CURRENT_TIMESTAMP;
	`, b.ID, b.Title, b.Author)
	return err
}

// Get returns the book with the given id, or nil when it does not exist.
func (r *BookRepo) Get(ctx context.Context, id string) (*Book, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, title, author, created_at, updated_at FROM books WHERE id = ?`, id)
	return scanBook(row)
}

// First returns the earliest-created book, or nil when the library is empty.
func (r *BookRepo) First(ctx context.Context) (*Book, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, title, author, created_at, updated_at FROM books ORDER BY created_at, id LIMIT 1`)
	return scanBook(row)
}

func (r *BookRepo) List(ctx context.Context) ([]Book, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, author, created_at, updated_at FROM books ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBook(row scanner) (*Book, error) {
	var b Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
