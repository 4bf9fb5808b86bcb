// Command pagereader is a terminal book reader: an infinite pager over the
// pages of a book stored in a local sqlite library. The first run seeds a
// sample book to read.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okibalabs/pagingview/internal/config"
	"github.com/okibalabs/pagingview/internal/library"
	"github.com/okibalabs/pagingview/internal/reader"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := library.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := library.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := library.SeedSampleBook(ctx, db); err != nil {
		log.Fatalf("seed library: %v", err)
	}

	books := library.NewBookRepo(db)
	chapters := library.NewChapterRepo(db)
	pages := library.NewPageRepo(db)

	book, err := resolveBook(ctx, books, cfg.Book.ID)
	if err != nil {
		log.Fatalf("load book: %v", err)
	}
	if book == nil {
		log.Fatalf("no books in library")
	}

	summaries, err := chapters.Summaries(ctx, book.ID)
	if err != nil {
		log.Fatalf("load chapters: %v", err)
	}
	total, err := pages.Count(ctx, book.ID)
	if err != nil {
		log.Fatalf("count pages: %v", err)
	}

	app := reader.New(ctx, cfg,
		reader.Repos{Books: books, Chapters: chapters, Pages: pages},
		*book, summaries, total,
	)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// resolveBook opens the configured book, falling back to the first one in
// the library when the configured id is empty or no longer present.
func resolveBook(ctx context.Context, books *library.BookRepo, id string) (*library.Book, error) {
	if id != "" {
		book, err := books.Get(ctx, id)
		if err != nil || book != nil {
			return book, err
		}
	}
	return books.First(ctx)
}
