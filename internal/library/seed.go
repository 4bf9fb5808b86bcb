package library

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	sampleTitle  = "The Long Way Ashore"
	sampleAuthor = "E. M. Calloway"
)

var sampleChapters = []struct {
	title string
	pages int
}{
	{"Harbor Lights", 5},
	{"The Crossing", 6},
	{"Paper Streets", 5},
	{"North of the Orchard", 4},
}

// SeedSampleBook ensures the library holds at least one book to read. It is
// idempotent and safe to run on every startup; every generated row gets a
// deterministic id so reseeding an emptied database reproduces the same book.
func SeedSampleBook(ctx context.Context, db *sql.DB) error {
	books := NewBookRepo(db)
	existing, err := books.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}

	chapters := NewChapterRepo(db)
	pages := NewPageRepo(db)

	book := Book{ID: seedID("book:" + sampleTitle), Title: sampleTitle, Author: sampleAuthor}
	if err := books.Upsert(ctx, book); err != nil {
		return err
	}

	pos := 1
	for ci, ch := range sampleChapters {
		chapter := Chapter{
			ID:       seedID("chapter:" + ch.title),
			BookID:   book.ID,
			Position: ci + 1,
			Title:    ch.title,
		}
		if err := chapters.Upsert(ctx, chapter); err != nil {
			return err
		}
		for pi := 0; pi < ch.pages; pi++ {
			page := Page{
				ID:        seedID(fmt.Sprintf("page:%d:%d", ci, pi)),
				BookID:    book.ID,
				ChapterID: chapter.ID,
				Position:  pos,
				Body:      prosePage(ci, pi),
			}
			if err := pages.Upsert(ctx, page); err != nil {
				return err
			}
			pos++
		}
	}
	return nil
}

func seedID(key string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

var (
	proseSubjects = []string{
		"The ferry", "A lantern", "The tide", "Her letter",
		"The station clock", "A worn map", "The pale road",
	}
	proseVerbs = []string{
		"waited beyond", "slipped past", "circled",
		"outlasted", "leaned into", "carried news of",
	}
	proseObjects = []string{
		"the harbor wall", "the morning fog", "an empty platform",
		"the paper streets", "a quiet orchard", "the last ridge",
		"the ebbing light", "the ledger of tides",
	}
)

// prosePage composes a deterministic paragraph for the given chapter and
// page ordinals. The word tables have pairwise coprime lengths, so the
// sentence stream only repeats every lcm(7,6,8) sentences and every page in
// the sample book reads differently.
func prosePage(chapter, page int) string {
	var b strings.Builder
	base := chapter*11 + page*5
	for s := 0; s < 6; s++ {
		i := base + s
		if s > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s %s %s.",
			proseSubjects[i%len(proseSubjects)],
			proseVerbs[i%len(proseVerbs)],
			proseObjects[i%len(proseObjects)],
		)
	}
	return b.String()
}
