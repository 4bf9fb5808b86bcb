package library

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedSampleBookIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)
	db := openTestDB(t)

	require.NoError(t, SeedSampleBook(ctx, db))
	require.NoError(t, SeedSampleBook(ctx, db))

	books, err := NewBookRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, sampleTitle, books[0].Title)

	n, err := NewPageRepo(db).Count(ctx, books[0].ID)
	require.NoError(t, err)
	require.Equal(t, 20, n)
}

func TestSeedIsDeterministicAcrossDatabases(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)

	ids := make([]string, 0, 2)
	for range 2 {
		db := openTestDB(t)
		require.NoError(t, SeedSampleBook(ctx, db))
		book, err := NewBookRepo(db).First(ctx)
		require.NoError(t, err)
		require.NotNil(t, book)
		ids = append(ids, book.ID)
	}
	require.Equal(t, ids[0], ids[1])
}

func TestSeedPositionsAreContiguous(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)
	db := openTestDB(t)
	require.NoError(t, SeedSampleBook(ctx, db))

	book, err := NewBookRepo(db).First(ctx)
	require.NoError(t, err)
	pages := NewPageRepo(db)

	for pos := 1; pos <= 20; pos++ {
		p, err := pages.ByPosition(ctx, book.ID, pos)
		require.NoError(t, err)
		require.NotNil(t, p, "missing page at position %d", pos)
		require.Equal(t, pos, p.Position)
	}
}

func TestProsePagesVaryAcrossTheBook(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for ci := range sampleChapters {
		for pi := 0; pi < sampleChapters[ci].pages; pi++ {
			body := prosePage(ci, pi)
			require.NotEmpty(t, body)
			seen[body] = true
		}
	}
	// the cycling strides must not collapse the book into repeats
	require.Greater(t, len(seen), 15)
}
