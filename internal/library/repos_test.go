package library

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBookRepoUpsertAndLookup(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)
	db := openTestDB(t)
	books := NewBookRepo(db)

	require.NoError(t, books.Upsert(ctx, Book{ID: "b1", Title: "First Draft", Author: "A. Author"}))

	got, err := books.Get(ctx, "b1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "First Draft", got.Title)

	missing, err := books.Get(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)

	first, err := books.First(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	require.Equal(t, "b1", first.ID)

	// upserting the same id updates in place
	require.NoError(t, books.Upsert(ctx, Book{ID: "b1", Title: "Final Title", Author: "A. Author"}))
	got, err = books.Get(ctx, "b1")
	require.NoError(t, err)
	require.Equal(t, "Final Title", got.Title)

	require.NoError(t, books.Upsert(ctx, Book{ID: "b2", Title: "Another"}))
	list, err := books.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Another", list[0].Title)
	require.Equal(t, "Final Title", list[1].Title)
}

func TestChapterSummariesSpanTheBook(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)
	db := openTestDB(t)
	require.NoError(t, SeedSampleBook(ctx, db))

	book, err := NewBookRepo(db).First(ctx)
	require.NoError(t, err)
	require.NotNil(t, book)

	sums, err := NewChapterRepo(db).Summaries(ctx, book.ID)
	require.NoError(t, err)
	require.Len(t, sums, 4)

	wantStarts := []int{1, 6, 12, 17}
	wantCounts := []int{5, 6, 5, 4}
	for i, s := range sums {
		require.Equal(t, i+1, s.Position)
		require.Equal(t, wantStarts[i], s.StartPage)
		require.Equal(t, wantCounts[i], s.PageCount)
		require.NotEmpty(t, s.Title)
	}
}

func TestChapterForPage(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)
	db := openTestDB(t)
	require.NoError(t, SeedSampleBook(ctx, db))

	book, err := NewBookRepo(db).First(ctx)
	require.NoError(t, err)
	chapters := NewChapterRepo(db)

	ch, err := chapters.ForPage(ctx, book.ID, 7)
	require.NoError(t, err)
	require.NotNil(t, ch)
	require.Equal(t, "The Crossing", ch.Title)

	ch, err = chapters.ForPage(ctx, book.ID, 20)
	require.NoError(t, err)
	require.NotNil(t, ch)
	require.Equal(t, "North of the Orchard", ch.Title)

	for _, pos := range []int{0, 21} {
		ch, err = chapters.ForPage(ctx, book.ID, pos)
		require.NoError(t, err)
		require.Nil(t, ch)
	}
}

func TestPageRepoByPositionAndCount(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)
	db := openTestDB(t)
	require.NoError(t, SeedSampleBook(ctx, db))

	book, err := NewBookRepo(db).First(ctx)
	require.NoError(t, err)
	pages := NewPageRepo(db)

	n, err := pages.Count(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 20, n)

	first, err := pages.ByPosition(ctx, book.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, first)
	require.NotEmpty(t, first.Body)

	second, err := pages.ByPosition(ctx, book.ID, 2)
	require.NoError(t, err)
	require.NotNil(t, second)
	require.NotEqual(t, first.Body, second.Body)

	last, err := pages.ByPosition(ctx, book.ID, 20)
	require.NoError(t, err)
	require.NotNil(t, last)

	for _, pos := range []int{0, 21} {
		p, err := pages.ByPosition(ctx, book.ID, pos)
		require.NoError(t, err)
		require.Nil(t, p)
	}
}
