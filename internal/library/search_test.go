package library

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func chapterFixture() []ChapterSummary {
	mk := func(pos int, title string, start, count int) ChapterSummary {
		return ChapterSummary{
			Chapter:   Chapter{ID: title, BookID: "b1", Position: pos, Title: title},
			StartPage: start,
			PageCount: count,
		}
	}
	return []ChapterSummary{
		mk(1, "Harbor Lights", 1, 5),
		mk(2, "The Crossing", 6, 6),
		mk(3, "Paper Streets", 12, 5),
		mk(4, "North of the Orchard", 17, 4),
	}
}

func titlesOf(matches []ChapterMatch) []string {
	return lo.Map(matches, func(m ChapterMatch, _ int) string { return m.Title })
}

func TestRankChaptersEmptyQueryKeepsBookOrder(t *testing.T) {
	t.Parallel()

	got := RankChapters("", chapterFixture())
	require.Equal(t, []string{"Harbor Lights", "The Crossing", "Paper Streets", "North of the Orchard"}, titlesOf(got))
	for _, m := range got {
		require.Equal(t, 1.0, m.Score)
	}
}

func TestRankChaptersExactTitleWins(t *testing.T) {
	t.Parallel()

	got := RankChapters("paper streets", chapterFixture())
	require.NotEmpty(t, got)
	require.Equal(t, "Paper Streets", got[0].Title)
	require.Equal(t, 1.0, got[0].Score)
}

func TestRankChaptersSubstringMatches(t *testing.T) {
	t.Parallel()

	got := RankChapters("cross", chapterFixture())
	require.Equal(t, []string{"The Crossing"}, titlesOf(got))
	require.Greater(t, got[0].Score, 0.5)
}

func TestRankChaptersTypoStillMatches(t *testing.T) {
	t.Parallel()

	got := RankChapters("harbr lights", chapterFixture())
	require.NotEmpty(t, got)
	require.Equal(t, "Harbor Lights", got[0].Title)
}

func TestRankChaptersDropsUnrelated(t *testing.T) {
	t.Parallel()

	got := RankChapters("zzzzzz", chapterFixture())
	require.Empty(t, got)
}

func TestRankChaptersTighterSubstringRanksHigher(t *testing.T) {
	t.Parallel()

	chapters := append(chapterFixture(), ChapterSummary{
		Chapter:   Chapter{ID: "x", BookID: "b1", Position: 5, Title: "Lights"},
		StartPage: 21,
		PageCount: 1,
	})
	got := RankChapters("lights", chapters)
	require.GreaterOrEqual(t, len(got), 2)
	require.Equal(t, "Lights", got[0].Title)
	require.Equal(t, "Harbor Lights", got[1].Title)
}
