package library

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/samber/lo"
)

// ChapterMatch pairs a chapter with its similarity to a search query.
type ChapterMatch struct {
	ChapterSummary
	Score float64
}

// RankChapters scores chapters against a free-text query and returns them
// best match first. An empty query keeps book order with a neutral score;
// chapters that bear no resemblance to the query are dropped.
func RankChapters(query string, chapters []ChapterSummary) []ChapterMatch {
	q := normalizeTitle(query)
	if q == "" {
		return lo.Map(chapters, func(c ChapterSummary, _ int) ChapterMatch {
			return ChapterMatch{ChapterSummary: c, Score: 1}
		})
	}
	matches := make([]ChapterMatch, 0, len(chapters))
	for _, c := range chapters {
		score := titleScore(q, normalizeTitle(c.Title))
		if score <= 0 {
			continue
		}
		matches = append(matches, ChapterMatch{ChapterSummary: c, Score: score})
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	return matches
}

// titleScore blends substring containment with normalized edit distance:
// substrings always outrank pure fuzz, and within each band a tighter fit
// ranks higher.
func titleScore(query, title string) float64 {
	if title == query {
		return 1
	}
	if strings.Contains(title, query) {
		return 0.5 + 0.4*float64(len(query))/float64(len(title))
	}
	dist := levenshtein.ComputeDistance(query, title)
	sim := 1 - float64(dist)/float64(max(len(query), len(title)))
	if sim < 0.35 {
		return 0
	}
	return sim * 0.8
}

func normalizeTitle(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }
