package views

import (
	"strings"

	"marketpulse/internal/domain/news"
)

// News filters articles by category ("all" or empty keeps everything) and
// then by a case-insensitive substring search over title, source and
// summary. The input order is preserved; news carries no implicit re-sort.
func News(articles []news.Article, category, query string) []news.Article {
	out := make([]news.Article, 0, len(articles))
	q := strings.ToLower(query)
	for _, a := range articles {
		if category != "" && category != "all" && a.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(a.Title), q) &&
			!strings.Contains(strings.ToLower(a.Source), q) &&
			!strings.Contains(strings.ToLower(a.Summary), q) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// NewsCategories lists the distinct categories of the unfiltered collection
// in first-seen order, for the filter buttons.
func NewsCategories(articles []news.Article) []string {
	seen := make(map[string]bool, len(articles))
	var out []string
	for _, a := range articles {
		if a.Category == "" || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		out = append(out, a.Category)
	}
	return out
}
