package recommend

import (
	"sort"
	"strings"

	"github.com/hoanghai1803/loquat/internal/models"
)

const (
	maxQueries       = 3
	queryPageSize    = 20
	topicsPerFav     = 10
	keywordPoolSize  = 10
	minQueryTermSize = 4
)

// SearchQuery is one catalog text-search request. Fields beyond Text are
// fixed by the diversifier so every query hits the same search surface:
// podcasts only, relevance-sorted, matched against descriptions.
type SearchQuery struct {
	Text       string
	Type       string
	SortByDate bool
	PageSize   int
	OnlyIn     string
	SafeMode   bool
}

// newSearchQuery builds a query with the diversifier's fixed parameters.
func newSearchQuery(text string) SearchQuery {
	return SearchQuery{
		Text:       text,
		Type:       "podcast",
		SortByDate: false,
		PageSize:   queryPageSize,
		OnlyIn:     "description",
		SafeMode:   false,
	}
}

// DiverseQueries derives at most three distinct catalog search queries from
// a favorites set: the strongest cross-favorite theme, the top shared
// description keyword, and a second theme when one exists. Themes are topics
// that occur in more than one favorite's description. Structurally identical
// queries are deduplicated.
func DiverseQueries(favorites []models.Podcast) []SearchQuery {
	if len(favorites) == 0 {
		return nil
	}

	themes := crossFavoriteThemes(favorites)

	var queries []SearchQuery
	if len(themes) > 0 {
		queries = append(queries, newSearchQuery(themes[0]))
	}

	if kw := topSharedKeyword(favorites); kw != "" {
		queries = append(queries, newSearchQuery(kw))
	}

	if len(themes) > 1 {
		queries = append(queries, newSearchQuery(themes[1]))
	}

	return dedupeQueries(queries)
}

// crossFavoriteThemes extracts each favorite's top description topics and
// keeps the terms appearing in more than one favorite, ordered by how many
// favorites share them, at most three.
func crossFavoriteThemes(favorites []models.Podcast) []string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, fav := range favorites {
		seen := make(map[string]struct{})
		for _, topic := range ExtractTopics(fav.Description, topicsPerFav) {
			if _, dup := seen[topic.Term]; dup {
				continue
			}
			seen[topic.Term] = struct{}{}
			if counts[topic.Term] == 0 {
				order = append(order, topic.Term)
			}
			counts[topic.Term]++
		}
	}

	shared := make([]string, 0, len(order))
	for _, term := range order {
		if counts[term] > 1 {
			shared = append(shared, term)
		}
	}
	sort.SliceStable(shared, func(i, j int) bool {
		return counts[shared[i]] > counts[shared[j]]
	})

	if len(shared) > maxQueries {
		shared = shared[:maxQueries]
	}
	return shared
}

// topSharedKeyword extracts the leading keyword from the favorites' combined
// descriptions, skipping short terms and terms that are just a favorite's
// publisher name.
func topSharedKeyword(favorites []models.Podcast) string {
	publishers := make(map[string]struct{}, len(favorites))
	for _, fav := range favorites {
		publishers[strings.ToLower(fav.Publisher)] = struct{}{}
	}

	var combined strings.Builder
	for _, fav := range favorites {
		combined.WriteString(fav.Description)
		combined.WriteString(" ")
	}

	for _, kw := range ExtractKeywords(combined.String(), keywordPoolSize) {
		if len(kw) < minQueryTermSize {
			continue
		}
		if _, ok := publishers[kw]; ok {
			continue
		}
		return kw
	}
	return ""
}

// dedupeQueries removes structurally identical queries, preserving order.
func dedupeQueries(queries []SearchQuery) []SearchQuery {
	seen := make(map[SearchQuery]struct{}, len(queries))
	out := queries[:0]
	for _, q := range queries {
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}
	return out
}
