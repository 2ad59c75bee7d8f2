package recommend

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/hoanghai1803/loquat/internal/models"
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Preprocess normalizes raw podcast text for feature extraction: lowercase,
// HTML tags stripped, punctuation removed, whitespace collapsed and trimmed.
// It is pure and idempotent; empty input yields an empty string.
func Preprocess(text string) string {
	if text == "" {
		return ""
	}
	s := strings.ToLower(text)
	s = htmlTagPattern.ReplaceAllString(s, " ")
	s = nonWordPattern.ReplaceAllString(s, " ")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// filterTokens removes stop words, podcast-domain jargon, very short tokens,
// and tokens that parse as numbers. Order is preserved.
func filterTokens(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) <= 2 {
			continue
		}
		if _, ok := stopwords[tok]; ok {
			continue
		}
		if _, ok := jargonWords[tok]; ok {
			continue
		}
		if _, err := strconv.ParseFloat(tok, 64); err == nil {
			continue
		}
		filtered = append(filtered, tok)
	}
	return filtered
}

// tokenize splits preprocessed text on whitespace.
func tokenize(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Fields(text)
}

// ExtractTopics returns the top n terms of the text weighted by
// single-document TF-IDF, highest score first. With a one-document corpus
// the IDF factor is constant, so scores reduce to normalized term frequency;
// ties keep first-seen order. Invalid or empty input returns an empty slice.
func ExtractTopics(text string, n int) []models.Topic {
	tokens := filterTokens(tokenize(Preprocess(text)))
	if len(tokens) == 0 || n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	topics := make([]models.Topic, 0, len(order))
	total := float64(len(tokens))
	for _, term := range order {
		if len(term) <= 2 {
			continue
		}
		tf := float64(counts[term]) / total
		topics = append(topics, models.Topic{Term: term, Score: tf})
	}

	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].Score > topics[j].Score
	})

	if len(topics) > n {
		topics = topics[:n]
	}
	return topics
}

// ExtractKeywords returns the top n tokens of the text by descending
// frequency, ties broken by first appearance. Terms are lowercase.
func ExtractKeywords(text string, n int) []string {
	tokens := filterTokens(tokenize(Preprocess(text)))
	if len(tokens) == 0 || n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}

// ExtractMeaningfulKeywords derives a single space-joined search string from
// a favorites set. Each favorite contributes its top five keywords from
// title plus double-weighted description; keywords are then ranked by how
// many favorites surfaced them, ties alphabetical, and the top n are kept.
func ExtractMeaningfulKeywords(favorites []models.Podcast, n int) string {
	if len(favorites) == 0 || n <= 0 {
		return ""
	}

	counts := make(map[string]int)
	for _, fav := range favorites {
		text := fav.Title + " " + fav.Description + " " + fav.Description
		for _, kw := range ExtractKeywords(text, 5) {
			counts[kw]++
		}
	}
	if len(counts) == 0 {
		return ""
	}

	keywords := make([]string, 0, len(counts))
	for kw := range counts {
		keywords = append(keywords, kw)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return strings.Join(keywords, " ")
}
