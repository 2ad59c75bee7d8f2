package recommend

import (
	"fmt"
	"strings"

	"github.com/hoanghai1803/loquat/internal/models"
)

// GenerateMatchReason builds a human-readable justification for recommending
// a candidate based on its best-matching favorite. The text combines genre
// overlap, shared description keywords, a thematic-overlap phrase chosen by
// the topic score, and a closing phrase chosen by the combined score.
func GenerateMatchReason(candidate, matched models.Podcast, semanticScore, topicScore float64) string {
	combined := semanticScore*semanticShare + topicScore*topicMatchWeight*topicShare

	if matched.Title == "" {
		return fmt.Sprintf("Match score: %.0f%%", clampScore(combined)*100)
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("Similar to %q", matched.Title))

	if sharesGenre(candidate.GenreIDs, matched.GenreIDs) {
		parts = append(parts, "shares the same genre")
	}

	if shared := sharedKeywords(candidate.Description, matched.Description, 3); len(shared) > 0 {
		parts = append(parts, "covers related topics: "+strings.Join(shared, ", "))
	}

	switch {
	case topicScore > 0.4:
		parts = append(parts, "strong thematic overlap")
	case topicScore > 0.2:
		parts = append(parts, "some thematic overlap")
	}

	var closing string
	switch {
	case combined > 0.85:
		closing = "a very strong match for your taste"
	case combined > 0.7:
		closing = "a strong match for your taste"
	case combined > 0.5:
		closing = "a moderate match for your taste"
	default:
		closing = "some similarities to what you enjoy"
	}

	return strings.Join(parts, "; ") + ". Overall, " + closing + "."
}

// sharesGenre reports whether the two genre id sets intersect.
func sharesGenre(a, b []int) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[int]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}

// sharedKeywords returns up to max keywords that appear in both descriptions,
// in the candidate's keyword order.
func sharedKeywords(descA, descB string, max int) []string {
	kwA := ExtractKeywords(descA, 10)
	kwB := ExtractKeywords(descB, 10)
	if len(kwA) == 0 || len(kwB) == 0 {
		return nil
	}

	setB := make(map[string]struct{}, len(kwB))
	for _, kw := range kwB {
		setB[kw] = struct{}{}
	}

	var shared []string
	for _, kw := range kwA {
		if _, ok := setB[kw]; ok {
			shared = append(shared, kw)
			if len(shared) == max {
				break
			}
		}
	}
	return shared
}

// clampScore bounds a score to [0, 1] for display. Scoring itself never
// clamps; the combined score can exceed 1 when the topic component is high.
func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
