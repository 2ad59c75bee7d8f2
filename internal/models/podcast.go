package models

// Default values substituted during standardization when a source field is
// missing from the raw catalog payload.
const (
	DefaultTitle       = "Unknown Podcast"
	DefaultDescription = "No description available"
	DefaultPublisher   = "Unknown Publisher"
)

// Podcast is the standardized representation of a show from the catalog.
// Every semantic field is guaranteed non-empty after standardization.
type Podcast struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Publisher    string         `json:"publisher"`
	GenreIDs     []int          `json:"genre_ids"`
	ThumbnailURL string         `json:"thumbnail_url,omitempty"`
	WebsiteURL   string         `json:"website_url,omitempty"`
	RSSURL       string         `json:"rss_url,omitempty"`
	Explicit     bool           `json:"explicit"`
	Extra        map[string]any `json:"extra,omitempty"`
}

// Topic is a TF-IDF-weighted term extracted from a podcast's description.
type Topic struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// Recommendation is a single ranked, explained result.
type Recommendation struct {
	Podcast         Podcast `json:"podcast"`
	SimilarityScore float64 `json:"similarity_score"`
	SemanticScore   float64 `json:"semantic_score"`
	TopicScore      float64 `json:"topic_score"`
	Reason          string  `json:"reason"`
	MostSimilarTo   string  `json:"most_similar_to"`
}
