// Package recommend implements the podcast recommendation pipeline: text
// feature extraction, query diversification, candidate collection,
// embedding and topic similarity scoring, ranking, and explanation
// generation. Every external failure inside the pipeline degrades to an
// empty or zero-valued result; nothing in this package aborts a
// recommendation request.
package recommend

import (
	"context"
	"log/slog"

	"github.com/hoanghai1803/loquat/internal/models"
)

const defaultMaxRecommendations = 10

// Service is the recommendation pipeline's entry point for callers such as
// HTTP handlers.
type Service struct {
	ranker     *Ranker
	collector  *Collector
	maxResults int
}

// NewService wires the pipeline together. maxResults caps the returned
// recommendation list; non-positive values fall back to the default of 10.
func NewService(engine *Engine, collector *Collector, maxResults int) *Service {
	if maxResults <= 0 {
		maxResults = defaultMaxRecommendations
	}
	return &Service{
		ranker:     NewRanker(engine),
		collector:  collector,
		maxResults: maxResults,
	}
}

// CandidatePodcasts collects the deduplicated candidate pool for the given
// favorites. An empty pool is a valid, non-error outcome.
func (s *Service) CandidatePodcasts(ctx context.Context, favorites []models.Podcast) []models.Podcast {
	return s.collector.Collect(ctx, favorites)
}

// GenerateRecommendations ranks the candidates against the favorites and
// returns at most maxResults explained recommendations, best first. Either
// input being empty yields an empty list. The displayed similarity score is
// the best pairing's combined score; ordering follows the mean across all
// favorites (see Ranker).
func (s *Service) GenerateRecommendations(ctx context.Context, favorites, candidates []models.Podcast) []models.Recommendation {
	if len(favorites) == 0 || len(candidates) == 0 {
		return []models.Recommendation{}
	}

	scored := s.ranker.Rank(ctx, favorites, candidates)

	recommendations := make([]models.Recommendation, 0, s.maxResults)
	for _, sc := range scored {
		if sc.BestMatch < 0 || sc.BestMatch >= len(favorites) {
			continue
		}
		matched := favorites[sc.BestMatch]

		recommendations = append(recommendations, models.Recommendation{
			Podcast:         sc.Podcast,
			SimilarityScore: sc.CombinedScore,
			SemanticScore:   sc.SemanticScore,
			TopicScore:      sc.TopicScore,
			Reason:          GenerateMatchReason(sc.Podcast, matched, sc.SemanticScore, sc.TopicScore),
			MostSimilarTo:   matched.ID,
		})
		if len(recommendations) == s.maxResults {
			break
		}
	}

	slog.Info("generated recommendations",
		"favorites", len(favorites),
		"candidates", len(candidates),
		"results", len(recommendations),
	)
	return recommendations
}
