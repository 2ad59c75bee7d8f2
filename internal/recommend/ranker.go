package recommend

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/hoanghai1803/loquat/internal/models"
)

const rankerTopicCount = 15

// ScoredCandidate is the ephemeral per-ranking-pass record for one
// candidate: its best-matching favorite, that pairing's score breakdown, and
// the aggregate score used for ordering. It is rebuilt on every ranking
// invocation and never persisted.
type ScoredCandidate struct {
	Podcast models.Podcast

	// BestMatch is the index into the favorites slice of the pairing with
	// the highest combined score, or -1 when no pairing was scored.
	BestMatch int

	// Scores from the best pairing, reported alongside the recommendation.
	SemanticScore float64
	TopicScore    float64
	CombinedScore float64

	// SimilarityScore is the mean combined score across all favorite
	// pairings and determines sort order. Ranking by the mean while
	// reporting the best pairing's scores is deliberate.
	SimilarityScore float64
}

// podcastProfile caches the per-podcast features computed once per ranking
// pass.
type podcastProfile struct {
	embedding []float64
	topics    []models.Topic
}

// Ranker scores candidates against favorites using the similarity engine.
type Ranker struct {
	engine *Engine
}

// NewRanker creates a Ranker backed by the given engine.
func NewRanker(engine *Engine) *Ranker {
	return &Ranker{engine: engine}
}

// Rank scores every candidate against every favorite and returns the
// candidates sorted by aggregate similarity, highest first. The sort is
// stable, so candidates with equal scores keep collection order. Embeddings
// for all podcasts are requested concurrently before any scoring.
func (r *Ranker) Rank(ctx context.Context, favorites, candidates []models.Podcast) []ScoredCandidate {
	if len(favorites) == 0 || len(candidates) == 0 {
		return nil
	}

	favProfiles := r.buildProfiles(ctx, favorites)
	candProfiles := r.buildProfiles(ctx, candidates)

	scored := make([]ScoredCandidate, len(candidates))
	for ci, cand := range candidates {
		sc := ScoredCandidate{Podcast: cand, BestMatch: -1}

		var sum float64
		for fi := range favorites {
			semantic := CosineSimilarity(favProfiles[fi].embedding, candProfiles[ci].embedding)
			topic := TopicSimilarity(favProfiles[fi].topics, candProfiles[ci].topics)
			combined := semantic*semanticShare + topic*topicMatchWeight*topicShare

			sum += combined
			if sc.BestMatch < 0 || combined > sc.CombinedScore {
				sc.BestMatch = fi
				sc.SemanticScore = semantic
				sc.TopicScore = topic
				sc.CombinedScore = combined
			}
		}
		sc.SimilarityScore = sum / float64(len(favorites))
		scored[ci] = sc
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].SimilarityScore > scored[j].SimilarityScore
	})
	return scored
}

// buildProfiles computes each podcast's weighted-text embedding and top
// description topics. Embedding calls run concurrently; topic extraction is
// pure CPU work and happens inline.
func (r *Ranker) buildProfiles(ctx context.Context, podcasts []models.Podcast) []podcastProfile {
	profiles := make([]podcastProfile, len(podcasts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentIO)
	for i := range podcasts {
		g.Go(func() error {
			profiles[i].embedding = r.engine.Embed(gctx, WeightedText(podcasts[i]))
			return nil
		})
	}

	for i := range podcasts {
		profiles[i].topics = ExtractTopics(podcasts[i].Description, rankerTopicCount)
	}

	// Embed never returns an error; Wait only synchronizes.
	_ = g.Wait()
	return profiles
}
