package recommend

import (
	"context"
	"log/slog"
	"math"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hoanghai1803/loquat/internal/models"
)

// Scoring weights. Weighted text repeats each field proportionally to its
// weight (minimum once), so title appears twice and description three times.
const (
	titleWeight       = 2.0
	descriptionWeight = 3.0
	publisherWeight   = 0.5
	topicMatchWeight  = 1.5

	semanticShare = 0.7
	topicShare    = 0.3
)

const (
	maxEmbedChars     = 8000
	cachePrefixLen    = 100
	defaultDimensions = 384
	defaultCacheSize  = 512
)

// Embedder converts text into a fixed-length vector. Implementations live in
// internal/embeddings; tests supply deterministic fakes.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// EmbeddingStore is an optional persistent cache layer checked behind the
// in-memory one. A nil store disables persistence.
type EmbeddingStore interface {
	GetEmbedding(ctx context.Context, prefix string) ([]float64, error)
	PutEmbedding(ctx context.Context, prefix string, vector []float64) error
}

// Engine computes embedding-based and topic-overlap similarity between
// podcasts. Embeddings are cached in a bounded LRU keyed by a text prefix;
// the cache is owned by the engine instance, so constructing a fresh engine
// resets it.
type Engine struct {
	embedder Embedder
	store    EmbeddingStore
	cache    *lru.Cache[string, []float64]
}

// NewEngine creates an Engine with a bounded embedding cache of the given
// size (a non-positive size falls back to the default). store may be nil.
func NewEngine(embedder Embedder, store EmbeddingStore, cacheSize int) *Engine {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, _ := lru.New[string, []float64](cacheSize)
	return &Engine{
		embedder: embedder,
		store:    store,
		cache:    cache,
	}
}

// WeightedText concatenates a podcast's fields with repetition proportional
// to their scoring weight. It is the canonical embedding input for a podcast.
func WeightedText(p models.Podcast) string {
	parts := make([]string, 0, 6)
	for range fieldRepeats(titleWeight) {
		parts = append(parts, p.Title)
	}
	for range fieldRepeats(descriptionWeight) {
		parts = append(parts, p.Description)
	}
	for range fieldRepeats(publisherWeight) {
		parts = append(parts, p.Publisher)
	}
	return strings.Join(parts, " ")
}

// fieldRepeats rounds a weight to a repetition count, with a floor of one so
// no field drops out of the weighted text entirely.
func fieldRepeats(weight float64) int {
	n := int(math.Round(weight))
	if n < 1 {
		n = 1
	}
	return n
}

// Embed returns the embedding for the given text. Input is truncated to
// maxEmbedChars before the provider call. Results are cached by the first
// cachePrefixLen characters; on any provider failure a zero vector of the
// default dimensionality is returned and the error is logged, never raised,
// so a failed embedding degrades scores instead of aborting the pipeline.
func (e *Engine) Embed(ctx context.Context, text string) []float64 {
	text = truncateRunes(text, maxEmbedChars)
	prefix := truncateRunes(text, cachePrefixLen)

	if vec, ok := e.cache.Get(prefix); ok {
		return vec
	}

	if e.store != nil {
		if vec, err := e.store.GetEmbedding(ctx, prefix); err == nil && len(vec) > 0 {
			e.cache.Add(prefix, vec)
			return vec
		}
	}

	vec, err := e.embedder.Embed(ctx, text)
	if err != nil || len(vec) == 0 {
		slog.Warn("embedding failed, using zero vector",
			"prefix", prefix,
			"error", err,
		)
		return make([]float64, defaultDimensions)
	}

	e.cache.Add(prefix, vec)
	if e.store != nil {
		if err := e.store.PutEmbedding(ctx, prefix, vec); err != nil {
			slog.Warn("failed to persist embedding", "error", err)
		}
	}
	return vec
}

// truncateRunes cuts s to at most n characters. The limits are character
// counts, not byte counts, so a multi-byte rune is never split in half.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths, empty vectors, or a zero magnitude all yield 0 rather
// than an error.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// TopicSimilarity measures how much of a's topic mass is covered by b:
// the sum of min(scoreA, scoreB) over shared terms, divided by the sum of
// all of a's scores. It is deliberately asymmetric.
func TopicSimilarity(a, b []models.Topic) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	bScores := make(map[string]float64, len(b))
	for _, t := range b {
		bScores[t.Term] = t.Score
	}

	var overlap, total float64
	for _, t := range a {
		total += t.Score
		if sb, ok := bScores[t.Term]; ok {
			overlap += math.Min(t.Score, sb)
		}
	}
	if total == 0 {
		return 0
	}
	return overlap / total
}
