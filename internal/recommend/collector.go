package recommend

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/hoanghai1803/loquat/internal/models"
)

const (
	maxGenreLookups = 2
	genreFetchCount = 20
	maxConcurrentIO = 10
)

// Catalog is the external podcast catalog query capability. Both operations
// may fail or return nothing; the collector tolerates either.
type Catalog interface {
	SearchByText(ctx context.Context, query SearchQuery) ([]models.Podcast, error)
	BestInGenre(ctx context.Context, genreID, count int) ([]models.Podcast, error)
}

// Collector gathers candidate podcasts from the catalog for a favorites set.
type Collector struct {
	catalog  Catalog
	enricher *FeedEnricher
}

// NewCollector creates a Collector. enricher may be nil to disable RSS
// description enrichment.
func NewCollector(catalog Catalog, enricher *FeedEnricher) *Collector {
	return &Collector{catalog: catalog, enricher: enricher}
}

// Collect fetches candidates through two strategies run concurrently: top
// shows in the first two genres found across the favorites, and the
// diversified text-search queries. Results are deduplicated by id and any
// podcast already in the favorites set is dropped. Each fetch is failure
// isolated: a failed call contributes nothing without aborting the rest, so
// an empty result is a valid outcome, not an error.
func (c *Collector) Collect(ctx context.Context, favorites []models.Podcast) []models.Podcast {
	if len(favorites) == 0 {
		return nil
	}

	genres := favoriteGenres(favorites, maxGenreLookups)
	queries := DiverseQueries(favorites)

	// Fixed result slots keep collection order deterministic regardless of
	// which fetch finishes first: genre lookups, then search queries.
	results := make([][]models.Podcast, len(genres)+len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentIO)

	for i, genreID := range genres {
		g.Go(func() error {
			podcasts, err := c.catalog.BestInGenre(gctx, genreID, genreFetchCount)
			if err != nil {
				slog.Warn("genre lookup failed", "genre_id", genreID, "error", err)
				return nil
			}
			results[i] = podcasts
			return nil
		})
	}

	for i, query := range queries {
		g.Go(func() error {
			podcasts, err := c.catalog.SearchByText(gctx, query)
			if err != nil {
				slog.Warn("catalog search failed", "query", query.Text, "error", err)
				return nil
			}
			results[len(genres)+i] = podcasts
			return nil
		})
	}

	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	favoriteIDs := make(map[string]struct{}, len(favorites))
	for _, fav := range favorites {
		favoriteIDs[fav.ID] = struct{}{}
	}

	seen := make(map[string]struct{})
	var candidates []models.Podcast
	for _, batch := range results {
		for _, p := range batch {
			if _, isFavorite := favoriteIDs[p.ID]; isFavorite {
				continue
			}
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			candidates = append(candidates, p)
		}
	}

	if c.enricher != nil {
		c.enricher.EnrichAll(ctx, candidates)
	}

	slog.Info("collected candidates",
		"favorites", len(favorites),
		"genres", len(genres),
		"queries", len(queries),
		"candidates", len(candidates),
	)
	return candidates
}

// favoriteGenres returns up to max distinct genre ids across the favorites,
// in encounter order.
func favoriteGenres(favorites []models.Podcast, max int) []int {
	seen := make(map[int]struct{})
	var genres []int
	for _, fav := range favorites {
		for _, id := range fav.GenreIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			genres = append(genres, id)
			if len(genres) == max {
				return genres
			}
		}
	}
	return genres
}
