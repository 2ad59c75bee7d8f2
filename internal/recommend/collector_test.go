package recommend

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hoanghai1803/loquat/internal/models"
)

// fakeCatalog serves canned results and records calls. The collector issues
// requests concurrently, so call recording is mutex protected.
type fakeCatalog struct {
	genreResults  map[int][]models.Podcast
	searchResults []models.Podcast
	genreErr      error
	searchErr     error

	mu          sync.Mutex
	genreCalls  []int
	searchCalls []SearchQuery
}

func (f *fakeCatalog) BestInGenre(_ context.Context, genreID, _ int) ([]models.Podcast, error) {
	f.mu.Lock()
	f.genreCalls = append(f.genreCalls, genreID)
	f.mu.Unlock()
	if f.genreErr != nil {
		return nil, f.genreErr
	}
	return f.genreResults[genreID], nil
}

func (f *fakeCatalog) SearchByText(_ context.Context, query SearchQuery) ([]models.Podcast, error) {
	f.mu.Lock()
	f.searchCalls = append(f.searchCalls, query)
	f.mu.Unlock()
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResults, nil
}

func collectorFavorites() []models.Podcast {
	favorites := sharedThemeFavorites()
	favorites[0].GenreIDs = []int{93, 127}
	favorites[1].GenreIDs = []int{127, 67}
	return favorites
}

func TestCollectDeduplicatesAcrossStrategies(t *testing.T) {
	shared := models.Podcast{ID: "p1", Title: "Shared Show", Description: "about startups"}
	cat := &fakeCatalog{
		genreResults: map[int][]models.Podcast{
			93:  {shared, {ID: "p2", Title: "Genre Only"}},
			127: {{ID: "p3", Title: "Other Genre"}},
		},
		searchResults: []models.Podcast{shared, {ID: "p4", Title: "Search Only"}},
	}

	candidates := NewCollector(cat, nil).Collect(context.Background(), collectorFavorites())

	seen := make(map[string]int)
	for _, c := range candidates {
		seen[c.ID]++
	}
	if seen["p1"] != 1 {
		t.Errorf("podcast p1 appears %d times, want exactly 1", seen["p1"])
	}
	for _, id := range []string{"p2", "p3", "p4"} {
		if seen[id] != 1 {
			t.Errorf("podcast %s appears %d times, want 1", id, seen[id])
		}
	}
}

func TestCollectExcludesFavorites(t *testing.T) {
	favorites := collectorFavorites()
	cat := &fakeCatalog{
		genreResults: map[int][]models.Podcast{
			93: {{ID: favorites[0].ID, Title: "Already Favorited"}, {ID: "new1"}},
		},
	}

	candidates := NewCollector(cat, nil).Collect(context.Background(), favorites)

	for _, c := range candidates {
		if c.ID == favorites[0].ID || c.ID == favorites[1].ID {
			t.Errorf("favorite %s leaked into candidates", c.ID)
		}
	}
}

func TestCollectLimitsGenreLookups(t *testing.T) {
	cat := &fakeCatalog{genreResults: map[int][]models.Podcast{}}

	NewCollector(cat, nil).Collect(context.Background(), collectorFavorites())

	// Favorites carry three distinct genres (93, 127, 67) but only the
	// first two encountered are queried.
	if len(cat.genreCalls) != 2 {
		t.Fatalf("genre lookups = %d, want 2", len(cat.genreCalls))
	}
	got := map[int]bool{cat.genreCalls[0]: true, cat.genreCalls[1]: true}
	if !got[93] || !got[127] {
		t.Errorf("genre lookups = %v, want 93 and 127", cat.genreCalls)
	}
}

func TestCollectToleratesPartialFailure(t *testing.T) {
	cat := &fakeCatalog{
		genreErr:      errors.New("catalog down"),
		searchResults: []models.Podcast{{ID: "s1", Title: "Search Hit"}},
	}

	candidates := NewCollector(cat, nil).Collect(context.Background(), collectorFavorites())

	if len(candidates) != 1 || candidates[0].ID != "s1" {
		t.Errorf("candidates = %v, want only the search hit", candidates)
	}
}

func TestCollectAllFailuresYieldEmpty(t *testing.T) {
	cat := &fakeCatalog{
		genreErr:  errors.New("boom"),
		searchErr: errors.New("boom"),
	}

	candidates := NewCollector(cat, nil).Collect(context.Background(), collectorFavorites())
	if len(candidates) != 0 {
		t.Errorf("candidates = %v, want empty on total catalog failure", candidates)
	}
}

func TestCollectNoFavorites(t *testing.T) {
	cat := &fakeCatalog{}
	if got := NewCollector(cat, nil).Collect(context.Background(), nil); len(got) != 0 {
		t.Errorf("Collect(nil favorites) = %v, want empty", got)
	}
	if len(cat.genreCalls)+len(cat.searchCalls) != 0 {
		t.Error("catalog was queried despite empty favorites")
	}
}
