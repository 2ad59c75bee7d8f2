package handlers

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hoanghai1803/loquat/internal/models"
	"github.com/hoanghai1803/loquat/internal/recommend"
)

// testEmbedder is a deterministic bag-of-words embedder.
type testEmbedder struct{}

func (testEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	vec := make([]float64, 64)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[h.Sum32()%64]++
	}
	return vec, nil
}

// testCatalog returns a fixed candidate pool for every request.
type testCatalog struct {
	podcasts []models.Podcast
}

func (c *testCatalog) SearchByText(context.Context, recommend.SearchQuery) ([]models.Podcast, error) {
	return c.podcasts, nil
}

func (c *testCatalog) BestInGenre(context.Context, int, int) ([]models.Podcast, error) {
	return c.podcasts, nil
}

func newTestService(podcasts []models.Podcast) *recommend.Service {
	engine := recommend.NewEngine(testEmbedder{}, nil, 64)
	collector := recommend.NewCollector(&testCatalog{podcasts: podcasts}, nil)
	return recommend.NewService(engine, collector, 10)
}

func favoritesBody() string {
	return `{
		"favorites": [
			{
				"id": "fav1",
				"title_original": "Founder Stories",
				"description_original": "startup founders venture capital growth interviews",
				"publisher_original": "Acme Audio",
				"genre_ids": [93]
			}
		]
	}`
}

func TestGenerateRecommendationsHandler(t *testing.T) {
	candidates := []models.Podcast{
		{ID: "c1", Title: "Startup Digest", Description: "startup funding venture founders", Publisher: "Beta", GenreIDs: []int{93}},
		{ID: "c2", Title: "Garden Time", Description: "vegetables compost soil seasons", Publisher: "Green"},
	}
	handler := GenerateRecommendations(newTestService(candidates))

	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(favoritesBody()))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Recommendations []models.Recommendation `json:"recommendations"`
		Count           int                     `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.Count != len(resp.Recommendations) {
		t.Errorf("count = %d but %d recommendations", resp.Count, len(resp.Recommendations))
	}
	if len(resp.Recommendations) == 0 {
		t.Fatal("no recommendations returned for overlapping content")
	}
	if resp.Recommendations[0].Podcast.ID != "c1" {
		t.Errorf("top recommendation = %s, want the startup candidate", resp.Recommendations[0].Podcast.ID)
	}
	if resp.Recommendations[0].Reason == "" {
		t.Error("top recommendation has empty reason")
	}
}

func TestGenerateRecommendationsHandlerBadInput(t *testing.T) {
	handler := GenerateRecommendations(newTestService(nil))

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", "{not json"},
		{"missing favorites", `{}`},
		{"empty favorites", `{"favorites": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestGenerateRecommendationsHandlerEmptyCatalog(t *testing.T) {
	handler := GenerateRecommendations(newTestService(nil))

	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(favoritesBody()))
	rec := httptest.NewRecorder()
	handler(rec, req)

	// No candidates is a friendly empty state, not an error.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Recommendations []models.Recommendation `json:"recommendations"`
		Count           int                     `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 0 || len(resp.Recommendations) != 0 {
		t.Errorf("expected empty result, got %+v", resp)
	}
}

func TestGetCandidatesHandler(t *testing.T) {
	candidates := []models.Podcast{
		{ID: "c1", Title: "Startup Digest", Description: "startup funding", Publisher: "Beta"},
	}
	handler := GetCandidates(newTestService(candidates))

	req := httptest.NewRequest(http.MethodPost, "/api/candidates", strings.NewReader(favoritesBody()))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Candidates []models.Podcast `json:"candidates"`
		Count      int              `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 1 || len(resp.Candidates) != 1 {
		t.Errorf("candidates = %+v, want exactly one", resp)
	}
}
