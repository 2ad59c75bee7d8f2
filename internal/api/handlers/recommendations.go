package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hoanghai1803/loquat/internal/models"
	"github.com/hoanghai1803/loquat/internal/recommend"
)

// favoritesRequest is the request body for endpoints seeded by a favorites
// set. Favorites arrive as raw catalog payloads and are standardized before
// entering the pipeline.
type favoritesRequest struct {
	Favorites []map[string]any `json:"favorites"`
}

// recommendationsResponse is the response body for POST /api/recommendations.
type recommendationsResponse struct {
	Recommendations []models.Recommendation `json:"recommendations"`
	Count           int                     `json:"count"`
}

// GenerateRecommendations handles POST /api/recommendations. It standardizes
// the submitted favorites, collects candidates from the catalog, and runs
// the ranking pipeline. An empty recommendation list is a normal response,
// not an error: the front end renders it as an empty state.
func GenerateRecommendations(svc *recommend.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req favoritesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if len(req.Favorites) == 0 {
			writeError(w, http.StatusBadRequest, "At least one favorite podcast is required")
			return
		}

		favorites := models.StandardizeAll(req.Favorites)
		candidates := svc.CandidatePodcasts(ctx, favorites)
		recommendations := svc.GenerateRecommendations(ctx, favorites, candidates)

		writeJSON(w, http.StatusOK, recommendationsResponse{
			Recommendations: recommendations,
			Count:           len(recommendations),
		})
	}
}

// GetCandidates handles POST /api/candidates. It returns the deduplicated
// candidate pool for the submitted favorites without ranking it; useful for
// inspecting what the collector found.
func GetCandidates(svc *recommend.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req favoritesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if len(req.Favorites) == 0 {
			writeError(w, http.StatusBadRequest, "At least one favorite podcast is required")
			return
		}

		favorites := models.StandardizeAll(req.Favorites)
		candidates := svc.CandidatePodcasts(ctx, favorites)
		if candidates == nil {
			candidates = []models.Podcast{}
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"candidates": candidates,
			"count":      len(candidates),
		})
	}
}
