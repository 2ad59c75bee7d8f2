package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hoanghai1803/loquat/internal/catalog"
	"github.com/hoanghai1803/loquat/internal/models"
	"github.com/hoanghai1803/loquat/internal/recommend"
)

// SearchPodcasts handles GET /api/search?q={query}&limit={limit}. It proxies
// a text search to the catalog and returns standardized podcasts.
func SearchPodcasts(cat *catalog.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		q := r.URL.Query().Get("q")
		if q == "" {
			writeJSON(w, http.StatusOK, []models.Podcast{})
			return
		}

		limit := 10
		if l := r.URL.Query().Get("limit"); l != "" {
			if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		query := recommend.SearchQuery{
			Text:     q,
			Type:     "podcast",
			PageSize: limit,
			OnlyIn:   "title,description",
		}
		podcasts, err := cat.SearchByText(ctx, query)
		if err != nil {
			slog.Error("catalog search failed", "query", q, "error", err)
			writeError(w, http.StatusBadGateway, "Catalog search failed")
			return
		}

		writeJSON(w, http.StatusOK, podcasts)
	}
}

// GetGenres handles GET /api/genres, passing through the catalog's genre
// listing.
func GetGenres(cat *catalog.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		genres, err := cat.Genres(r.Context())
		if err != nil {
			slog.Error("failed to fetch genres", "error", err)
			writeError(w, http.StatusBadGateway, "Failed to fetch genres")
			return
		}
		writeJSON(w, http.StatusOK, genres)
	}
}
