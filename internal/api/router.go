package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hoanghai1803/loquat/internal/api/handlers"
	"github.com/hoanghai1803/loquat/internal/catalog"
	"github.com/hoanghai1803/loquat/internal/recommend"
)

// NewRouter creates and configures the HTTP router with all API routes.
func NewRouter(svc *recommend.Service, cat *catalog.Client) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(RequestLogger)
	r.Use(Recovery)
	r.Use(CORS)

	r.Route("/api", func(api chi.Router) {
		api.Post("/recommendations", handlers.GenerateRecommendations(svc))
		api.Post("/candidates", handlers.GetCandidates(svc))

		api.Get("/search", handlers.SearchPodcasts(cat))
		api.Get("/genres", handlers.GetGenres(cat))

		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
	})

	return r
}
