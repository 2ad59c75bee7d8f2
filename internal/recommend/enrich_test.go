package recommend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hoanghai1803/loquat/internal/models"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Deep Sky</title>
    <description>A show about backyard astronomy and stargazing.</description>
    <link>https://example.com</link>
  </channel>
</rss>`

func TestEnrichAllFillsPlaceholderDescriptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testFeed))
	}))
	defer srv.Close()

	podcasts := []models.Podcast{
		{ID: "p1", Description: models.DefaultDescription, RSSURL: srv.URL + "/feed"},
		{ID: "p2", Description: "Already has a description.", RSSURL: srv.URL + "/feed"},
		{ID: "p3", Description: models.DefaultDescription}, // no RSS URL
	}

	NewFeedEnricher().EnrichAll(context.Background(), podcasts)

	if want := "A show about backyard astronomy and stargazing."; podcasts[0].Description != want {
		t.Errorf("p1 description = %q, want feed description", podcasts[0].Description)
	}
	if podcasts[1].Description != "Already has a description." {
		t.Errorf("p2 description changed: %q", podcasts[1].Description)
	}
	if podcasts[2].Description != models.DefaultDescription {
		t.Errorf("p3 description changed without an RSS URL: %q", podcasts[2].Description)
	}
}

func TestEnrichAllToleratesFeedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	podcasts := []models.Podcast{
		{ID: "p1", Description: models.DefaultDescription, RSSURL: srv.URL + "/feed"},
	}

	NewFeedEnricher().EnrichAll(context.Background(), podcasts)

	if podcasts[0].Description != models.DefaultDescription {
		t.Errorf("description = %q, want untouched placeholder on feed failure", podcasts[0].Description)
	}
}
