package recommend

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/hoanghai1803/loquat/internal/models"
)

const (
	feedTimeout        = 15 * time.Second
	maxConcurrentFeeds = 5
)

// FeedEnricher fills in placeholder descriptions by reading the podcast's
// own RSS feed. Catalog search results occasionally arrive without a usable
// description even though the show's feed carries one.
type FeedEnricher struct {
	client *http.Client
}

// NewFeedEnricher creates a FeedEnricher with a 15-second timeout client.
func NewFeedEnricher() *FeedEnricher {
	return &FeedEnricher{
		client: &http.Client{
			Timeout:   feedTimeout,
			Transport: &userAgentTransport{base: http.DefaultTransport},
		},
	}
}

// userAgentTransport injects a browser-like User-Agent; several podcast
// hosts reject requests with the default Go user agent.
type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "application/rss+xml,application/xml;q=0.9,*/*;q=0.8")
	return t.base.RoundTrip(req)
}

// EnrichAll replaces placeholder descriptions in place for podcasts that
// carry an RSS URL, fetching feeds concurrently. Feed failures are logged
// and leave the placeholder untouched.
func (e *FeedEnricher) EnrichAll(ctx context.Context, podcasts []models.Podcast) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFeeds)

	for i := range podcasts {
		if podcasts[i].Description != models.DefaultDescription || podcasts[i].RSSURL == "" {
			continue
		}
		g.Go(func() error {
			desc, err := e.channelDescription(gctx, podcasts[i].RSSURL)
			if err != nil {
				slog.Warn("feed enrichment failed",
					"podcast_id", podcasts[i].ID,
					"rss_url", podcasts[i].RSSURL,
					"error", err,
				)
				return nil
			}
			if desc != "" {
				podcasts[i].Description = desc
			}
			return nil
		})
	}

	_ = g.Wait()
}

// channelDescription fetches and parses the feed, returning its channel
// description.
func (e *FeedEnricher) channelDescription(ctx context.Context, rssURL string) (string, error) {
	fp := gofeed.NewParser()
	fp.Client = e.client

	feed, err := fp.ParseURLWithContext(rssURL, ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(feed.Description), nil
}
