// Package catalog provides an HTTP client for a Listen Notes compatible
// podcast catalog API. All responses are standardized at the client
// boundary, so callers only ever see models.Podcast values with every
// semantic field populated.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hoanghai1803/loquat/internal/models"
	"github.com/hoanghai1803/loquat/internal/recommend"
)

const httpTimeout = 30 * time.Second

// Compile-time check that the client satisfies the collector's catalog
// capability.
var _ recommend.Catalog = (*Client)(nil)

// Genre is one entry from the catalog's genre listing.
type Genre struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ParentID int    `json:"parent_id"`
}

// Client is an HTTP client for the catalog API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a Client for the given API base URL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

// SearchByText runs a text search against the catalog with the query's
// fixed parameters (podcast type, relevance sort, description-only match).
func (c *Client) SearchByText(ctx context.Context, query recommend.SearchQuery) ([]models.Podcast, error) {
	params := url.Values{}
	params.Set("q", query.Text)
	params.Set("type", query.Type)
	params.Set("sort_by_date", boolParam(query.SortByDate))
	params.Set("page_size", strconv.Itoa(query.PageSize))
	params.Set("only_in", query.OnlyIn)
	params.Set("safe_mode", boolParam(query.SafeMode))

	var payload struct {
		Results []map[string]any `json:"results"`
	}
	if err := c.get(ctx, "/search", params, &payload); err != nil {
		return nil, fmt.Errorf("searching catalog for %q: %w", query.Text, err)
	}
	return models.StandardizeAll(payload.Results), nil
}

// BestInGenre returns up to count top-ranked podcasts in the given genre.
func (c *Client) BestInGenre(ctx context.Context, genreID, count int) ([]models.Podcast, error) {
	params := url.Values{}
	params.Set("genre_id", strconv.Itoa(genreID))
	params.Set("page_size", strconv.Itoa(count))
	params.Set("safe_mode", "0")

	var payload struct {
		Podcasts []map[string]any `json:"podcasts"`
	}
	if err := c.get(ctx, "/best_podcasts", params, &payload); err != nil {
		return nil, fmt.Errorf("fetching best podcasts for genre %d: %w", genreID, err)
	}
	return models.StandardizeAll(payload.Podcasts), nil
}

// SimilarPodcasts returns the catalog's own recommendations for a podcast.
// The collector does not use this; it exists as a fallback data source for
// callers that want catalog-side similarity.
func (c *Client) SimilarPodcasts(ctx context.Context, podcastID string) ([]models.Podcast, error) {
	var payload struct {
		Recommendations []map[string]any `json:"recommendations"`
	}
	path := "/podcasts/" + url.PathEscape(podcastID) + "/recommendations"
	if err := c.get(ctx, path, url.Values{}, &payload); err != nil {
		return nil, fmt.Errorf("fetching similar podcasts for %q: %w", podcastID, err)
	}
	return models.StandardizeAll(payload.Recommendations), nil
}

// Genres returns the catalog's genre listing.
func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	var payload struct {
		Genres []Genre `json:"genres"`
	}
	if err := c.get(ctx, "/genres", url.Values{}, &payload); err != nil {
		return nil, fmt.Errorf("fetching genres: %w", err)
	}
	return payload.Genres, nil
}

// get performs a GET request against the catalog API and decodes the JSON
// response into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-ListenAPI-Key", c.apiKey)

	slog.Debug("calling catalog API", "path", path)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little of the body for a useful error message.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// boolParam renders a bool as the catalog API's "0"/"1" flag convention.
func boolParam(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
