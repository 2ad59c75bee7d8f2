package models

// Raw catalog payloads use inconsistent field names depending on which
// endpoint produced them: search results use title_original /
// description_original / publisher_original while best-podcasts and
// recommendation listings use the plain names. Standardize resolves either
// form into a Podcast with every semantic field populated.

// standardKeys are the raw-payload keys consumed by Standardize. Anything
// else is preserved untouched in Podcast.Extra.
var standardKeys = map[string]struct{}{
	"id": {}, "podcast_id": {},
	"title": {}, "title_original": {},
	"description": {}, "description_original": {},
	"publisher": {}, "publisher_original": {},
	"genre_ids": {},
	"image":     {}, "thumbnail": {}, "thumbnail_url": {},
	"website": {}, "listennotes_url": {}, "website_url": {},
	"rss": {}, "rss_url": {},
	"explicit_content": {}, "explicit": {},
	"extra": {},
}

// Standardize converts a raw catalog payload into a Podcast. Missing fields
// fall back to an alternate source key, then to a fixed default, so the
// result never has an empty title, description, or publisher. The operation
// is idempotent: standardizing an already-standardized podcast's map form
// changes nothing.
func Standardize(raw map[string]any) Podcast {
	p := Podcast{
		ID:           stringField(raw, "id", "podcast_id"),
		Title:        stringField(raw, "title_original", "title"),
		Description:  stringField(raw, "description_original", "description"),
		Publisher:    stringField(raw, "publisher_original", "publisher"),
		GenreIDs:     intSliceField(raw, "genre_ids"),
		ThumbnailURL: stringField(raw, "thumbnail", "image", "thumbnail_url"),
		WebsiteURL:   stringField(raw, "website", "listennotes_url", "website_url"),
		RSSURL:       stringField(raw, "rss", "rss_url"),
		Explicit:     boolField(raw, "explicit_content", "explicit"),
	}

	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.Description == "" {
		p.Description = DefaultDescription
	}
	if p.Publisher == "" {
		p.Publisher = DefaultPublisher
	}

	// A nested "extra" map is a previously standardized podcast coming back
	// around; fold its contents in so the round trip drops nothing.
	if nested, ok := raw["extra"].(map[string]any); ok {
		for k, v := range nested {
			if p.Extra == nil {
				p.Extra = make(map[string]any)
			}
			p.Extra[k] = v
		}
	}

	for k, v := range raw {
		if _, ok := standardKeys[k]; ok {
			continue
		}
		if p.Extra == nil {
			p.Extra = make(map[string]any)
		}
		p.Extra[k] = v
	}

	return p
}

// StandardizeAll standardizes a slice of raw payloads, preserving order.
// A nil or empty input yields an empty slice.
func StandardizeAll(raws []map[string]any) []Podcast {
	podcasts := make([]Podcast, 0, len(raws))
	for _, raw := range raws {
		podcasts = append(podcasts, Standardize(raw))
	}
	return podcasts
}

// stringField returns the first non-empty string value among the given keys.
func stringField(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := raw[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// boolField returns the first bool value among the given keys.
func boolField(raw map[string]any, keys ...string) bool {
	for _, key := range keys {
		if v, ok := raw[key].(bool); ok {
			return v
		}
	}
	return false
}

// intSliceField reads a slice of genre ids. JSON decoding produces []any
// with float64 elements, but callers constructing payloads in Go may pass
// []int or []float64 directly; all three are accepted.
func intSliceField(raw map[string]any, key string) []int {
	switch v := raw[key].(type) {
	case []int:
		out := make([]int, len(v))
		copy(out, v)
		return out
	case []float64:
		out := make([]int, len(v))
		for i, f := range v {
			out[i] = int(f)
		}
		return out
	case []any:
		out := make([]int, 0, len(v))
		for _, e := range v {
			switch n := e.(type) {
			case float64:
				out = append(out, int(n))
			case int:
				out = append(out, n)
			}
		}
		return out
	}
	return nil
}
