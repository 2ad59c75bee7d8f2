package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStandardize(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want Podcast
	}{
		{
			name: "search result field names",
			raw: map[string]any{
				"id":                   "abc123",
				"title_original":       "True Crime Daily",
				"description_original": "A show about crime.",
				"publisher_original":   "Crime Network",
				"genre_ids":            []any{float64(93), float64(127)},
				"thumbnail":            "https://img.example/t.jpg",
				"website":              "https://example.com",
				"rss":                  "https://example.com/feed",
				"explicit_content":     true,
			},
			want: Podcast{
				ID:           "abc123",
				Title:        "True Crime Daily",
				Description:  "A show about crime.",
				Publisher:    "Crime Network",
				GenreIDs:     []int{93, 127},
				ThumbnailURL: "https://img.example/t.jpg",
				WebsiteURL:   "https://example.com",
				RSSURL:       "https://example.com/feed",
				Explicit:     true,
			},
		},
		{
			name: "plain field names",
			raw: map[string]any{
				"id":          "xyz",
				"title":       "Plain Title",
				"description": "Plain description.",
				"publisher":   "Plain Publisher",
			},
			want: Podcast{
				ID:          "xyz",
				Title:       "Plain Title",
				Description: "Plain description.",
				Publisher:   "Plain Publisher",
			},
		},
		{
			name: "empty object gets defaults",
			raw:  map[string]any{},
			want: Podcast{
				Title:       DefaultTitle,
				Description: DefaultDescription,
				Publisher:   DefaultPublisher,
			},
		},
		{
			name: "original names win over plain names",
			raw: map[string]any{
				"title":          "Plain",
				"title_original": "Original",
			},
			want: Podcast{
				Title:       "Original",
				Description: DefaultDescription,
				Publisher:   DefaultPublisher,
			},
		},
		{
			name: "wrong types fall back to defaults",
			raw: map[string]any{
				"id":    42,
				"title": []string{"not", "a", "string"},
			},
			want: Podcast{
				Title:       DefaultTitle,
				Description: DefaultDescription,
				Publisher:   DefaultPublisher,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Standardize(tt.raw)
			got.Extra = nil // checked separately
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Standardize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStandardizeNeverEmptyFields(t *testing.T) {
	inputs := []map[string]any{
		{},
		{"id": "only-id"},
		{"title": ""},
		{"title_original": "", "description_original": "", "publisher_original": ""},
	}
	for _, raw := range inputs {
		p := Standardize(raw)
		if p.Title == "" || p.Description == "" || p.Publisher == "" {
			t.Errorf("Standardize(%v) produced empty semantic field: %+v", raw, p)
		}
	}
}

func TestStandardizeExtraFields(t *testing.T) {
	raw := map[string]any{
		"id":             "p1",
		"title":          "Show",
		"total_episodes": float64(120),
		"language":       "English",
	}

	p := Standardize(raw)

	if p.Extra["total_episodes"] != float64(120) {
		t.Errorf("Extra missing total_episodes: %v", p.Extra)
	}
	if p.Extra["language"] != "English" {
		t.Errorf("Extra missing language: %v", p.Extra)
	}
	if _, ok := p.Extra["title"]; ok {
		t.Error("standardized key leaked into Extra")
	}
}

// Clients commonly resubmit podcasts they received from the API as
// favorites, so the Podcast's own JSON form must standardize back to the
// same value with nothing shunted into Extra.
func TestStandardizeIdempotentOverOwnJSON(t *testing.T) {
	first := Standardize(map[string]any{
		"id":                   "abc123",
		"title_original":       "True Crime Daily",
		"description_original": "A show about crime.",
		"publisher_original":   "Crime Network",
		"genre_ids":            []any{float64(93), float64(127)},
		"thumbnail":            "https://img.example/t.jpg",
		"website":              "https://example.com",
		"rss":                  "https://example.com/feed",
		"explicit_content":     true,
		"total_episodes":       float64(120),
	})

	data, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	second := Standardize(raw)

	if !reflect.DeepEqual(second, first) {
		t.Errorf("re-standardization changed the podcast:\nfirst  %+v\nsecond %+v", first, second)
	}
	if second.RSSURL != "https://example.com/feed" {
		t.Errorf("RSSURL lost on round trip: %q", second.RSSURL)
	}
	if second.Extra["total_episodes"] != float64(120) {
		t.Errorf("Extra lost on round trip: %v", second.Extra)
	}
}

func TestStandardizeGenreIDTypes(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want []int
	}{
		{"float64 slice", map[string]any{"genre_ids": []float64{1, 2}}, []int{1, 2}},
		{"int slice", map[string]any{"genre_ids": []int{3, 4}}, []int{3, 4}},
		{"any slice", map[string]any{"genre_ids": []any{float64(5), 6}}, []int{5, 6}},
		{"missing", map[string]any{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Standardize(tt.raw).GenreIDs
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GenreIDs = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStandardizeAll(t *testing.T) {
	raws := []map[string]any{
		{"id": "a", "title": "A"},
		{"id": "b", "title": "B"},
	}
	got := StandardizeAll(raws)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("StandardizeAll order or length wrong: %+v", got)
	}
	if got := StandardizeAll(nil); len(got) != 0 {
		t.Errorf("StandardizeAll(nil) = %v, want empty", got)
	}
}
