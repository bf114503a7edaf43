package routes

import (
	"errors"
	"testing"
)

func TestUpdatedPlatform(t *testing.T) {
	t.Parallel()

	facebook := "facebook"
	bogus := "friendster"

	tests := []struct {
		name       string
		current    string
		currentURL string
		newURL     string
		override   *string
		want       string
	}{
		{
			name:       "label-only edit keeps creation override",
			current:    "facebook",
			currentURL: "https://example.com/p",
			newURL:     "https://example.com/p",
			want:       "facebook",
		},
		{
			name:       "unchanged url keeps derived platform",
			current:    "instagram",
			currentURL: "https://instagram.com/someone",
			newURL:     "https://instagram.com/someone",
			want:       "instagram",
		},
		{
			name:       "changed url re-derives",
			current:    "facebook",
			currentURL: "https://facebook.com/someone",
			newURL:     "https://x.com/someone",
			want:       "x",
		},
		{
			name:       "changed url with no match falls back to other",
			current:    "facebook",
			currentURL: "https://facebook.com/someone",
			newURL:     "https://example.com/p",
			want:       "other",
		},
		{
			name:       "explicit override wins over unchanged url",
			current:    "other",
			currentURL: "https://example.com/p",
			newURL:     "https://example.com/p",
			override:   &facebook,
			want:       "facebook",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := updatedPlatform(tt.current, tt.currentURL, tt.newURL, tt.override)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("unknown override rejected", func(t *testing.T) {
		t.Parallel()
		_, err := updatedPlatform("facebook", "https://facebook.com/someone", "https://facebook.com/someone", &bogus)
		if !errors.Is(err, errUnknownPlatform) {
			t.Fatalf("got %v, want errUnknownPlatform", err)
		}
	})
}
