package platform

import (
	"fmt"
	"testing"
)

func TestFromURLKnownDomains(t *testing.T) {
	t.Parallel()

	// Every domain in the table must classify, with and without www.
	for _, entry := range table {
		for _, domain := range entry.domains {
			for _, host := range []string{domain, "www." + domain} {
				url := fmt.Sprintf("https://%s/some/profile", host)
				if got := FromURL(url); got != entry.platform {
					t.Errorf("FromURL(%q) = %q, want %q", url, got, entry.platform)
				}
			}
		}
	}
}

func TestFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want Platform
	}{
		{
			name: "uppercase_host_matches",
			url:  "https://WWW.FACEBOOK.COM/profile",
			want: Facebook,
		},
		{
			name: "subdomain_suffix_matches",
			url:  "https://m.facebook.com/profile",
			want: Facebook,
		},
		{
			name: "twitter_maps_to_x",
			url:  "https://twitter.com/handle",
			want: X,
		},
		{
			name: "short_link_host",
			url:  "https://youtu.be/abc123",
			want: YouTube,
		},
		{
			name: "unlisted_domain_is_other",
			url:  "https://example.com/page",
			want: Other,
		},
		{
			name: "lookalike_suffix_does_not_match",
			url:  "https://notfacebook.com/page",
			want: Other,
		},
		{
			name: "malformed_url_is_other",
			url:  "::::not a url::::",
			want: Other,
		},
		{
			name: "empty_string_is_other",
			url:  "",
			want: Other,
		},
		{
			name: "scheme_only_is_other",
			url:  "https://",
			want: Other,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := FromURL(tc.url); got != tc.want {
				t.Fatalf("FromURL(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}

func TestKnown(t *testing.T) {
	t.Parallel()

	for _, p := range All() {
		if !Known(p) {
			t.Errorf("Known(%q) = false, want true", p)
		}
	}
	if Known(Platform("myspace")) {
		t.Error("Known(myspace) = true, want false")
	}
}
