// Package platform classifies external profile URLs into a fixed set of
// social platforms by domain matching. Classification is strict: a URL that
// does not match a known domain is tagged Other rather than guessed at.
package platform

import (
	"net/url"
	"strings"
)

// Platform identifies a supported social platform.
type Platform string

const (
	Facebook  Platform = "facebook"
	Instagram Platform = "instagram"
	X         Platform = "x"
	LinkedIn  Platform = "linkedin"
	TikTok    Platform = "tiktok"
	YouTube   Platform = "youtube"
	Snapchat  Platform = "snapchat"
	Reddit    Platform = "reddit"
	Pinterest Platform = "pinterest"
	Threads   Platform = "threads"
	Telegram  Platform = "telegram"
	WhatsApp  Platform = "whatsapp"
	Other     Platform = "other"
)

type platformDomains struct {
	platform Platform
	domains  []string
}

// Match order is declaration order; first hit wins.
var table = []platformDomains{
	{Facebook, []string{"facebook.com", "fb.com", "fb.me"}},
	{Instagram, []string{"instagram.com", "instagr.am"}},
	{X, []string{"x.com", "twitter.com", "t.co"}},
	{LinkedIn, []string{"linkedin.com", "lnkd.in"}},
	{TikTok, []string{"tiktok.com"}},
	{YouTube, []string{"youtube.com", "youtu.be"}},
	{Snapchat, []string{"snapchat.com"}},
	{Reddit, []string{"reddit.com", "redd.it"}},
	{Pinterest, []string{"pinterest.com", "pin.it"}},
	{Threads, []string{"threads.net"}},
	{Telegram, []string{"telegram.org", "t.me"}},
	{WhatsApp, []string{"whatsapp.com", "wa.me"}},
}

// FromURL maps a profile URL to its platform. Matching is case-insensitive
// against hostname with any leading "www." stripped, exact or dot-suffix.
// Malformed URLs and unknown domains both map to Other.
func FromURL(raw string) Platform {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Host == "" {
		return Other
	}

	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if host == "" {
		return Other
	}

	for _, entry := range table {
		for _, domain := range entry.domains {
			if host == domain || strings.HasSuffix(host, "."+domain) {
				return entry.platform
			}
		}
	}
	return Other
}

// Known reports whether p is one of the supported platform tags.
func Known(p Platform) bool {
	if p == Other {
		return true
	}
	for _, entry := range table {
		if entry.platform == p {
			return true
		}
	}
	return false
}

// All returns every supported platform tag, Other last.
func All() []Platform {
	out := make([]Platform, 0, len(table)+1)
	for _, entry := range table {
		out = append(out, entry.platform)
	}
	return append(out, Other)
}
