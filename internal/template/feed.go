package template

import (
	"net/url"
	"strings"
)

// FeedLabel derives the NuGet package-source key from a feed URL: its host
// name. A URL that does not parse, or has no host, yields "".
func FeedLabel(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Hostname()
}

// CanonicalURL returns the normalized form of a feed URL. Input that does
// not parse as an absolute URL is returned trimmed but otherwise unchanged.
func CanonicalURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		return trimmed
	}
	return u.String()
}
