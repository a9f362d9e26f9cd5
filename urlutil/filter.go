package urlutil

import (
	"net/url"
	"strings"
)

// trailingPunct is stripped from extracted URLs; prose often ends a link with it.
const trailingPunct = ".,;:"

// TrimTrailingPunct removes any run of '.', ',', ';' and ':' from the end of rawURL.
func TrimTrailingPunct(rawURL string) string {
	return strings.TrimRight(rawURL, trailingPunct)
}

// Origin returns the lowercased "scheme://host[:port]" portion of rawURL.
// Returns "" for unparseable URLs.
func Origin(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Scheme) + "://" + strings.ToLower(parsed.Host)
}

// SameOrigin checks if both URLs share scheme and host.
// An http->https upgrade on the same host is a different origin.
func SameOrigin(a, b string) bool {
	originA, originB := Origin(a), Origin(b)
	if originA == "" || originB == "" {
		return false
	}
	return originA == originB
}

// IsHTTPScheme returns true if the URL has an http or https scheme.
// Returns false for empty strings, non-HTTP schemes, or unparseable URLs.
func IsHTTPScheme(rawURL string) bool {
	if rawURL == "" {
		return false
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	scheme := strings.ToLower(parsed.Scheme)
	return scheme == "http" || scheme == "https"
}
