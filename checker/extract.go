package checker

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lukemcguire/nistcheck/urlutil"
)

// Extractor finds links to a single domain in markdown text.
type Extractor struct {
	pattern *regexp.Regexp
}

// NewExtractor compiles the host-restricted link pattern for domain. Each
// subdomain is an optional label that may precede the domain, after an
// optional "www.".
func NewExtractor(domain string, subdomains []string) (*Extractor, error) {
	var b strings.Builder
	b.WriteString(`https?://(?:www\.)?`)
	for _, sub := range subdomains {
		fmt.Fprintf(&b, `(?:%s\.)?`, regexp.QuoteMeta(sub))
	}
	b.WriteString(regexp.QuoteMeta(domain))
	// Anything up to whitespace, a closing bracket, or a quote.
	b.WriteString(`[^\s)>\]"']*`)

	pattern, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("compile link pattern for %s: %w", domain, err)
	}
	return &Extractor{pattern: pattern}, nil
}

// Extract returns the unique matching URLs in content, in first-seen order,
// with trailing punctuation stripped. The result is never nil.
func (e *Extractor) Extract(content string) []string {
	matches := e.pattern.FindAllString(content, -1)
	seen := make(map[string]bool, len(matches))
	urls := make([]string, 0, len(matches))

	for _, match := range matches {
		link := urlutil.TrimTrailingPunct(match)
		if seen[link] {
			continue
		}
		seen[link] = true
		urls = append(urls, link)
	}
	return urls
}
