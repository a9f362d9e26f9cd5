package checker

import (
	"reflect"
	"testing"
)

func mustNewExtractor(t *testing.T, domain string, subdomains []string) *Extractor {
	t.Helper()
	e, err := NewExtractor(domain, subdomains)
	if err != nil {
		t.Fatalf("NewExtractor() error: %v", err)
	}
	return e
}

func TestExtract(t *testing.T) {
	e := mustNewExtractor(t, "nist.gov", []string{"csrc", "nvlpubs"})

	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "markdown link stops at paren",
			content:  `See [SP 800-53](https://csrc.nist.gov/pubs/sp/800/53/r5/upd1/final) for controls.`,
			expected: []string{"https://csrc.nist.gov/pubs/sp/800/53/r5/upd1/final"},
		},
		{
			name:     "strips trailing period",
			content:  "Read https://www.nist.gov/page.",
			expected: []string{"https://www.nist.gov/page"},
		},
		{
			name:     "strips trailing punctuation run",
			content:  "Sources: https://www.nist.gov/cyberframework;, and more",
			expected: []string{"https://www.nist.gov/cyberframework"},
		},
		{
			name:     "angle bracket autolink",
			content:  "<https://nvlpubs.nist.gov/nistpubs/SpecialPublications/NIST.SP.800-171r3.pdf>",
			expected: []string{"https://nvlpubs.nist.gov/nistpubs/SpecialPublications/NIST.SP.800-171r3.pdf"},
		},
		{
			name:     "bare domain over http",
			content:  "http://nist.gov",
			expected: []string{"http://nist.gov"},
		},
		{
			name:     "ignores other domains",
			content:  "https://example.com/page and https://www.cisa.gov/resources",
			expected: []string{},
		},
		{
			name:     "html attribute stops at quote",
			content:  `<a href="https://csrc.nist.gov/glossary">glossary</a>`,
			expected: []string{"https://csrc.nist.gov/glossary"},
		},
		{
			name: "deduplicates keeping first position",
			content: `- https://csrc.nist.gov/b
- https://csrc.nist.gov/a
- https://csrc.nist.gov/b.
- [again](https://csrc.nist.gov/a)`,
			expected: []string{"https://csrc.nist.gov/b", "https://csrc.nist.gov/a"},
		},
		{
			name:     "empty content",
			content:  "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.content)
			if got == nil {
				t.Fatal("Extract() returned nil, want non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Extract() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestExtract_Idempotent(t *testing.T) {
	e := mustNewExtractor(t, "nist.gov", []string{"csrc", "nvlpubs"})
	content := `https://www.nist.gov/a https://csrc.nist.gov/b, https://www.nist.gov/a https://nvlpubs.nist.gov/c.`

	first := e.Extract(content)
	second := e.Extract(content)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract() not idempotent: %v vs %v", first, second)
	}
	if len(first) != 3 {
		t.Errorf("expected 3 unique URLs, got %v", first)
	}
}

func TestExtract_CustomDomain(t *testing.T) {
	e := mustNewExtractor(t, "example.org", nil)

	got := e.Extract("https://www.example.org/docs and https://csrc.nist.gov/x and https://docs.example.org/y")
	want := []string{"https://www.example.org/docs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtract_DomainIsLiteral(t *testing.T) {
	e := mustNewExtractor(t, "nist.gov", nil)

	got := e.Extract("https://nistxgov.example/page")
	if len(got) != 0 {
		t.Errorf("expected dot in domain to match literally, got %v", got)
	}
}
