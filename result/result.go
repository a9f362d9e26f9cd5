// Package result defines the per-URL check record and its console, JSON,
// and CSV renderings.
package result

// Status is the terminal classification of a checked URL.
type Status string

const (
	StatusOK      Status = "ok"
	StatusUpdated Status = "updated"
	StatusMoved   Status = "moved"
	StatusBroken  Status = "broken"
	StatusError   Status = "error"
)

// Statuses lists every status in summary order.
var Statuses = []Status{StatusOK, StatusUpdated, StatusMoved, StatusBroken, StatusError}

// CheckResult represents the result of checking a single URL.
// Optional fields are nil when they do not apply to the status.
type CheckResult struct {
	URL          string  `json:"url"`           // The URL that was checked
	Status       Status  `json:"status"`        // Terminal classification
	StatusCode   *int    `json:"status_code"`   // Final HTTP status code, if a response arrived
	LastModified *string `json:"last_modified"` // Raw Last-Modified header value
	RedirectURL  *string `json:"redirect_url"`  // Cross-origin redirect target (moved only)
	Error        *string `json:"error"`         // Error detail (broken and error only)
}

// Counts tallies results per status.
type Counts map[Status]int

// Tally counts results by status. Every known status is present in the map.
func Tally(results []CheckResult) Counts {
	counts := make(Counts, len(Statuses))
	for _, s := range Statuses {
		counts[s] = 0
	}
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}

// Filter returns the results with the given status, preserving order.
func Filter(results []CheckResult, status Status) []CheckResult {
	var out []CheckResult
	for _, r := range results {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// HasBroken reports whether any result is broken.
func HasBroken(results []CheckResult) bool {
	for _, r := range results {
		if r.Status == StatusBroken {
			return true
		}
	}
	return false
}

// UpdatesFound reports whether any result needs attention: updated, moved, or broken.
func UpdatesFound(results []CheckResult) bool {
	for _, r := range results {
		switch r.Status {
		case StatusUpdated, StatusMoved, StatusBroken:
			return true
		}
	}
	return false
}

// Deref returns the pointed-to string, or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
