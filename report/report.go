// Package report renders check results as a markdown document.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/lukemcguire/nistcheck/result"
)

// Options carries the report inputs that are not results.
type Options struct {
	Title      string        // Top-level heading
	CheckedAt  time.Time     // Rendered in UTC, RFC 3339
	Window     time.Duration // Recency window named in the "Recently Updated" heading
	SourceName string        // File the links came from, named in the action items
}

// Generate builds the markdown report. Output depends only on its inputs.
func Generate(results []result.CheckResult, opts Options) string {
	var b strings.Builder
	line := func(format string, a ...any) {
		fmt.Fprintf(&b, format, a...)
		b.WriteString("\n")
	}

	updated := result.Filter(results, result.StatusUpdated)
	moved := result.Filter(results, result.StatusMoved)
	broken := result.Filter(results, result.StatusBroken)
	errored := result.Filter(results, result.StatusError)
	counts := result.Tally(results)

	line("# %s", opts.Title)
	line("")
	line("**Check Time:** %s", opts.CheckedAt.UTC().Format(time.RFC3339))
	line("**URLs Checked:** %d", len(results))
	line("")

	line("## Summary")
	line("")
	line("- **OK:** %d", counts[result.StatusOK])
	line("- **Recently Updated:** %d", counts[result.StatusUpdated])
	line("- **Moved/Redirected:** %d", counts[result.StatusMoved])
	line("- **Broken Links:** %d", counts[result.StatusBroken])
	line("- **Errors:** %d", counts[result.StatusError])
	line("")

	if len(updated) > 0 {
		line("## Recently Updated (within %s)", FormatWindow(opts.Window))
		line("")
		line("These publications may have new content:")
		line("")
		for _, r := range updated {
			line("- %s", r.URL)
			if r.LastModified != nil {
				line("  - Last-Modified: %s", *r.LastModified)
			}
		}
		line("")
	}

	if len(moved) > 0 {
		line("## Moved/Redirected URLs")
		line("")
		line("These URLs redirect to a different location and should be updated:")
		line("")
		for _, r := range moved {
			line("- **From:** %s", r.URL)
			line("  - **To:** %s", result.Deref(r.RedirectURL))
		}
		line("")
	}

	if len(broken) > 0 {
		line("## Broken Links")
		line("")
		line("These URLs returned error status codes:")
		line("")
		for _, r := range broken {
			line("- %s", r.URL)
			line("  - Error: %s", result.Deref(r.Error))
		}
		line("")
	}

	if len(errored) > 0 {
		line("## Check Errors")
		line("")
		line("These URLs could not be checked:")
		line("")
		for _, r := range errored {
			line("- %s", r.URL)
			line("  - Error: %s", result.Deref(r.Error))
		}
		line("")
	}

	if len(updated) > 0 || len(moved) > 0 || len(broken) > 0 {
		line("## Recommended Actions")
		line("")
		if len(updated) > 0 {
			line("- [ ] Review recently updated publications for content changes")
		}
		if len(moved) > 0 {
			line("- [ ] Update moved URLs in %s", opts.SourceName)
		}
		if len(broken) > 0 {
			line("- [ ] Find replacement URLs for broken links")
		}
		line("")
	}

	return b.String()
}

// FormatWindow renders a duration in whole hours ("24 hours") when it is a
// multiple of an hour, otherwise in Go duration syntax.
func FormatWindow(d time.Duration) string {
	if d <= 0 || d%time.Hour != 0 {
		return d.String()
	}
	hours := int(d / time.Hour)
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}
