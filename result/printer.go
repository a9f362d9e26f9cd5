package result

import (
	"fmt"
	"io"
)

// maxProgressURLLen bounds the URL echoed on a progress line.
const maxProgressURLLen = 80

// PrintProgress writes the progress lines for one checked URL to w.
// index is 1-based.
func PrintProgress(w io.Writer, index, total int, res CheckResult) {
	writef := func(format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }

	writef("[%d/%d] Checking: %s...\n", index, total, truncate(res.URL, maxProgressURLLen))
	writef("         Status: %s\n", res.Status)
	if res.Error != nil {
		writef("         Error: %s\n", *res.Error)
	}
}

// PrintSummary writes per-status counts to w.
func PrintSummary(w io.Writer, results []CheckResult) {
	writef := func(format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }

	counts := Tally(results)
	writef("Summary:\n")
	writef("  OK: %d\n", counts[StatusOK])
	writef("  Updated: %d\n", counts[StatusUpdated])
	writef("  Moved: %d\n", counts[StatusMoved])
	writef("  Broken: %d\n", counts[StatusBroken])
	writef("  Errors: %d\n", counts[StatusError])
}
