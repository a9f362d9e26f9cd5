package result

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// WriteJSON writes the results as a formatted JSON array to the writer.
// Absent optional fields are written as null.
func WriteJSON(w io.Writer, results []CheckResult) error {
	if results == nil {
		results = []CheckResult{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("write json output: %w", err)
	}
	return nil
}

// WriteCSV writes the results as CSV to the writer.
// Always includes a header row, even if there are no results.
// Column order: url, status, status_code, last_modified, redirect_url, error
func WriteCSV(w io.Writer, results []CheckResult) error {
	cw := csv.NewWriter(w)

	header := []string{"url", "status", "status_code", "last_modified", "redirect_url", "error"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range results {
		record := []string{
			r.URL,
			string(r.Status),
			statusCodeStr(r.StatusCode),
			Deref(r.LastModified),
			Deref(r.RedirectURL),
			Deref(r.Error),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record for %s: %w", r.URL, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}
	return nil
}

// statusCodeStr converts an optional HTTP status code to a string.
// Returns empty string when no response was received.
func statusCodeStr(code *int) string {
	if code == nil {
		return ""
	}
	return strconv.Itoa(*code)
}
