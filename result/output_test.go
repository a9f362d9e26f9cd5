package result

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
)

func sampleResults() []CheckResult {
	return []CheckResult{
		{
			URL:          "https://csrc.nist.gov/pubs/sp/800/53/r5/final",
			Status:       StatusOK,
			StatusCode:   Ptr(200),
			LastModified: Ptr("Mon, 01 Jan 2024 00:00:00 GMT"),
		},
		{
			URL:        "https://www.nist.gov/missing",
			Status:     StatusBroken,
			StatusCode: Ptr(404),
			Error:      Ptr("HTTP 404"),
		},
		{
			URL:    "https://nvlpubs.nist.gov/slow",
			Status: StatusError,
			Error:  Ptr("Request timeout"),
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleResults()); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(raw) != 3 {
		t.Fatalf("Expected 3 elements, got %d", len(raw))
	}

	for _, key := range []string{"url", "status", "status_code", "last_modified", "redirect_url", "error"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("Expected %q field in JSON output", key)
		}
	}

	// Absent optional fields serialize as null.
	if raw[0]["redirect_url"] != nil {
		t.Errorf("redirect_url = %v, want null", raw[0]["redirect_url"])
	}
	if raw[2]["status_code"] != nil {
		t.Errorf("status_code = %v, want null", raw[2]["status_code"])
	}
	if raw[1]["status_code"] != float64(404) {
		t.Errorf("status_code = %v, want 404", raw[1]["status_code"])
	}

	// Pretty-printed
	if !strings.Contains(buf.String(), "\n  {") {
		t.Error("expected indented output")
	}
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}

	if !bytes.Equal(buf.Bytes(), []byte("[]\n")) {
		t.Errorf("Expected '[]\\n', got %q", buf.String())
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleResults()); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV output: %v", err)
	}

	if len(records) != 4 {
		t.Fatalf("Expected 4 records (header + 3 data), got %d", len(records))
	}

	expectedHeader := []string{"url", "status", "status_code", "last_modified", "redirect_url", "error"}
	for i, col := range expectedHeader {
		if records[0][i] != col {
			t.Errorf("Header column %d: expected %q, got %q", i, col, records[0][i])
		}
	}

	if records[2][1] != "broken" || records[2][2] != "404" || records[2][5] != "HTTP 404" {
		t.Errorf("unexpected broken row: %v", records[2])
	}
	if records[3][2] != "" {
		t.Errorf("Expected empty status_code for error row, got %q", records[3][2])
	}
}

func TestStatusCodeStr(t *testing.T) {
	tests := []struct {
		code     *int
		expected string
	}{
		{nil, ""},
		{Ptr(200), "200"},
		{Ptr(404), "404"},
	}

	for _, tt := range tests {
		if got := statusCodeStr(tt.code); got != tt.expected {
			t.Errorf("statusCodeStr() = %q, expected %q", got, tt.expected)
		}
	}
}
