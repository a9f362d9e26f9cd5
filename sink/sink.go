// Package sink provides the append-only key=value output consumed by CI
// automation (for example the file named by $GITHUB_OUTPUT).
package sink

import (
	"fmt"
	"os"
	"strings"
)

// KeyValue accepts one key=value pair per call.
type KeyValue interface {
	Set(key, value string) error
}

// File appends key=value lines to a file, creating it if needed.
type File struct {
	Path string
}

// Set appends "key=value\n" to the file.
func (f File) Set(key, value string) error {
	if strings.ContainsAny(key, "=\n") || strings.Contains(value, "\n") {
		return fmt.Errorf("invalid output pair %q=%q", key, value)
	}

	fh, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open output sink %s: %w", f.Path, err)
	}
	if _, err := fmt.Fprintf(fh, "%s=%s\n", key, value); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write output sink %s: %w", f.Path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("close output sink %s: %w", f.Path, err)
	}
	return nil
}

// FromEnv returns a File sink for the path held in the named environment
// variable, or nil when the name is empty or the variable is unset.
func FromEnv(getenv func(string) string, name string) KeyValue {
	if name == "" {
		return nil
	}
	path := getenv(name)
	if path == "" {
		return nil
	}
	return File{Path: path}
}
