package result

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
)

// ErrorCategory represents the classification of a probe failure.
type ErrorCategory string

const (
	CategoryTimeout    ErrorCategory = "timeout"
	CategoryConnection ErrorCategory = "connection"
	CategoryUnknown    ErrorCategory = "unknown"
)

// maxErrorLen bounds the error text carried into reports.
const maxErrorLen = 100

// ClassifyError determines the error category of a transport failure.
func ClassifyError(err error) ErrorCategory {
	if err == nil {
		return CategoryUnknown
	}

	// Check for timeout first: a dial timeout is also a *net.OpError.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return CategoryTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CategoryTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return CategoryConnection
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return CategoryConnection
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return CategoryConnection
	}

	return CategoryUnknown
}

// FormatError renders a transport failure as the message stored on an
// error result. Underlying messages are truncated to bound report size.
func FormatError(err error) string {
	switch ClassifyError(err) {
	case CategoryTimeout:
		return "Request timeout"
	case CategoryConnection:
		return fmt.Sprintf("Connection error: %s", truncate(err.Error(), maxErrorLen))
	default:
		if err == nil {
			return "Unexpected error"
		}
		return fmt.Sprintf("Unexpected error: %s", truncate(err.Error(), maxErrorLen))
	}
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
