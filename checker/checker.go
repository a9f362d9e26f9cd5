// Package checker extracts documentation links from markdown and probes each
// one for liveness, cross-origin redirects, and recent modification.
package checker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/lukemcguire/nistcheck/config"
	"github.com/lukemcguire/nistcheck/result"
	"github.com/lukemcguire/nistcheck/urlutil"
)

// lastModifiedLayout is the only accepted Last-Modified format.
const lastModifiedLayout = time.RFC1123

var errUnsupportedScheme = errors.New("unsupported URL scheme")

// Checker probes URLs one at a time and classifies each into a result.
type Checker struct {
	cfg    config.Config
	client *http.Client
	logger zerolog.Logger
	now    func() time.Time
}

// New creates a Checker. A nil client uses a fresh http.Client, which follows
// up to 10 redirects.
func New(cfg config.Config, client *http.Client, logger zerolog.Logger) *Checker {
	if client == nil {
		client = &http.Client{}
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = config.DefaultRequestTimeout
	}
	if cfg.CheckWindow <= 0 {
		cfg.CheckWindow = config.DefaultCheckWindow
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = config.DefaultUserAgent
	}

	return &Checker{
		cfg:    cfg.Clone(),
		client: client,
		logger: logger.With().Str("component", "Checker").Logger(),
		now:    time.Now,
	}
}

// Check probes rawURL and returns exactly one result for it. Failures never
// escape as errors; they are recorded on the result.
func (c *Checker) Check(ctx context.Context, rawURL string) result.CheckResult {
	if !urlutil.IsHTTPScheme(rawURL) {
		return errorResult(rawURL, fmt.Errorf("%w: %s", errUnsupportedScheme, rawURL))
	}

	resp, err := c.fetchStatus(ctx, rawURL)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", rawURL).Msg("probe failed")
		return errorResult(rawURL, err)
	}
	return c.classify(rawURL, resp)
}

// CheckAll checks urls strictly in order. When progressCh is non-nil, one
// CheckEvent is sent per URL; the channel is not closed. On cancellation the
// results gathered so far are returned with the context error.
func (c *Checker) CheckAll(ctx context.Context, urls []string, progressCh chan<- CheckEvent) ([]result.CheckResult, error) {
	results := make([]result.CheckResult, 0, len(urls))

	for i, rawURL := range urls {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("check stopped after %d of %d URLs: %w", i, len(urls), err)
		}

		res := c.Check(ctx, rawURL)
		results = append(results, res)

		if progressCh == nil {
			continue
		}
		select {
		case progressCh <- CheckEvent{Index: i + 1, Total: len(urls), Result: res}:
		case <-ctx.Done():
			return results, fmt.Errorf("check stopped after %d of %d URLs: %w", i+1, len(urls), ctx.Err())
		}
	}
	return results, nil
}

// classify maps a received response to a status, in priority order:
// broken, moved, updated, ok.
func (c *Checker) classify(rawURL string, resp *http.Response) result.CheckResult {
	res := result.CheckResult{
		URL:        rawURL,
		StatusCode: result.Ptr(resp.StatusCode),
	}
	if lastModified := resp.Header.Get("Last-Modified"); lastModified != "" {
		res.LastModified = result.Ptr(lastModified)
	}

	var redirectURL string
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL := resp.Request.URL.String()
		if finalURL != rawURL && !urlutil.SameOrigin(rawURL, finalURL) {
			redirectURL = finalURL
		}
	}

	switch {
	case resp.StatusCode >= http.StatusBadRequest:
		res.Status = result.StatusBroken
		res.Error = result.Ptr(fmt.Sprintf("HTTP %d", resp.StatusCode))
	case redirectURL != "":
		res.Status = result.StatusMoved
		res.RedirectURL = result.Ptr(redirectURL)
	case c.recentlyModified(rawURL, res.LastModified):
		res.Status = result.StatusUpdated
	default:
		res.Status = result.StatusOK
	}
	return res
}

// recentlyModified reports whether lastModified falls inside the check window.
// A missing or unparseable header counts as not recent.
func (c *Checker) recentlyModified(rawURL string, lastModified *string) bool {
	if lastModified == nil {
		return false
	}

	modified, err := ParseLastModified(*lastModified)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("url", rawURL).
			Msg("ignoring unparseable Last-Modified header")
		return false
	}
	return c.now().Sub(modified) < c.cfg.CheckWindow
}

// ParseLastModified parses an RFC 1123 timestamp, reading the wall clock as
// UTC whatever zone abbreviation it carries.
func ParseLastModified(value string) (time.Time, error) {
	parsed, err := time.Parse(lastModifiedLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse Last-Modified %q: %w", value, err)
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0, time.UTC), nil
}

func errorResult(rawURL string, err error) result.CheckResult {
	return result.CheckResult{
		URL:    rawURL,
		Status: result.StatusError,
		Error:  result.Ptr(result.FormatError(err)),
	}
}
