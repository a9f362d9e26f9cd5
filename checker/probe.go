package checker

import (
	"context"
	"fmt"
	"net/http"
)

// probe issues a single request bounded by the configured timeout. The body
// is closed unread before returning; status, headers and the final request
// URL remain usable.
func (c *Checker) probe(ctx context.Context, method, rawURL string) (*http.Response, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if closeErr := resp.Body.Close(); closeErr != nil {
		c.logger.Debug().Err(closeErr).Str("url", rawURL).Msg("close response body")
	}
	return resp, nil
}

// fetchStatus performs the HEAD probe, falling back to GET when the server
// answers HEAD with an error status. Some servers reject HEAD but serve GET.
func (c *Checker) fetchStatus(ctx context.Context, rawURL string) (*http.Response, error) {
	resp, err := c.probe(ctx, http.MethodHead, rawURL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusBadRequest {
		return resp, nil
	}

	c.logger.Debug().
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Msg("HEAD rejected, retrying with GET")
	return c.probe(ctx, http.MethodGet, rawURL)
}
