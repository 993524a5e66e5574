package vaultsfyi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vaultsfyi/sextant/pkg/constants"
	"github.com/vaultsfyi/sextant/pkg/errors"
)

// Authenticator applies authentication to HTTP requests.
type Authenticator interface {
	Apply(req *http.Request, apiKey string)
}

// NoAuth applies no authentication.
type NoAuth struct{}

// Apply implements the Authenticator interface for NoAuth.
func (a *NoAuth) Apply(_ *http.Request, _ string) {}

// HeaderAuth sends the API key in a custom header. The vaults.fyi API
// documents x-api-key.
type HeaderAuth struct {
	Header string
}

// Apply implements the Authenticator interface for HeaderAuth.
func (a *HeaderAuth) Apply(req *http.Request, apiKey string) {
	req.Header.Set(a.Header, apiKey)
}

// newRequest builds an authenticated request for the given API path and
// query. It performs no network I/O; the parameter suites call it directly
// to verify that every documented example is constructible.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating %s %s request: %w", method, path, err)
	}

	c.auth.Apply(req, c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.UserAgent)

	return req, nil
}

// do executes a request with the retry budget applied to 429 and 5xx
// responses, consulting the read-through cache for GET requests first.
func (c *Client) do(req *http.Request) (Payload, error) {
	cacheKey := req.URL.String()
	if c.cache != nil && req.Method == http.MethodGet {
		if cached, found := c.cache.Get(cacheKey); found {
			if payload, ok := cached.(Payload); ok {
				return payload, nil
			}
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := c.backoff(req.Context(), attempt); err != nil {
				return nil, err
			}
			c.logger.Debug().
				Str("url", cacheKey).
				Int("attempt", attempt).
				Msg("retrying request")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, errors.WrapAPI(req.URL.Path, 0, err)
		}

		payload, err := decodeResponse(req.URL.Path, resp)
		if err == nil {
			if c.cache != nil && req.Method == http.MethodGet {
				c.cache.SetDefault(cacheKey, payload)
			}
			return payload, nil
		}

		lastErr = err
		if !retryable(resp.StatusCode) {
			return nil, err
		}
	}

	return nil, lastErr
}

// retryable reports whether a status code is worth retrying.
func retryable(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= 500
}

// backoff sleeps for an exponentially growing delay, honoring context
// cancellation.
func (c *Client) backoff(ctx context.Context, attempt int) error {
	delay := constants.RetryBackoff * time.Duration(1<<(attempt-1))
	if delay > constants.MaxRetryBackoff {
		delay = constants.MaxRetryBackoff
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", errors.ErrCanceled, ctx.Err())
	case <-timer.C:
		return nil
	}
}

// decodeResponse reads the body and maps non-success statuses onto the
// documented error family: 401/403 to AuthenticationError, 429 to
// RateLimitError, any other 4xx/5xx to HTTPResponseError.
func decodeResponse(endpoint string, resp *http.Response) (Payload, error) {
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.OutputBufferSize))
	if err != nil {
		return nil, errors.WrapIO("read", "response body", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, errors.NewAuthenticationError(endpoint, resp.StatusCode, constants.ErrMsgInvalidAPIKey)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, errors.NewRateLimitError(endpoint, retryAfter(resp), constants.ErrMsgRateLimited)
	case resp.StatusCode >= 400:
		return nil, errors.NewHTTPResponseError(endpoint, resp.StatusCode, resp.Status, string(body))
	}

	// Some endpoints respond with a top-level array; wrap it so every
	// method returns the same payload shape.
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.WrapParse("json", endpoint, err)
	}
	switch v := decoded.(type) {
	case map[string]any:
		return Payload(v), nil
	case []any:
		return Payload{"data": v}, nil
	default:
		return Payload{"value": v}, nil
	}
}

// retryAfter parses the Retry-After header as delay seconds, zero when
// absent or unparsable.
func retryAfter(resp *http.Response) time.Duration {
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
