package vaultsfyi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsfyi/sextant/pkg/errors"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]Option{WithBaseURL(server.URL), WithMaxRetries(1)}, opts...)
	client, err := New(Config{APIKey: "test_key"}, opts...)
	require.NoError(t, err)
	return client
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		header   http.Header
		sentinel error
	}{
		{"unauthorized", http.StatusUnauthorized, nil, errors.ErrAuthentication},
		{"forbidden", http.StatusForbidden, nil, errors.ErrAuthentication},
		{"rate limited", http.StatusTooManyRequests, http.Header{"Retry-After": []string{"7"}}, errors.ErrRateLimited},
		{"server error", http.StatusInternalServerError, nil, errors.ErrHTTPResponse},
		{"not found", http.StatusNotFound, nil, errors.ErrHTTPResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				for key, values := range tt.header {
					for _, v := range values {
						w.Header().Add(key, v)
					}
				}
				w.WriteHeader(tt.status)
			}))

			_, err := client.GetNetworks(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestRateLimitErrorCarriesRetryAfter(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "12")
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := client.GetNetworks(context.Background())
	require.Error(t, err)

	var rateErr *errors.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 12*time.Second, rateErr.RetryAfter)
}

func TestRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"networks": ["mainnet"]}`))
	}))

	payload, err := client.GetNetworks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Contains(t, payload, "networks")
}

func TestDoesNotRetryAuthFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.GetNetworks(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "auth failures are terminal")
}

func TestArrayResponsesAreWrapped(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["mainnet", "base"]`))
	}))

	payload, err := client.GetNetworks(context.Background())
	require.NoError(t, err)
	data, ok := payload["data"].([]any)
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestResponseCache(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true}`))
	}), WithCache(time.Minute))

	ctx := context.Background()
	_, err := client.GetNetworks(ctx)
	require.NoError(t, err)
	_, err = client.GetNetworks(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load(), "second call served from cache")
}

func TestRequestsAuthenticatedAgainstServer(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test_key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))

	payload, err := client.GetPositions(context.Background(), PositionsParams{
		UserAddress: "0xdB79e7E9e1412457528e40db9fCDBe69f558777d",
	})
	require.NoError(t, err)
	assert.Equal(t, true, payload["ok"])
}
