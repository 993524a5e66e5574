// Package vaultsfyi is the Go binding for the vaults.fyi API. It exposes
// one method per documented operation behind the API capability interface,
// constructs clients from explicit configuration instead of ambient
// environment state, and supports dry-run request construction so the
// parameter suites can verify every documented example without touching
// the network.
package vaultsfyi

import (
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/vaultsfyi/sextant/pkg/constants"
	"github.com/vaultsfyi/sextant/pkg/errors"
)

// Compile-time check that Client satisfies the capability contract.
var _ API = (*Client)(nil)

// Config holds explicit client configuration. Environment variables are
// read by the CLI layer and passed in here; the client itself never
// consults the environment.
type Config struct {
	// APIKey is the credential sent in the x-api-key header. Required.
	APIKey string

	// BaseURL overrides the documented API base URL. Defaults to
	// https://api.vaults.fyi.
	BaseURL string

	// Timeout is the per-request timeout. Defaults to 30 seconds,
	// matching the documented SDK default.
	Timeout time.Duration

	// MaxRetries is how many times 429 and 5xx responses are retried.
	// Defaults to 3, matching the documented SDK default.
	MaxRetries int

	// HTTPClient overrides the underlying HTTP client. When set, its
	// timeout wins over Timeout.
	HTTPClient *http.Client

	// Logger receives request-level debug logging. Defaults to a no-op
	// logger.
	Logger *zerolog.Logger

	// CacheTTL enables a read-through response cache with the given TTL
	// when positive. Disabled by default.
	CacheTTL time.Duration
}

// Option adjusts a Config before the client is built.
type Option func(*Config)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Config) { c.BaseURL = baseURL }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) { c.Timeout = timeout }
}

// WithMaxRetries overrides the retry budget for 429 and 5xx responses.
func WithMaxRetries(retries int) Option {
	return func(c *Config) { c.MaxRetries = retries }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Config) { c.HTTPClient = hc }
}

// WithLogger attaches a logger for request-level debug logging.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithCache enables the read-through response cache with the given TTL.
func WithCache(ttl time.Duration) Option {
	return func(c *Config) { c.CacheTTL = ttl }
}

// Client is the Go binding for the vaults.fyi API.
type Client struct {
	apiKey     string
	baseURL    string
	maxRetries int
	auth       Authenticator
	http       *http.Client
	logger     zerolog.Logger
	cache      *gocache.Cache
}

// New creates a client from explicit configuration. The API key is the
// only required field; everything else defaults to the documented SDK
// defaults. The key is never validated against a backend here, so a
// placeholder credential constructs a fully working client.
func New(cfg Config, opts ...Option) (*Client, error) {
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.APIKey == "" {
		return nil, errors.ErrAPIKeyRequired
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		return nil, errors.NewValidationError("MaxRetries", maxRetries, "must not be negative")
	}
	if maxRetries == 0 {
		maxRetries = constants.MaxRetries
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		maxRetries: maxRetries,
		auth:       &HeaderAuth{Header: constants.AuthHeader},
		http:       hc,
		logger:     logger,
	}

	if cfg.CacheTTL > 0 {
		c.cache = gocache.New(cfg.CacheTTL, constants.CacheCleanupInterval)
	}

	return c, nil
}

// BaseURL returns the base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// MaxRetries returns the client's retry budget for 429 and 5xx responses.
func (c *Client) MaxRetries() int {
	return c.maxRetries
}

// CacheEnabled reports whether the read-through response cache is active.
func (c *Client) CacheEnabled() bool {
	return c.cache != nil
}
