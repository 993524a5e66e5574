// Package constants provides shared constants used throughout the sextant codebase.
// This includes timeouts, limits, file permissions, and other configuration values
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the vaults.fyi API
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// InstallTimeout is the timeout for installing an SDK into a sandbox
	InstallTimeout = 5 * time.Minute

	// ProbeTimeout is the timeout for a single language probe subprocess
	ProbeTimeout = 2 * time.Minute

	// RetryBackoff is the base backoff duration for HTTP retries
	RetryBackoff = 1 * time.Second

	// MaxRetryBackoff is the maximum backoff duration for HTTP retries
	MaxRetryBackoff = 30 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// MaxRetries is the default maximum number of HTTP retry attempts,
	// matching the documented SDK default.
	MaxRetries = 3

	// OutputBufferSize is the maximum size of captured probe output in bytes
	OutputBufferSize = 30000

	// MaxPageSize is the maximum allowed page size for paginated requests
	MaxPageSize = 1000
)

// Cache constants
const (
	// CacheCleanupInterval is how often to clean expired cache entries
	CacheCleanupInterval = 5 * time.Minute
)

// API constants describe the documented vaults.fyi API surface
const (
	// DefaultBaseURL is the documented API base URL
	DefaultBaseURL = "https://api.vaults.fyi"

	// APIVersion is the documented API version path segment
	APIVersion = "v2"

	// AuthHeader is the documented API key header
	AuthHeader = "x-api-key"

	// UserAgent identifies sextant in outgoing requests
	UserAgent = "sextant/1.0"

	// PlaceholderAPIKey exercises the documented construction pattern
	// without a real credential. It is never validated by a backend.
	PlaceholderAPIKey = "test_key"
)

// Format constants
const (
	// TimeFormatFilename is the format used in generated filenames
	TimeFormatFilename = "20060102-150405"
)

// Error messages
const (
	// ErrMsgInvalidAPIKey is the standard error message for invalid API keys
	ErrMsgInvalidAPIKey = "invalid or missing API key"

	// ErrMsgRateLimited is the standard error message for rate limiting
	ErrMsgRateLimited = "rate limit exceeded, please try again later"
)
