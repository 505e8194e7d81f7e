package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Vendor endpoint defaults.
const (
	// DefaultBaseURL is the production Bing Webmaster Tools JSON endpoint.
	DefaultBaseURL = "https://ssl.bing.com/webmaster/api.svc/json"

	// DefaultUserAgent identifies the client on outbound requests.
	DefaultUserAgent = "bingwt-go"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries after the
	// initial attempt.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the base delay for exponential backoff.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax caps the backoff delay between retries.
	DefaultRetryWaitMax = 30 * time.Second

	// BackoffJitterFraction is the symmetric jitter applied to each
	// computed backoff delay.
	BackoffJitterFraction = 0.2
)

// Pagination and batching limits.
const (
	// DefaultMaxPages bounds a paginated enumeration when the caller does
	// not supply a limit. Some endpoints have been observed to never
	// decrement their reported total page count, so an unconditional
	// fetch-until-total loop is unsafe.
	DefaultMaxPages = 100

	// MaxURLBatchSize is the largest URL batch the vendor accepts in a
	// single submission.
	MaxURLBatchSize = 500

	// CrawlRateSlots is the number of hourly crawl-rate slots in a crawl
	// settings pattern.
	CrawlRateSlots = 24

	// CrawlRateMin and CrawlRateMax bound each hourly crawl-rate slot.
	CrawlRateMin = 1
	CrawlRateMax = 10
)
