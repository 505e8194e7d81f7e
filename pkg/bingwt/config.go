package bingwt

import (
	"os"
	"strconv"
	"time"
	"unicode"

	"github.com/seotools-io/bingwt/internal/constants"
)

// Environment variables consumed by ConfigFromEnv.
const (
	EnvAPIKey   = "BING_WEBMASTER_API_KEY"
	EnvBaseURL  = "BINGWT_BASE_URL"
	EnvTimeout  = "BINGWT_TIMEOUT"
	EnvRetryMax = "BINGWT_RETRY_MAX"
)

// Config holds the settings for building a bingwt client. It is copied at
// client construction and never mutated afterwards; there are no setters.
type Config struct {
	// APIKey is the Bing Webmaster Tools API key. Required. Attached to
	// every outgoing request as the apikey query parameter.
	APIKey string

	// BaseURL is the API endpoint. Defaults to the production endpoint.
	BaseURL string

	// RequestTimeout bounds each individual HTTP attempt.
	RequestTimeout time.Duration

	// RetryMax is the maximum number of retries after the initial
	// attempt. Only transient failures (network errors, 5xx, 429) are
	// retried.
	RetryMax int

	// RetryWaitMin is the base delay for exponential backoff.
	RetryWaitMin time.Duration

	// RetryWaitMax caps the backoff delay.
	RetryWaitMax time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables request/response logging through Logger.
	Debug bool

	// Logger receives structured log output. Optional.
	Logger Logger
}

// ConfigFromEnv resolves a Config from the process environment. The API key
// is the only required input; everything else has defaults.
func ConfigFromEnv() (*Config, error) {
	config := &Config{
		APIKey:  os.Getenv(EnvAPIKey),
		BaseURL: os.Getenv(EnvBaseURL),
	}

	if raw := os.Getenv(EnvTimeout); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, ConfigurationErrorf("invalid %s %q: %v", EnvTimeout, raw, err)
		}

		config.RequestTimeout = timeout
	}

	if raw := os.Getenv(EnvRetryMax); raw != "" {
		retryMax, err := strconv.Atoi(raw)
		if err != nil || retryMax < 0 {
			return nil, ConfigurationErrorf("invalid %s %q", EnvRetryMax, raw)
		}

		config.RetryMax = retryMax
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the credential is present and well-formed.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ConfigurationErrorf("API key is required (set %s)", EnvAPIKey)
	}

	for _, r := range c.APIKey {
		if r > unicode.MaxASCII || unicode.IsSpace(r) {
			return ConfigurationErrorf("API key contains invalid characters")
		}
	}

	return nil
}

// ApplyDefaults fills unset fields with vendor defaults. Zero values for
// durations and counts mean "use the default", not "disable".
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = constants.DefaultBaseURL
	}

	if c.RequestTimeout <= 0 {
		c.RequestTimeout = constants.DefaultHTTPTimeout
	}

	if c.RetryMax <= 0 {
		c.RetryMax = constants.DefaultRetryMax
	}

	if c.RetryWaitMin <= 0 {
		c.RetryWaitMin = constants.DefaultRetryWaitMin
	}

	if c.RetryWaitMax <= 0 {
		c.RetryWaitMax = constants.DefaultRetryWaitMax
	}

	if c.UserAgent == "" {
		c.UserAgent = constants.DefaultUserAgent
	}
}

// Logger is the structured logging interface consumed by the client.
// Implementations adapt whatever logging library the application uses.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
