package bwtclient

import (
	"strings"

	"github.com/seotools-io/bingwt/internal/client"
	"github.com/seotools-io/bingwt/pkg/bingwt"
)

// New creates a Bing Webmaster Tools client from config. The config is
// copied; the caller's value is not retained. The returned client owns one
// connection pool, shared by all services and safe for concurrent use;
// release it with Close.
func New(config *bingwt.Config) (bingwt.Client, error) {
	if config == nil {
		return nil, &bingwt.Error{
			Kind:    bingwt.KindConfiguration,
			Message: "config is required",
			Err:     bingwt.ErrConfigRequired,
		}
	}

	cfg := *config
	cfg.BaseURL = normalizeBaseURL(cfg.BaseURL)

	impl, err := client.New(&cfg)
	if err != nil {
		return nil, err
	}

	return impl, nil
}

// NewFromEnv resolves configuration from the process environment and
// creates a client. BING_WEBMASTER_API_KEY is the only required input.
func NewFromEnv() (bingwt.Client, error) {
	config, err := bingwt.ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	return New(config)
}

// NewWithAPIKey creates a client with an explicit key and defaults for
// everything else.
func NewWithAPIKey(apiKey string) (bingwt.Client, error) {
	return New(&bingwt.Config{APIKey: apiKey})
}

// normalizeBaseURL trims a trailing slash and adds https:// when no scheme
// is present. An empty value stays empty; the client applies the production
// default.
func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return ""
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
