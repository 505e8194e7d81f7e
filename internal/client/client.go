// Package client implements the bingwt.Client interface: the root client
// owning the shared transport, and one capability service per API area.
package client

import (
	"encoding/json"
	"regexp"

	"github.com/seotools-io/bingwt/internal/http"
	"github.com/seotools-io/bingwt/pkg/bingwt"
)

// Client implements bingwt.Client.
type Client struct {
	httpClient *http.Client
	logger     bingwt.Logger

	sites      bingwt.SitesService
	submission bingwt.SubmissionService
	crawling   bingwt.CrawlingService
	keywords   bingwt.KeywordsService
	links      bingwt.LinksService
	traffic    bingwt.TrafficService
	blocking   bingwt.BlockingService
	urls       bingwt.URLManagementService
	regional   bingwt.RegionalService
}

// New creates a client from config. The config must already carry a valid
// credential; defaults are applied for everything else.
func New(config *bingwt.Config) (*Client, error) {
	if config == nil {
		return nil, &bingwt.Error{
			Kind:    bingwt.KindConfiguration,
			Message: "config is required",
			Err:     bingwt.ErrConfigRequired,
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg := *config
	cfg.ApplyDefaults()

	httpOpts := []http.Option{
		http.WithRetryConfig(cfg.RetryMax, cfg.RetryWaitMin, cfg.RetryWaitMax),
		http.WithTimeout(cfg.RequestTimeout),
		http.WithUserAgent(cfg.UserAgent),
	}

	if cfg.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(cfg.Logger))
	}

	if cfg.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	client := &Client{
		httpClient: http.NewClient(cfg.BaseURL, cfg.APIKey, httpOpts...),
		logger:     cfg.Logger,
	}

	client.initializeServices()

	return client, nil
}

func (c *Client) initializeServices() {
	c.sites = NewSitesService(c.httpClient)
	c.submission = NewSubmissionService(c.httpClient)
	c.crawling = NewCrawlingService(c.httpClient)
	c.keywords = NewKeywordsService(c.httpClient)
	c.links = NewLinksService(c.httpClient)
	c.traffic = NewTrafficService(c.httpClient)
	c.blocking = NewBlockingService(c.httpClient)
	c.urls = NewURLManagementService(c.httpClient)
	c.regional = NewRegionalService(c.httpClient)
}

// Sites implements bingwt.Client.Sites.
func (c *Client) Sites() bingwt.SitesService { return c.sites }

// Submission implements bingwt.Client.Submission.
func (c *Client) Submission() bingwt.SubmissionService { return c.submission }

// Crawling implements bingwt.Client.Crawling.
func (c *Client) Crawling() bingwt.CrawlingService { return c.crawling }

// Keywords implements bingwt.Client.Keywords.
func (c *Client) Keywords() bingwt.KeywordsService { return c.keywords }

// Links implements bingwt.Client.Links.
func (c *Client) Links() bingwt.LinksService { return c.links }

// Traffic implements bingwt.Client.Traffic.
func (c *Client) Traffic() bingwt.TrafficService { return c.traffic }

// Blocking implements bingwt.Client.Blocking.
func (c *Client) Blocking() bingwt.BlockingService { return c.blocking }

// URLs implements bingwt.Client.URLs.
func (c *Client) URLs() bingwt.URLManagementService { return c.urls }

// Regional implements bingwt.Client.Regional.
func (c *Client) Regional() bingwt.RegionalService { return c.regional }

// RateLimitEvents implements bingwt.Client.RateLimitEvents.
func (c *Client) RateLimitEvents() uint64 {
	return c.httpClient.RateLimitEvents()
}

// Close implements bingwt.Client.Close.
func (c *Client) Close() error {
	c.httpClient.Close()

	return nil
}

// decodeEnvelope unwraps the vendor's {"d": ...} envelope and decodes the
// payload into v. A nil v skips payload decoding (void operations).
func decodeEnvelope(body []byte, v interface{}) error {
	if v == nil {
		return nil
	}

	var envelope struct {
		D json.RawMessage `json:"d"`
	}

	payload := body

	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.D) > 0 {
		payload = envelope.D
	}

	if string(payload) == "null" {
		return nil
	}

	if err := json.Unmarshal(payload, v); err != nil {
		return &bingwt.Error{
			Kind:    bingwt.KindDecode,
			Message: "response body does not match expected shape",
			Err:     err,
		}
	}

	return nil
}

var queryParameterPattern = regexp.MustCompile(`^[A-Za-z0-9_:-]+$`)

// requireNonEmpty rejects blank required string arguments before any
// request is sent.
func requireNonEmpty(name, value string) error {
	if value == "" {
		return bingwt.ValidationErrorf("%s must not be empty", name)
	}

	return nil
}

// requirePage rejects negative page indices before any request is sent.
func requirePage(page int) error {
	if page < 0 {
		return bingwt.ValidationErrorf("page index must not be negative, got %d", page)
	}

	return nil
}
