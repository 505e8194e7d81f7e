// Package http implements the transport shared by every capability service:
// authenticated request dispatch, bounded retry with jittered exponential
// backoff, failure classification, and connection-pool lifecycle.
package http

import (
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/seotools-io/bingwt/internal/constants"
	"github.com/seotools-io/bingwt/pkg/bingwt"
)

// Request describes one API call. Value type, constructed per call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the raw outcome of one API call, consumed immediately by the
// caller or the error taxonomy.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes API requests over one shared connection pool. All methods
// are safe for concurrent use; Close releases the pool exactly once.
type Client struct {
	baseURL   string
	apiKey    string
	retry     *retryablehttp.Client
	logger    bingwt.Logger
	debug     bool
	userAgent string

	closeOnce       sync.Once
	closed          atomic.Bool
	rateLimitEvents atomic.Uint64
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger bingwt.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes the retry policy. retryMax is the number of retries
// after the initial attempt; waitMin is the backoff base and waitMax the
// backoff cap.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retry.RetryMax = retryMax
		c.retry.RetryWaitMin = waitMin
		c.retry.RetryWaitMax = waitMax
	}
}

// WithTimeout bounds each individual HTTP attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retry.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a transport for baseURL. The API key is attached to
// every outgoing request as the apikey query parameter; no request is ever
// sent without it.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	client := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		apiKey:    apiKey,
		userAgent: constants.DefaultUserAgent,
	}

	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.CheckRetry = client.checkRetry
	retryClient.Backoff = client.backoff
	// Keep the last response so it can be classified instead of swallowed.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client.retry = retryClient

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes one request, retrying transient failures per the configured
// policy, and classifies any failure into the error taxonomy.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.closed.Load() {
		return nil, &bingwt.Error{
			Kind:    bingwt.KindValidation,
			Message: "request on closed client",
			Err:     bingwt.ErrClientClosed,
		}
	}

	fullURL := c.buildURL(req)

	var bodyData []byte

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &bingwt.Error{
				Kind:    bingwt.KindValidation,
				Message: "encoding request body",
				Err:     err,
			}
		}

		bodyData = data
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyData)
	if err != nil {
		return nil, &bingwt.Error{
			Kind:    bingwt.KindValidation,
			Message: "building request",
			Err:     err,
		}
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if bodyData != nil {
		httpReq.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})
	}

	httpResp, err := c.retry.Do(httpReq)
	if err != nil {
		if httpResp != nil {
			_ = httpResp.Body.Close()
		}

		return nil, classifyTransportError(err)
	}

	body, err := io.ReadAll(httpResp.Body)

	_ = httpResp.Body.Close()

	if err != nil {
		return nil, &bingwt.Error{
			Kind:    bingwt.KindTransient,
			Message: "reading response body",
			Err:     err,
		}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
			"status": resp.StatusCode,
		})
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	return resp, bingwt.ClassifyResponse(resp.StatusCode, body)
}

// Get executes a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post executes a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// RateLimitEvents reports how many 429 responses have been observed over
// the client's lifetime. Informational: it never gates a request.
func (c *Client) RateLimitEvents() uint64 {
	return c.rateLimitEvents.Load()
}

// Close releases idle connections. Exactly one release regardless of how
// many times it is called; subsequent Do calls fail without sending.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.retry.HTTPClient.CloseIdleConnections()
	})
}

func (c *Client) buildURL(req *Request) string {
	query := url.Values{}
	for key, values := range req.Query {
		query[key] = values
	}

	query.Set("apikey", c.apiKey)

	return c.baseURL + "/" + strings.TrimPrefix(req.Path, "/") + "?" + query.Encode()
}

// checkRetry retries network-level failures, 5xx, and 429; everything else
// is final. Context cancellation aborts immediately.
func (c *Client) checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return true, nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		c.rateLimitEvents.Add(1)

		return true, nil
	}

	if resp.StatusCode >= 500 {
		return true, nil
	}

	return false, nil
}

// backoff computes min(waitMin * 2^attempt, waitMax) with ±20% jitter. A
// server-provided Retry-After acts as a floor on the delay, never a
// replacement: the larger of the two wins.
func (c *Client) backoff(waitMin, waitMax time.Duration, attemptNum int, resp *http.Response) time.Duration {
	delay := waitMin << uint(attemptNum)
	if delay <= 0 || delay > waitMax {
		delay = waitMax
	}

	jitter := 1 + constants.BackoffJitterFraction*(2*rand.Float64()-1) //nolint:gosec // jitter, not crypto
	delay = time.Duration(float64(delay) * jitter)

	if floor := retryAfter(resp); floor > delay {
		delay = floor
	}

	return delay
}

// retryAfter extracts the Retry-After signal from a 429/503 response.
func retryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}

	if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode != http.StatusServiceUnavailable {
		return 0
	}

	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}

	if secs, err := strconv.Atoi(header); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}

	if t, err := http.ParseTime(header); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}

	return 0
}

// classifyTransportError maps an error returned by the retrying client
// (network failure after exhausted retries, or cancellation) into the
// taxonomy. Cancellation stays reachable through errors.Is via Unwrap.
func classifyTransportError(err error) *bingwt.Error {
	return &bingwt.Error{
		Kind:    bingwt.KindTransient,
		Message: "request failed",
		Err:     err,
	}
}
