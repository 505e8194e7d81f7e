package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bwthttp "github.com/seotools-io/bingwt/internal/http"
	"github.com/seotools-io/bingwt/pkg/bingwt"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request with no retry", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			assert.Equal(t, "/GetUserSites", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-key", request.URL.Query().Get("apikey"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"d": []map[string]interface{}{{"Url": "https://example.test/"}},
			})
		}))
		defer server.Close()

		client := bwthttp.NewClient(server.URL, "test-key")

		resp, err := client.Do(context.Background(), &bwthttp.Request{
			Method: "GET",
			Path:   "/GetUserSites",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("request with query parameters keeps the api key", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "https://example.test/", request.URL.Query().Get("siteUrl"))
			assert.Equal(t, "2", request.URL.Query().Get("page"))
			assert.Equal(t, "test-key", request.URL.Query().Get("apikey"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := bwthttp.NewClient(server.URL, "test-key")

		resp, err := client.Do(context.Background(), &bwthttp.Request{
			Method: "GET",
			Path:   "/GetUrlLinks",
			Query: url.Values{
				"siteUrl": []string{"https://example.test/"},
				"page":    []string{"2"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Contains(t, request.Header.Get("Content-Type"), "application/json")

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "https://example.test/", body["siteUrl"])

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := bwthttp.NewClient(server.URL, "test-key")

		resp, err := client.Post(context.Background(), "/AddSite", map[string]string{
			"siteUrl": "https://example.test/",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := bwthttp.NewClient(server.URL, "test-key")

		resp, err := client.Do(context.Background(), &bwthttp.Request{
			Method: "GET",
			Path:   "/GetUserSites",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("error response carries the API payload", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"ErrorCode": bingwt.APICodeInvalidParameter,
				"Message":   "Invalid parameter: siteUrl",
			})
		}))
		defer server.Close()

		client := bwthttp.NewClient(server.URL, "test-key")

		resp, err := client.Get(context.Background(), "/GetCrawlStats", nil)
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.True(t, bingwt.IsValidation(err))

		var apiErr *bingwt.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, bingwt.APICodeInvalidParameter, apiErr.APICode)
		assert.Equal(t, "Invalid parameter: siteUrl", apiErr.Message)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"d": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := bwthttp.NewClient(server.URL, "test-key", bwthttp.WithLogger(logger), bwthttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/GetUserSites", nil)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := bwthttp.NewClient(server.URL, "test-key",
			bwthttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/GetUserSites", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("surfaces transient error after exhausting retries", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := bwthttp.NewClient(server.URL, "test-key",
			bwthttp.WithRetryConfig(2, 10*time.Millisecond, 50*time.Millisecond))

		_, err := client.Get(context.Background(), "/GetUserSites", nil)
		require.Error(t, err)
		assert.True(t, bingwt.IsTransient(err))
		// RetryMax retries after the initial attempt.
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("retries on rate limiting and honors Retry-After as a floor", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) == 1 {
				writer.Header().Set("Retry-After", "1")
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := bwthttp.NewClient(server.URL, "test-key",
			bwthttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		start := time.Now()
		resp, err := client.Get(context.Background(), "/SubmitUrl", nil)
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(2), attempts.Load())
		assert.GreaterOrEqual(t, elapsed, 1*time.Second)
		assert.Equal(t, uint64(1), client.RateLimitEvents())
	})

	t.Run("surfaces rate limit error after exhausting retries", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := bwthttp.NewClient(server.URL, "test-key",
			bwthttp.WithRetryConfig(2, 10*time.Millisecond, 50*time.Millisecond))

		_, err := client.Get(context.Background(), "/SubmitUrl", nil)
		require.Error(t, err)
		assert.True(t, bingwt.IsRateLimit(err))
		assert.Equal(t, int32(3), attempts.Load())
		assert.Equal(t, uint64(3), client.RateLimitEvents())
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := bwthttp.NewClient(server.URL, "test-key",
			bwthttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/GetCrawlStats", nil)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.True(t, bingwt.IsNotFound(err))
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("does not retry on authentication errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := bwthttp.NewClient(server.URL, "test-key",
			bwthttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		_, err := client.Get(context.Background(), "/GetUserSites", nil)
		require.Error(t, err)
		assert.True(t, bingwt.IsAuthentication(err))
		assert.Equal(t, int32(1), attempts.Load())
	})
}

func TestClient_Lifecycle(t *testing.T) {
	t.Parallel()
	t.Run("closed client rejects requests without sending", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := bwthttp.NewClient(server.URL, "test-key")
		client.Close()

		_, err := client.Get(context.Background(), "/GetUserSites", nil)
		require.Error(t, err)
		assert.True(t, bingwt.IsValidation(err))
		require.ErrorIs(t, err, bingwt.ErrClientClosed)
		assert.Equal(t, int32(0), attempts.Load())
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()

		client := bwthttp.NewClient("https://example.test", "test-key")
		client.Close()
		client.Close()
	})

	t.Run("cancellation surfaces through the taxonomy", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(200 * time.Millisecond)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := bwthttp.NewClient(server.URL, "test-key")

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.Get(ctx, "/GetUserSites", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.DeadlineExceeded) || bingwt.IsTransient(err))
	})
}
