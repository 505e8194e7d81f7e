package client_test

import (
	"context"
	"encoding/json"
	"fmt"
	stdhttp "net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seotools-io/bingwt/pkg/bingwt"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestSubmissionService(t *testing.T) {
	t.Parallel()
	t.Run("SubmitURL posts site and url", func(t *testing.T) {
		t.Parallel()

		cli := newTestClient(t, stdhttp.HandlerFunc(func(writer stdhttp.ResponseWriter, request *stdhttp.Request) {
			assert.Equal(t, "/SubmitUrl", request.URL.Path)

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "https://example.test/", body["siteUrl"])
			assert.Equal(t, "https://example.test/new-page", body["url"])
			jsonResponse(writer, `null`)
		}))

		err := cli.Submission().SubmitURL(context.Background(), "https://example.test/", "https://example.test/new-page")
		require.NoError(t, err)
	})

	t.Run("SubmitURLBatch posts the url list", func(t *testing.T) {
		t.Parallel()

		cli := newTestClient(t, stdhttp.HandlerFunc(func(writer stdhttp.ResponseWriter, request *stdhttp.Request) {
			assert.Equal(t, "/SubmitUrlBatch", request.URL.Path)

			var body struct {
				SiteURL string   `json:"siteUrl"`
				URLList []string `json:"urlList"`
			}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "https://example.test/", body.SiteURL)
			assert.Equal(t, []string{"https://example.test/a", "https://example.test/b"}, body.URLList)
			jsonResponse(writer, `null`)
		}))

		err := cli.Submission().SubmitURLBatch(context.Background(), "https://example.test/", []string{
			"https://example.test/a",
			"https://example.test/b",
		})
		require.NoError(t, err)
	})

	t.Run("SubmitURLBatch validation", func(t *testing.T) {
		t.Parallel()

		cli := newTestClient(t, stdhttp.HandlerFunc(func(writer stdhttp.ResponseWriter, request *stdhttp.Request) {
			t.Error("request should not be sent")
		}))

		oversized := make([]string, 501)
		for i := range oversized {
			oversized[i] = fmt.Sprintf("https://example.test/page-%d", i)
		}

		tests := []struct {
			name string
			urls []string
		}{
			{"empty batch", nil},
			{"oversized batch", oversized},
			{"blank entry", []string{"https://example.test/a", ""}},
		}

		for _, testCase := range tests {
			t.Run(testCase.name, func(t *testing.T) {
				err := cli.Submission().SubmitURLBatch(context.Background(), "https://example.test/", testCase.urls)
				require.Error(t, err)
				assert.True(t, bingwt.IsValidation(err))
			})
		}
	})

	t.Run("quota endpoints decode the snapshot", func(t *testing.T) {
		t.Parallel()

		cli := newTestClient(t, stdhttp.HandlerFunc(func(writer stdhttp.ResponseWriter, request *stdhttp.Request) {
			switch request.URL.Path {
			case "/GetUrlSubmissionQuota":
				jsonResponse(writer, `{"DailyQuota": 85, "MonthlyQuota": 900}`)
			case "/GetContentSubmissionQuota":
				jsonResponse(writer, `{"DailyQuota": 40, "MonthlyQuota": 300}`)
			default:
				t.Errorf("unexpected path %s", request.URL.Path)
			}
		}))

		urlQuota, err := cli.Submission().GetURLSubmissionQuota(context.Background(), "https://example.test/")
		require.NoError(t, err)
		assert.Equal(t, 85, urlQuota.DailyRemaining)
		assert.Equal(t, 900, urlQuota.MonthlyRemaining)

		contentQuota, err := cli.Submission().GetContentSubmissionQuota(context.Background(), "https://example.test/")
		require.NoError(t, err)
		assert.Equal(t, 40, contentQuota.DailyRemaining)
		assert.Equal(t, 300, contentQuota.MonthlyRemaining)
	})

	t.Run("SubmitFeed posts the feed url", func(t *testing.T) {
		t.Parallel()

		cli := newTestClient(t, stdhttp.HandlerFunc(func(writer stdhttp.ResponseWriter, request *stdhttp.Request) {
			assert.Equal(t, "/SubmitFeed", request.URL.Path)

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "https://example.test/sitemap.xml", body["feedUrl"])
			jsonResponse(writer, `null`)
		}))

		err := cli.Submission().SubmitFeed(context.Background(), "https://example.test/", "https://example.test/sitemap.xml")
		require.NoError(t, err)
	})

	t.Run("GetFeeds decodes feeds with dates", func(t *testing.T) {
		t.Parallel()

		cli := newTestClient(t, stdhttp.HandlerFunc(func(writer stdhttp.ResponseWriter, request *stdhttp.Request) {
			assert.Equal(t, "/GetFeeds", request.URL.Path)
			jsonResponse(writer, `[
				{"Url": "https://example.test/sitemap.xml", "Status": "Processed", "LastCrawled": "/Date(1700000000000)/", "UrlCount": 120}
			]`)
		}))

		feeds, err := cli.Submission().GetFeeds(context.Background(), "https://example.test/")
		require.NoError(t, err)
		require.Len(t, feeds, 1)
		assert.Equal(t, "Processed", feeds[0].Status)
		assert.Equal(t, 120, feeds[0].URLCount)
		assert.False(t, feeds[0].LastCrawled.IsZero())
	})

	t.Run("throttling surfaces as a rate limit error", func(t *testing.T) {
		t.Parallel()

		cli := newTestClient(t, stdhttp.HandlerFunc(func(writer stdhttp.ResponseWriter, request *stdhttp.Request) {
			writer.WriteHeader(stdhttp.StatusBadRequest)
			_, _ = writer.Write([]byte(`{"ErrorCode": 9, "Message": "ThrottleUser"}`))
		}))

		err := cli.Submission().SubmitURL(context.Background(), "https://example.test/", "https://example.test/x")
		require.Error(t, err)
		assert.True(t, bingwt.IsRateLimit(err))
	})
}
