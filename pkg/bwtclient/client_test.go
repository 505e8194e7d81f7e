package bwtclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seotools-io/bingwt/pkg/bingwt"
	"github.com/seotools-io/bingwt/pkg/bwtclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := bwtclient.New(nil)
		require.Error(t, err)
		assert.True(t, bingwt.IsConfiguration(err))
		require.ErrorIs(t, err, bingwt.ErrConfigRequired)
	})

	t.Run("missing api key is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := bwtclient.New(&bingwt.Config{})
		require.Error(t, err)
		assert.True(t, bingwt.IsConfiguration(err))
	})

	t.Run("base url is normalized", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/GetUserSites", request.URL.Path)
			_, _ = writer.Write([]byte(`{"d": []}`))
		}))
		defer server.Close()

		// Trailing slash must not produce a double-slash path.
		cli, err := bwtclient.New(&bingwt.Config{
			APIKey:  "test-key",
			BaseURL: server.URL + "/",
		})
		require.NoError(t, err)

		defer func() { _ = cli.Close() }()

		_, err = cli.Sites().GetSites(context.Background())
		require.NoError(t, err)
	})

	t.Run("caller config is not retained", func(t *testing.T) {
		t.Parallel()

		config := &bingwt.Config{APIKey: "test-key", BaseURL: "https://mock.test/"}

		cli, err := bwtclient.New(config)
		require.NoError(t, err)

		defer func() { _ = cli.Close() }()

		assert.Equal(t, "https://mock.test/", config.BaseURL)
	})
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	cli, err := bwtclient.NewWithAPIKey("test-key")
	require.NoError(t, err)
	require.NoError(t, cli.Close())

	_, err = bwtclient.NewWithAPIKey("")
	require.Error(t, err)
	assert.True(t, bingwt.IsConfiguration(err))
}

func TestNewFromEnv(t *testing.T) {
	t.Run("builds from environment", func(t *testing.T) {
		t.Setenv(bingwt.EnvAPIKey, "env-key")

		cli, err := bwtclient.NewFromEnv()
		require.NoError(t, err)
		require.NoError(t, cli.Close())
	})

	t.Run("missing key fails", func(t *testing.T) {
		t.Setenv(bingwt.EnvAPIKey, "")

		_, err := bwtclient.NewFromEnv()
		require.Error(t, err)
		assert.True(t, bingwt.IsConfiguration(err))
	})
}
