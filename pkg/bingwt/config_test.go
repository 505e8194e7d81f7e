package bingwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seotools-io/bingwt/pkg/bingwt"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		apiKey  string
		wantErr bool
	}{
		{"valid key", "0123456789abcdef0123456789abcdef", false},
		{"missing key", "", true},
		{"key with spaces", "abc def", true},
		{"key with newline", "abcdef\n", true},
		{"non-ascii key", "abcdéf", true},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			config := &bingwt.Config{APIKey: testCase.apiKey}

			err := config.Validate()
			if testCase.wantErr {
				require.Error(t, err)
				assert.True(t, bingwt.IsConfiguration(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	t.Parallel()
	t.Run("fills unset fields", func(t *testing.T) {
		t.Parallel()

		config := &bingwt.Config{APIKey: "test-key"}
		config.ApplyDefaults()

		assert.Equal(t, "https://ssl.bing.com/webmaster/api.svc/json", config.BaseURL)
		assert.Equal(t, 30*time.Second, config.RequestTimeout)
		assert.Equal(t, 3, config.RetryMax)
		assert.Equal(t, 1*time.Second, config.RetryWaitMin)
		assert.Equal(t, 30*time.Second, config.RetryWaitMax)
		assert.NotEmpty(t, config.UserAgent)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		t.Parallel()

		config := &bingwt.Config{
			APIKey:         "test-key",
			BaseURL:        "https://mock.test/api",
			RequestTimeout: 5 * time.Second,
			RetryMax:       7,
		}
		config.ApplyDefaults()

		assert.Equal(t, "https://mock.test/api", config.BaseURL)
		assert.Equal(t, 5*time.Second, config.RequestTimeout)
		assert.Equal(t, 7, config.RetryMax)
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("reads key and overrides", func(t *testing.T) {
		t.Setenv(bingwt.EnvAPIKey, "env-key")
		t.Setenv(bingwt.EnvBaseURL, "https://mock.test/api")
		t.Setenv(bingwt.EnvTimeout, "15s")
		t.Setenv(bingwt.EnvRetryMax, "5")

		config, err := bingwt.ConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "env-key", config.APIKey)
		assert.Equal(t, "https://mock.test/api", config.BaseURL)
		assert.Equal(t, 15*time.Second, config.RequestTimeout)
		assert.Equal(t, 5, config.RetryMax)
	})

	t.Run("missing key fails", func(t *testing.T) {
		t.Setenv(bingwt.EnvAPIKey, "")

		_, err := bingwt.ConfigFromEnv()
		require.Error(t, err)
		assert.True(t, bingwt.IsConfiguration(err))
	})

	t.Run("malformed timeout fails", func(t *testing.T) {
		t.Setenv(bingwt.EnvAPIKey, "env-key")
		t.Setenv(bingwt.EnvTimeout, "not-a-duration")

		_, err := bingwt.ConfigFromEnv()
		require.Error(t, err)
		assert.True(t, bingwt.IsConfiguration(err))
	})

	t.Run("negative retry max fails", func(t *testing.T) {
		t.Setenv(bingwt.EnvAPIKey, "env-key")
		t.Setenv(bingwt.EnvTimeout, "")
		t.Setenv(bingwt.EnvRetryMax, "-1")

		_, err := bingwt.ConfigFromEnv()
		require.Error(t, err)
		assert.True(t, bingwt.IsConfiguration(err))
	})
}
