package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seotools-io/bingwt/pkg/bingwt"
)

func TestReadURLFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "urls.txt")
	content := "https://example.test/a\n\n# comment\nhttps://example.test/b  \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	urls, err := readURLFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.test/a", "https://example.test/b"}, urls)
}

func TestReadURLFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := readURLFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestFormatHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NotAvailable, formatDate(bingwt.Date{}))
	assert.Equal(t, "2023-11-14", formatDate(bingwt.Date{Time: time.Date(2023, 11, 14, 22, 0, 0, 0, time.UTC)}))
	assert.Equal(t, "yes", formatBool(true))
	assert.Equal(t, "no", formatBool(false))
}

func TestKeywordWindow(t *testing.T) {
	t.Parallel()

	start, end := keywordWindow(30)
	assert.Equal(t, 30*24*time.Hour, end.Sub(start))
	assert.True(t, end.After(start))
}

func TestBlockedEntityType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bingwt.BlockedURLEntityDirectory, blockedEntityType(true))
	assert.Equal(t, bingwt.BlockedURLEntityPage, blockedEntityType(false))
}
