package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/seotools-io/bingwt/internal/http"
	"github.com/seotools-io/bingwt/pkg/bingwt"
)

// BlockingService implements bingwt.BlockingService.
type BlockingService struct {
	httpClient *http.Client
}

// NewBlockingService creates a new blocking service.
func NewBlockingService(httpClient *http.Client) *BlockingService {
	return &BlockingService{httpClient: httpClient}
}

// GetBlockedURLs implements bingwt.BlockingService.GetBlockedURLs.
func (s *BlockingService) GetBlockedURLs(ctx context.Context, siteURL string) ([]bingwt.BlockedURL, error) {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return nil, err
	}

	query := url.Values{"siteUrl": []string{siteURL}}

	resp, err := s.httpClient.Get(ctx, "/GetBlockedUrls", query)
	if err != nil {
		return nil, fmt.Errorf("getting blocked urls: %w", err)
	}

	var blocked []bingwt.BlockedURL

	err = decodeEnvelope(resp.Body, &blocked)
	if err != nil {
		return nil, fmt.Errorf("parsing blocked urls: %w", err)
	}

	return blocked, nil
}

// AddBlockedURL implements bingwt.BlockingService.AddBlockedURL.
func (s *BlockingService) AddBlockedURL(ctx context.Context, siteURL string, blocked bingwt.BlockedURL) error {
	return s.updateBlockedURL(ctx, "/AddBlockedUrl", siteURL, blocked)
}

// RemoveBlockedURL implements bingwt.BlockingService.RemoveBlockedURL.
func (s *BlockingService) RemoveBlockedURL(ctx context.Context, siteURL string, blocked bingwt.BlockedURL) error {
	return s.updateBlockedURL(ctx, "/RemoveBlockedUrl", siteURL, blocked)
}

func (s *BlockingService) updateBlockedURL(ctx context.Context, path, siteURL string, blocked bingwt.BlockedURL) error {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return err
	}

	if err := requireNonEmpty("blocked.URL", blocked.URL); err != nil {
		return err
	}

	_, err := s.httpClient.Post(ctx, path, map[string]interface{}{
		"siteUrl":    siteURL,
		"blockedUrl": blocked,
	})
	if err != nil {
		return fmt.Errorf("updating blocked url: %w", err)
	}

	return nil
}
