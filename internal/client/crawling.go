package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/seotools-io/bingwt/internal/constants"
	"github.com/seotools-io/bingwt/internal/http"
	"github.com/seotools-io/bingwt/pkg/bingwt"
)

// CrawlingService implements bingwt.CrawlingService.
type CrawlingService struct {
	httpClient *http.Client
}

// NewCrawlingService creates a new crawling service.
func NewCrawlingService(httpClient *http.Client) *CrawlingService {
	return &CrawlingService{httpClient: httpClient}
}

// GetCrawlStats implements bingwt.CrawlingService.GetCrawlStats.
func (s *CrawlingService) GetCrawlStats(ctx context.Context, siteURL string) ([]bingwt.CrawlStats, error) {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return nil, err
	}

	query := url.Values{"siteUrl": []string{siteURL}}

	resp, err := s.httpClient.Get(ctx, "/GetCrawlStats", query)
	if err != nil {
		return nil, fmt.Errorf("getting crawl stats: %w", err)
	}

	var stats []bingwt.CrawlStats

	err = decodeEnvelope(resp.Body, &stats)
	if err != nil {
		return nil, fmt.Errorf("parsing crawl stats: %w", err)
	}

	return stats, nil
}

// GetCrawlIssues implements bingwt.CrawlingService.GetCrawlIssues.
func (s *CrawlingService) GetCrawlIssues(ctx context.Context, siteURL string) ([]bingwt.CrawlIssue, error) {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return nil, err
	}

	query := url.Values{"siteUrl": []string{siteURL}}

	resp, err := s.httpClient.Get(ctx, "/GetCrawlIssues", query)
	if err != nil {
		return nil, fmt.Errorf("getting crawl issues: %w", err)
	}

	var issues []bingwt.CrawlIssue

	err = decodeEnvelope(resp.Body, &issues)
	if err != nil {
		return nil, fmt.Errorf("parsing crawl issues: %w", err)
	}

	return issues, nil
}

// GetCrawlSettings implements bingwt.CrawlingService.GetCrawlSettings.
func (s *CrawlingService) GetCrawlSettings(ctx context.Context, siteURL string) (*bingwt.CrawlSettings, error) {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return nil, err
	}

	query := url.Values{"siteUrl": []string{siteURL}}

	resp, err := s.httpClient.Get(ctx, "/GetCrawlSettings", query)
	if err != nil {
		return nil, fmt.Errorf("getting crawl settings: %w", err)
	}

	var settings bingwt.CrawlSettings

	err = decodeEnvelope(resp.Body, &settings)
	if err != nil {
		return nil, fmt.Errorf("parsing crawl settings: %w", err)
	}

	return &settings, nil
}

// SaveCrawlSettings implements bingwt.CrawlingService.SaveCrawlSettings.
// The crawl-rate pattern is one slot per hour of the day, each within the
// vendor's accepted range.
func (s *CrawlingService) SaveCrawlSettings(ctx context.Context, siteURL string, settings bingwt.CrawlSettings) error {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return err
	}

	if len(settings.CrawlRate) > 0 {
		if len(settings.CrawlRate) != constants.CrawlRateSlots {
			return bingwt.ValidationErrorf("crawl rate pattern must have %d hourly slots, got %d",
				constants.CrawlRateSlots, len(settings.CrawlRate))
		}

		for hour, rate := range settings.CrawlRate {
			if rate < constants.CrawlRateMin || rate > constants.CrawlRateMax {
				return bingwt.ValidationErrorf("crawl rate for hour %d out of range [%d, %d]: %d",
					hour, constants.CrawlRateMin, constants.CrawlRateMax, rate)
			}
		}
	}

	_, err := s.httpClient.Post(ctx, "/SaveCrawlSettings", map[string]interface{}{
		"siteUrl":       siteURL,
		"crawlSettings": settings,
	})
	if err != nil {
		return fmt.Errorf("saving crawl settings: %w", err)
	}

	return nil
}
