package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/seotools-io/bingwt/internal/constants"
	"github.com/seotools-io/bingwt/internal/http"
	"github.com/seotools-io/bingwt/pkg/bingwt"
)

// SubmissionService implements bingwt.SubmissionService.
type SubmissionService struct {
	httpClient *http.Client
}

// NewSubmissionService creates a new submission service.
func NewSubmissionService(httpClient *http.Client) *SubmissionService {
	return &SubmissionService{httpClient: httpClient}
}

// SubmitURL implements bingwt.SubmissionService.SubmitURL.
func (s *SubmissionService) SubmitURL(ctx context.Context, siteURL, submitURL string) error {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return err
	}

	if err := requireNonEmpty("url", submitURL); err != nil {
		return err
	}

	_, err := s.httpClient.Post(ctx, "/SubmitUrl", map[string]string{
		"siteUrl": siteURL,
		"url":     submitURL,
	})
	if err != nil {
		return fmt.Errorf("submitting url: %w", err)
	}

	return nil
}

// SubmitURLBatch implements bingwt.SubmissionService.SubmitURLBatch. The
// batch size is bounded by the vendor's per-request limit; callers chunk
// larger sets themselves.
func (s *SubmissionService) SubmitURLBatch(ctx context.Context, siteURL string, urls []string) error {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return err
	}

	if len(urls) == 0 {
		return bingwt.ValidationErrorf("url batch must not be empty")
	}

	if len(urls) > constants.MaxURLBatchSize {
		return bingwt.ValidationErrorf("url batch exceeds %d urls, got %d", constants.MaxURLBatchSize, len(urls))
	}

	for i, u := range urls {
		if u == "" {
			return bingwt.ValidationErrorf("url batch entry %d is empty", i)
		}
	}

	_, err := s.httpClient.Post(ctx, "/SubmitUrlBatch", map[string]interface{}{
		"siteUrl": siteURL,
		"urlList": urls,
	})
	if err != nil {
		return fmt.Errorf("submitting url batch: %w", err)
	}

	return nil
}

// GetURLSubmissionQuota implements bingwt.SubmissionService.GetURLSubmissionQuota.
// The returned snapshot always reflects the server's last response.
func (s *SubmissionService) GetURLSubmissionQuota(ctx context.Context, siteURL string) (*bingwt.QuotaInfo, error) {
	return s.getQuota(ctx, "/GetUrlSubmissionQuota", siteURL)
}

// GetContentSubmissionQuota implements bingwt.SubmissionService.GetContentSubmissionQuota.
func (s *SubmissionService) GetContentSubmissionQuota(ctx context.Context, siteURL string) (*bingwt.QuotaInfo, error) {
	return s.getQuota(ctx, "/GetContentSubmissionQuota", siteURL)
}

func (s *SubmissionService) getQuota(ctx context.Context, path, siteURL string) (*bingwt.QuotaInfo, error) {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return nil, err
	}

	query := url.Values{"siteUrl": []string{siteURL}}

	resp, err := s.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting submission quota: %w", err)
	}

	var quota bingwt.QuotaInfo

	err = decodeEnvelope(resp.Body, &quota)
	if err != nil {
		return nil, fmt.Errorf("parsing submission quota: %w", err)
	}

	return &quota, nil
}

// SubmitFeed implements bingwt.SubmissionService.SubmitFeed.
func (s *SubmissionService) SubmitFeed(ctx context.Context, siteURL, feedURL string) error {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return err
	}

	if err := requireNonEmpty("feedURL", feedURL); err != nil {
		return err
	}

	_, err := s.httpClient.Post(ctx, "/SubmitFeed", map[string]string{
		"siteUrl": siteURL,
		"feedUrl": feedURL,
	})
	if err != nil {
		return fmt.Errorf("submitting feed: %w", err)
	}

	return nil
}

// GetFeeds implements bingwt.SubmissionService.GetFeeds.
func (s *SubmissionService) GetFeeds(ctx context.Context, siteURL string) ([]bingwt.Feed, error) {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return nil, err
	}

	query := url.Values{"siteUrl": []string{siteURL}}

	resp, err := s.httpClient.Get(ctx, "/GetFeeds", query)
	if err != nil {
		return nil, fmt.Errorf("getting feeds: %w", err)
	}

	var feeds []bingwt.Feed

	err = decodeEnvelope(resp.Body, &feeds)
	if err != nil {
		return nil, fmt.Errorf("parsing feeds: %w", err)
	}

	return feeds, nil
}
