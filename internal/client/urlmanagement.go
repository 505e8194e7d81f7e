package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/seotools-io/bingwt/internal/http"
	"github.com/seotools-io/bingwt/pkg/bingwt"
)

// URLManagementService implements bingwt.URLManagementService.
type URLManagementService struct {
	httpClient *http.Client
}

// NewURLManagementService creates a new URL management service.
func NewURLManagementService(httpClient *http.Client) *URLManagementService {
	return &URLManagementService{httpClient: httpClient}
}

// GetQueryParameters implements bingwt.URLManagementService.GetQueryParameters.
func (s *URLManagementService) GetQueryParameters(ctx context.Context, siteURL string) ([]bingwt.QueryParameter, error) {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return nil, err
	}

	query := url.Values{"siteUrl": []string{siteURL}}

	resp, err := s.httpClient.Get(ctx, "/GetQueryParameters", query)
	if err != nil {
		return nil, fmt.Errorf("getting query parameters: %w", err)
	}

	var parameters []bingwt.QueryParameter

	err = decodeEnvelope(resp.Body, &parameters)
	if err != nil {
		return nil, fmt.Errorf("parsing query parameters: %w", err)
	}

	return parameters, nil
}

// AddQueryParameter implements bingwt.URLManagementService.AddQueryParameter.
// The parameter format is validated locally; the server never sees an
// illegal value.
func (s *URLManagementService) AddQueryParameter(ctx context.Context, siteURL, parameter string) error {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return err
	}

	if err := validateQueryParameter(parameter); err != nil {
		return err
	}

	_, err := s.httpClient.Post(ctx, "/AddQueryParameter", map[string]string{
		"siteUrl":   siteURL,
		"parameter": parameter,
	})
	if err != nil {
		return fmt.Errorf("adding query parameter: %w", err)
	}

	return nil
}

// RemoveQueryParameter implements bingwt.URLManagementService.RemoveQueryParameter.
func (s *URLManagementService) RemoveQueryParameter(ctx context.Context, siteURL, parameter string) error {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return err
	}

	if err := validateQueryParameter(parameter); err != nil {
		return err
	}

	_, err := s.httpClient.Post(ctx, "/RemoveQueryParameter", map[string]string{
		"siteUrl":   siteURL,
		"parameter": parameter,
	})
	if err != nil {
		return fmt.Errorf("removing query parameter: %w", err)
	}

	return nil
}

// EnableDisableQueryParameter implements bingwt.URLManagementService.EnableDisableQueryParameter.
func (s *URLManagementService) EnableDisableQueryParameter(ctx context.Context, siteURL, parameter string, enabled bool) error {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return err
	}

	if err := validateQueryParameter(parameter); err != nil {
		return err
	}

	_, err := s.httpClient.Post(ctx, "/EnableDisableQueryParameter", map[string]interface{}{
		"siteUrl":   siteURL,
		"parameter": parameter,
		"isEnabled": enabled,
	})
	if err != nil {
		return fmt.Errorf("toggling query parameter: %w", err)
	}

	return nil
}

// GetFetchedURLs implements bingwt.URLManagementService.GetFetchedURLs.
func (s *URLManagementService) GetFetchedURLs(ctx context.Context, siteURL string) ([]bingwt.FetchedURL, error) {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return nil, err
	}

	query := url.Values{"siteUrl": []string{siteURL}}

	resp, err := s.httpClient.Get(ctx, "/GetFetchedUrls", query)
	if err != nil {
		return nil, fmt.Errorf("getting fetched urls: %w", err)
	}

	var fetched []bingwt.FetchedURL

	err = decodeEnvelope(resp.Body, &fetched)
	if err != nil {
		return nil, fmt.Errorf("parsing fetched urls: %w", err)
	}

	return fetched, nil
}

// GetFetchedURLDetails implements bingwt.URLManagementService.GetFetchedURLDetails.
func (s *URLManagementService) GetFetchedURLDetails(ctx context.Context, siteURL, fetchedURL string) (*bingwt.FetchedURLDetails, error) {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return nil, err
	}

	if err := requireNonEmpty("url", fetchedURL); err != nil {
		return nil, err
	}

	query := url.Values{
		"siteUrl": []string{siteURL},
		"url":     []string{fetchedURL},
	}

	resp, err := s.httpClient.Get(ctx, "/GetFetchedUrlDetails", query)
	if err != nil {
		return nil, fmt.Errorf("getting fetched url details: %w", err)
	}

	var details bingwt.FetchedURLDetails

	err = decodeEnvelope(resp.Body, &details)
	if err != nil {
		return nil, fmt.Errorf("parsing fetched url details: %w", err)
	}

	return &details, nil
}

// FetchURL implements bingwt.URLManagementService.FetchURL.
func (s *URLManagementService) FetchURL(ctx context.Context, siteURL, fetchURL string) error {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return err
	}

	if err := requireNonEmpty("url", fetchURL); err != nil {
		return err
	}

	_, err := s.httpClient.Post(ctx, "/FetchUrl", map[string]string{
		"siteUrl": siteURL,
		"url":     fetchURL,
	})
	if err != nil {
		return fmt.Errorf("fetching url: %w", err)
	}

	return nil
}

func validateQueryParameter(parameter string) error {
	if !queryParameterPattern.MatchString(parameter) {
		return bingwt.ValidationErrorf("invalid query parameter %q", parameter)
	}

	return nil
}
