package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/seotools-io/bingwt/internal/http"
	"github.com/seotools-io/bingwt/pkg/bingwt"
)

// RegionalService implements bingwt.RegionalService.
type RegionalService struct {
	httpClient *http.Client
}

// NewRegionalService creates a new regional settings service.
func NewRegionalService(httpClient *http.Client) *RegionalService {
	return &RegionalService{httpClient: httpClient}
}

// GetCountryRegionSettings implements bingwt.RegionalService.GetCountryRegionSettings.
func (s *RegionalService) GetCountryRegionSettings(ctx context.Context, siteURL string) ([]bingwt.CountryRegionSettings, error) {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return nil, err
	}

	query := url.Values{"siteUrl": []string{siteURL}}

	resp, err := s.httpClient.Get(ctx, "/GetCountryRegionSettings", query)
	if err != nil {
		return nil, fmt.Errorf("getting country region settings: %w", err)
	}

	var settings []bingwt.CountryRegionSettings

	err = decodeEnvelope(resp.Body, &settings)
	if err != nil {
		return nil, fmt.Errorf("parsing country region settings: %w", err)
	}

	return settings, nil
}

// AddCountryRegionSettings implements bingwt.RegionalService.AddCountryRegionSettings.
func (s *RegionalService) AddCountryRegionSettings(ctx context.Context, siteURL string, settings bingwt.CountryRegionSettings) error {
	return s.updateSettings(ctx, "/AddCountryRegionSettings", siteURL, settings)
}

// RemoveCountryRegionSettings implements bingwt.RegionalService.RemoveCountryRegionSettings.
func (s *RegionalService) RemoveCountryRegionSettings(ctx context.Context, siteURL string, settings bingwt.CountryRegionSettings) error {
	return s.updateSettings(ctx, "/RemoveCountryRegionSettings", siteURL, settings)
}

func (s *RegionalService) updateSettings(ctx context.Context, path, siteURL string, settings bingwt.CountryRegionSettings) error {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return err
	}

	if err := requireNonEmpty("settings.TwoLetterISO", settings.TwoLetterISO); err != nil {
		return err
	}

	_, err := s.httpClient.Post(ctx, path, map[string]interface{}{
		"siteUrl":  siteURL,
		"settings": settings,
	})
	if err != nil {
		return fmt.Errorf("updating country region settings: %w", err)
	}

	return nil
}
