package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/seotools-io/bingwt/internal/http"
	"github.com/seotools-io/bingwt/pkg/bingwt"
)

// SitesService implements bingwt.SitesService.
type SitesService struct {
	httpClient *http.Client
}

// NewSitesService creates a new sites service.
func NewSitesService(httpClient *http.Client) *SitesService {
	return &SitesService{httpClient: httpClient}
}

// GetSites implements bingwt.SitesService.GetSites.
func (s *SitesService) GetSites(ctx context.Context) ([]bingwt.Site, error) {
	resp, err := s.httpClient.Get(ctx, "/GetUserSites", nil)
	if err != nil {
		return nil, fmt.Errorf("getting sites: %w", err)
	}

	var sites []bingwt.Site

	err = decodeEnvelope(resp.Body, &sites)
	if err != nil {
		return nil, fmt.Errorf("parsing sites: %w", err)
	}

	return sites, nil
}

// AddSite implements bingwt.SitesService.AddSite.
func (s *SitesService) AddSite(ctx context.Context, siteURL string) error {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return err
	}

	_, err := s.httpClient.Post(ctx, "/AddSite", map[string]string{"siteUrl": siteURL})
	if err != nil {
		return fmt.Errorf("adding site: %w", err)
	}

	return nil
}

// RemoveSite implements bingwt.SitesService.RemoveSite.
func (s *SitesService) RemoveSite(ctx context.Context, siteURL string) error {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return err
	}

	_, err := s.httpClient.Post(ctx, "/RemoveSite", map[string]string{"siteUrl": siteURL})
	if err != nil {
		return fmt.Errorf("removing site: %w", err)
	}

	return nil
}

// VerifySite implements bingwt.SitesService.VerifySite.
func (s *SitesService) VerifySite(ctx context.Context, siteURL string) (bool, error) {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return false, err
	}

	query := url.Values{"siteUrl": []string{siteURL}}

	resp, err := s.httpClient.Get(ctx, "/VerifySite", query)
	if err != nil {
		return false, fmt.Errorf("verifying site: %w", err)
	}

	var verified bool

	err = decodeEnvelope(resp.Body, &verified)
	if err != nil {
		return false, fmt.Errorf("parsing verification result: %w", err)
	}

	return verified, nil
}
