package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/seotools-io/bingwt/internal/http"
	"github.com/seotools-io/bingwt/pkg/bingwt"
)

// LinksService implements bingwt.LinksService.
type LinksService struct {
	httpClient *http.Client
}

// NewLinksService creates a new links service.
func NewLinksService(httpClient *http.Client) *LinksService {
	return &LinksService{httpClient: httpClient}
}

// GetLinkCounts implements bingwt.LinksService.GetLinkCounts.
func (s *LinksService) GetLinkCounts(ctx context.Context, siteURL string, page int) (*bingwt.LinkCounts, error) {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return nil, err
	}

	if err := requirePage(page); err != nil {
		return nil, err
	}

	query := url.Values{
		"siteUrl": []string{siteURL},
		"page":    []string{strconv.Itoa(page)},
	}

	resp, err := s.httpClient.Get(ctx, "/GetLinkCounts", query)
	if err != nil {
		return nil, fmt.Errorf("getting link counts: %w", err)
	}

	var counts bingwt.LinkCounts

	err = decodeEnvelope(resp.Body, &counts)
	if err != nil {
		return nil, fmt.Errorf("parsing link counts: %w", err)
	}

	return &counts, nil
}

// GetURLLinks implements bingwt.LinksService.GetURLLinks.
func (s *LinksService) GetURLLinks(ctx context.Context, siteURL, link string, page int) (*bingwt.LinkDetails, error) {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return nil, err
	}

	if err := requireNonEmpty("link", link); err != nil {
		return nil, err
	}

	if err := requirePage(page); err != nil {
		return nil, err
	}

	query := url.Values{
		"siteUrl": []string{siteURL},
		"link":    []string{link},
		"page":    []string{strconv.Itoa(page)},
	}

	resp, err := s.httpClient.Get(ctx, "/GetUrlLinks", query)
	if err != nil {
		return nil, fmt.Errorf("getting url links: %w", err)
	}

	var details bingwt.LinkDetails

	err = decodeEnvelope(resp.Body, &details)
	if err != nil {
		return nil, fmt.Errorf("parsing url links: %w", err)
	}

	return &details, nil
}

// AllLinkCounts implements bingwt.LinksService.AllLinkCounts.
func (s *LinksService) AllLinkCounts(ctx context.Context, siteURL string, maxPages int) ([]bingwt.LinkCount, error) {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return nil, err
	}

	it, err := bingwt.NewPageIterator(ctx, func(ctx context.Context, page int) (*bingwt.Page[bingwt.LinkCount], error) {
		counts, err := s.GetLinkCounts(ctx, siteURL, page)
		if err != nil {
			return nil, err
		}

		return &bingwt.Page[bingwt.LinkCount]{Items: counts.Links, TotalPages: counts.TotalPages}, nil
	}, bingwt.PageOptions{MaxPages: maxPages})
	if err != nil {
		return nil, err
	}

	return it.All()
}

// AllURLLinks implements bingwt.LinksService.AllURLLinks.
func (s *LinksService) AllURLLinks(ctx context.Context, siteURL, link string, maxPages int) ([]bingwt.LinkDetail, error) {
	it, err := s.IterateURLLinks(ctx, siteURL, link, maxPages)
	if err != nil {
		return nil, err
	}

	return it.All()
}

// IterateURLLinks implements bingwt.LinksService.IterateURLLinks.
func (s *LinksService) IterateURLLinks(ctx context.Context, siteURL, link string, maxPages int) (*bingwt.PageIterator[bingwt.LinkDetail], error) {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return nil, err
	}

	if err := requireNonEmpty("link", link); err != nil {
		return nil, err
	}

	return bingwt.NewPageIterator(ctx, func(ctx context.Context, page int) (*bingwt.Page[bingwt.LinkDetail], error) {
		details, err := s.GetURLLinks(ctx, siteURL, link, page)
		if err != nil {
			return nil, err
		}

		return &bingwt.Page[bingwt.LinkDetail]{Items: details.Details, TotalPages: details.TotalPages}, nil
	}, bingwt.PageOptions{MaxPages: maxPages})
}
