package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/seotools-io/bingwt/internal/http"
	"github.com/seotools-io/bingwt/pkg/bingwt"
)

// TrafficService implements bingwt.TrafficService.
type TrafficService struct {
	httpClient *http.Client
}

// NewTrafficService creates a new traffic service.
func NewTrafficService(httpClient *http.Client) *TrafficService {
	return &TrafficService{httpClient: httpClient}
}

// GetQueryStats implements bingwt.TrafficService.GetQueryStats.
func (s *TrafficService) GetQueryStats(ctx context.Context, siteURL string) ([]bingwt.QueryStats, error) {
	return s.queryStats(ctx, "/GetQueryStats", siteURL, nil)
}

// GetQueryPageStats implements bingwt.TrafficService.GetQueryPageStats.
func (s *TrafficService) GetQueryPageStats(ctx context.Context, siteURL, query string) ([]bingwt.QueryStats, error) {
	if err := requireNonEmpty("query", query); err != nil {
		return nil, err
	}

	return s.queryStats(ctx, "/GetQueryPageStats", siteURL, url.Values{"query": []string{query}})
}

// GetQueryPageDetailStats implements bingwt.TrafficService.GetQueryPageDetailStats.
func (s *TrafficService) GetQueryPageDetailStats(ctx context.Context, siteURL, page string) ([]bingwt.QueryStats, error) {
	if err := requireNonEmpty("page", page); err != nil {
		return nil, err
	}

	return s.queryStats(ctx, "/GetQueryPageDetailStats", siteURL, url.Values{"page": []string{page}})
}

// GetPageStats implements bingwt.TrafficService.GetPageStats.
func (s *TrafficService) GetPageStats(ctx context.Context, siteURL string) ([]bingwt.QueryStats, error) {
	return s.queryStats(ctx, "/GetPageStats", siteURL, nil)
}

func (s *TrafficService) queryStats(ctx context.Context, path, siteURL string, extra url.Values) ([]bingwt.QueryStats, error) {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return nil, err
	}

	query := url.Values{"siteUrl": []string{siteURL}}
	for key, values := range extra {
		query[key] = values
	}

	resp, err := s.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting traffic stats: %w", err)
	}

	var stats []bingwt.QueryStats

	err = decodeEnvelope(resp.Body, &stats)
	if err != nil {
		return nil, fmt.Errorf("parsing traffic stats: %w", err)
	}

	return stats, nil
}

// GetRankAndTrafficStats implements bingwt.TrafficService.GetRankAndTrafficStats.
func (s *TrafficService) GetRankAndTrafficStats(ctx context.Context, siteURL string) ([]bingwt.RankAndTrafficStats, error) {
	if err := requireNonEmpty("siteURL", siteURL); err != nil {
		return nil, err
	}

	query := url.Values{"siteUrl": []string{siteURL}}

	resp, err := s.httpClient.Get(ctx, "/GetRankAndTrafficStats", query)
	if err != nil {
		return nil, fmt.Errorf("getting rank and traffic stats: %w", err)
	}

	var stats []bingwt.RankAndTrafficStats

	err = decodeEnvelope(resp.Body, &stats)
	if err != nil {
		return nil, fmt.Errorf("parsing rank and traffic stats: %w", err)
	}

	return stats, nil
}
