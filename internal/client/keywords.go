package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/seotools-io/bingwt/internal/http"
	"github.com/seotools-io/bingwt/pkg/bingwt"
)

// KeywordsService implements bingwt.KeywordsService.
type KeywordsService struct {
	httpClient *http.Client
}

// NewKeywordsService creates a new keywords service.
func NewKeywordsService(httpClient *http.Client) *KeywordsService {
	return &KeywordsService{httpClient: httpClient}
}

// GetKeyword implements bingwt.KeywordsService.GetKeyword. Returns nil
// without error when the vendor has no data for the period.
func (s *KeywordsService) GetKeyword(ctx context.Context, query, country, language string, startDate, endDate time.Time) (*bingwt.Keyword, error) {
	if err := requireNonEmpty("query", query); err != nil {
		return nil, err
	}

	params := keywordParams(query, country, language)
	params.Set("startDate", bingwt.FormatAPIDate(startDate))
	params.Set("endDate", bingwt.FormatAPIDate(endDate))

	resp, err := s.httpClient.Get(ctx, "/GetKeyword", params)
	if err != nil {
		return nil, fmt.Errorf("getting keyword: %w", err)
	}

	var keyword *bingwt.Keyword

	err = decodeEnvelope(resp.Body, &keyword)
	if err != nil {
		return nil, fmt.Errorf("parsing keyword: %w", err)
	}

	return keyword, nil
}

// GetKeywordStats implements bingwt.KeywordsService.GetKeywordStats.
func (s *KeywordsService) GetKeywordStats(ctx context.Context, query, country, language string) ([]bingwt.KeywordStats, error) {
	if err := requireNonEmpty("query", query); err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Get(ctx, "/GetKeywordStats", keywordParams(query, country, language))
	if err != nil {
		return nil, fmt.Errorf("getting keyword stats: %w", err)
	}

	var stats []bingwt.KeywordStats

	err = decodeEnvelope(resp.Body, &stats)
	if err != nil {
		return nil, fmt.Errorf("parsing keyword stats: %w", err)
	}

	return stats, nil
}

// GetRelatedKeywords implements bingwt.KeywordsService.GetRelatedKeywords.
func (s *KeywordsService) GetRelatedKeywords(ctx context.Context, query, country, language string, startDate, endDate time.Time) ([]bingwt.Keyword, error) {
	if err := requireNonEmpty("query", query); err != nil {
		return nil, err
	}

	params := keywordParams(query, country, language)
	params.Set("startDate", bingwt.FormatAPIDate(startDate))
	params.Set("endDate", bingwt.FormatAPIDate(endDate))

	resp, err := s.httpClient.Get(ctx, "/GetRelatedKeywords", params)
	if err != nil {
		return nil, fmt.Errorf("getting related keywords: %w", err)
	}

	var keywords []bingwt.Keyword

	err = decodeEnvelope(resp.Body, &keywords)
	if err != nil {
		return nil, fmt.Errorf("parsing related keywords: %w", err)
	}

	return keywords, nil
}

func keywordParams(query, country, language string) url.Values {
	return url.Values{
		"q":        []string{query},
		"country":  []string{country},
		"language": []string{language},
	}
}
