package bingwt

import (
	"context"
	"time"
)

// Client is the typed entry point to the Bing Webmaster Tools API. Each
// accessor returns a capability module backed by the shared transport. The
// client multiplexes concurrent calls over one connection pool; Close
// releases the pool and must be called exactly once when the client goes
// out of scope.
type Client interface {
	Sites() SitesService
	Submission() SubmissionService
	Crawling() CrawlingService
	Keywords() KeywordsService
	Links() LinksService
	Traffic() TrafficService
	Blocking() BlockingService
	URLs() URLManagementService
	Regional() RegionalService

	// RateLimitEvents reports how many 429 responses the transport has
	// observed over the client's lifetime. Informational only.
	RateLimitEvents() uint64

	// Close releases the underlying connection pool. The client must not
	// be used afterwards; calls fail with a validation error wrapping
	// ErrClientClosed. Safe to call more than once.
	Close() error
}

// SitesService manages the sites registered in the account.
type SitesService interface {
	GetSites(ctx context.Context) ([]Site, error)
	AddSite(ctx context.Context, siteURL string) error
	RemoveSite(ctx context.Context, siteURL string) error
	VerifySite(ctx context.Context, siteURL string) (bool, error)
}

// SubmissionService submits URLs and feeds and reports remaining quota.
type SubmissionService interface {
	SubmitURL(ctx context.Context, siteURL, url string) error
	SubmitURLBatch(ctx context.Context, siteURL string, urls []string) error
	GetURLSubmissionQuota(ctx context.Context, siteURL string) (*QuotaInfo, error)
	GetContentSubmissionQuota(ctx context.Context, siteURL string) (*QuotaInfo, error)
	SubmitFeed(ctx context.Context, siteURL, feedURL string) error
	GetFeeds(ctx context.Context, siteURL string) ([]Feed, error)
}

// CrawlingService reports crawl activity and manages crawl settings.
type CrawlingService interface {
	GetCrawlStats(ctx context.Context, siteURL string) ([]CrawlStats, error)
	GetCrawlIssues(ctx context.Context, siteURL string) ([]CrawlIssue, error)
	GetCrawlSettings(ctx context.Context, siteURL string) (*CrawlSettings, error)
	SaveCrawlSettings(ctx context.Context, siteURL string, settings CrawlSettings) error
}

// KeywordsService reports search keyword data.
type KeywordsService interface {
	GetKeyword(ctx context.Context, query, country, language string, startDate, endDate time.Time) (*Keyword, error)
	GetKeywordStats(ctx context.Context, query, country, language string) ([]KeywordStats, error)
	GetRelatedKeywords(ctx context.Context, query, country, language string, startDate, endDate time.Time) ([]Keyword, error)
}

// LinksService reports inbound link data. The per-page methods expose the
// vendor's 0-based pages directly; the All/Iterate variants enumerate
// through the pagination engine.
type LinksService interface {
	GetLinkCounts(ctx context.Context, siteURL string, page int) (*LinkCounts, error)
	GetURLLinks(ctx context.Context, siteURL, link string, page int) (*LinkDetails, error)
	AllLinkCounts(ctx context.Context, siteURL string, maxPages int) ([]LinkCount, error)
	AllURLLinks(ctx context.Context, siteURL, link string, maxPages int) ([]LinkDetail, error)
	IterateURLLinks(ctx context.Context, siteURL, link string, maxPages int) (*PageIterator[LinkDetail], error)
}

// TrafficService reports query and page traffic statistics.
type TrafficService interface {
	GetQueryStats(ctx context.Context, siteURL string) ([]QueryStats, error)
	GetQueryPageStats(ctx context.Context, siteURL, query string) ([]QueryStats, error)
	GetQueryPageDetailStats(ctx context.Context, siteURL, page string) ([]QueryStats, error)
	GetPageStats(ctx context.Context, siteURL string) ([]QueryStats, error)
	GetRankAndTrafficStats(ctx context.Context, siteURL string) ([]RankAndTrafficStats, error)
}

// BlockingService manages URLs excluded from the index.
type BlockingService interface {
	GetBlockedURLs(ctx context.Context, siteURL string) ([]BlockedURL, error)
	AddBlockedURL(ctx context.Context, siteURL string, blocked BlockedURL) error
	RemoveBlockedURL(ctx context.Context, siteURL string, blocked BlockedURL) error
}

// URLManagementService manages query-parameter normalization and the URL
// fetch tool.
type URLManagementService interface {
	GetQueryParameters(ctx context.Context, siteURL string) ([]QueryParameter, error)
	AddQueryParameter(ctx context.Context, siteURL, parameter string) error
	RemoveQueryParameter(ctx context.Context, siteURL, parameter string) error
	EnableDisableQueryParameter(ctx context.Context, siteURL, parameter string, enabled bool) error
	GetFetchedURLs(ctx context.Context, siteURL string) ([]FetchedURL, error)
	GetFetchedURLDetails(ctx context.Context, siteURL, url string) (*FetchedURLDetails, error)
	FetchURL(ctx context.Context, siteURL, url string) error
}

// RegionalService manages country/region targeting settings.
type RegionalService interface {
	GetCountryRegionSettings(ctx context.Context, siteURL string) ([]CountryRegionSettings, error)
	AddCountryRegionSettings(ctx context.Context, siteURL string, settings CountryRegionSettings) error
	RemoveCountryRegionSettings(ctx context.Context, siteURL string, settings CountryRegionSettings) error
}
