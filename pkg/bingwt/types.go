package bingwt

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Date wraps time.Time to handle the vendor's WCF JSON timestamp encoding,
// "/Date(1700000000000)/" with an optional zone suffix like "-0700".
type Date struct {
	time.Time
}

var wcfDatePattern = regexp.MustCompile(`^/Date\((-?\d+)([+-]\d{4})?\)/$`)

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		d.Time = time.Time{}

		return nil
	}

	unquoted, err := strconv.Unquote(raw)
	if err != nil {
		return fmt.Errorf("invalid date %s: %w", raw, err)
	}

	match := wcfDatePattern.FindStringSubmatch(unquoted)
	if match == nil {
		return fmt.Errorf("invalid date format %q", unquoted)
	}

	millis, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid date milliseconds %q: %w", match[1], err)
	}

	d.Time = time.UnixMilli(millis).UTC()

	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(strconv.Quote(FormatAPIDate(d.Time))), nil
}

// FormatAPIDate renders a time in the vendor's wire format.
func FormatAPIDate(t time.Time) string {
	return fmt.Sprintf("/Date(%d)/", t.UnixMilli())
}

// Site is one site registered in the webmaster account.
type Site struct {
	URL                 string `json:"Url"`
	IsVerified          bool   `json:"IsVerified"`
	AuthenticationCode  string `json:"AuthenticationCode,omitempty"`
	DNSVerificationCode string `json:"DnsVerificationCode,omitempty"`
}

// QuotaInfo is a server-reported snapshot of remaining submission
// allowance. It is never inferred or accumulated locally.
type QuotaInfo struct {
	DailyRemaining   int `json:"DailyQuota"`
	MonthlyRemaining int `json:"MonthlyQuota"`
}

// Feed is a submitted sitemap or feed.
type Feed struct {
	URL         string `json:"Url"`
	Status      string `json:"Status,omitempty"`
	LastCrawled Date   `json:"LastCrawled"`
	URLCount    int    `json:"UrlCount"`
	Compressed  bool   `json:"Compressed,omitempty"`
}

// CrawlStats is one day of crawl activity for a site.
type CrawlStats struct {
	Date               Date  `json:"Date"`
	CrawledPages       int64 `json:"CrawledPages"`
	InIndex            int64 `json:"InIndex"`
	InLinks            int64 `json:"InLinks"`
	CrawlErrors        int64 `json:"CrawlErrors"`
	Code2xx            int64 `json:"Code2xx"`
	Code301            int64 `json:"Code301"`
	Code302            int64 `json:"Code302"`
	Code4xx            int64 `json:"Code4xx"`
	Code5xx            int64 `json:"Code5xx"`
	BlockedByRobotsTxt int64 `json:"BlockedByRobotsTxt"`
	ConnectionTimeout  int64 `json:"ConnectionTimeout"`
	DNSFailures        int64 `json:"DnsFailures"`
	AllOtherCodes      int64 `json:"AllOtherCodes"`
}

// CrawlIssue is one URL with reported crawl problems. Issues is the
// vendor's bit flag set.
type CrawlIssue struct {
	URL      string `json:"Url"`
	Issues   int    `json:"Issues"`
	HTTPCode int    `json:"HttpCode,omitempty"`
}

// CrawlSettings controls how the vendor crawls a site. CrawlRate holds one
// relative rate per hour of the day.
type CrawlSettings struct {
	CrawlBoostAvailable bool  `json:"CrawlBoostAvailable"`
	CrawlBoostEnabled   bool  `json:"CrawlBoostEnabled"`
	CrawlRate           []int `json:"CrawlRate"`
}

// Keyword is aggregate impression data for one query.
type Keyword struct {
	Query            string `json:"Query"`
	Impressions      int64  `json:"Impressions"`
	BroadImpressions int64  `json:"BroadImpressions"`
}

// KeywordStats is one day of impression data for a query.
type KeywordStats struct {
	Date             Date  `json:"Date"`
	Impressions      int64 `json:"Impressions"`
	BroadImpressions int64 `json:"BroadImpressions"`
}

// LinkCount is the inbound link count for one URL of a site.
type LinkCount struct {
	URL   string `json:"Url"`
	Count int64  `json:"Count"`
}

// LinkCounts is one page of inbound link counts plus the server-reported
// total page count.
type LinkCounts struct {
	Links      []LinkCount `json:"Links"`
	TotalPages int         `json:"TotalPages"`
}

// LinkDetail is one inbound link pointing at a URL.
type LinkDetail struct {
	URL        string `json:"Url"`
	AnchorText string `json:"AnchorText,omitempty"`
}

// LinkDetails is one page of inbound links plus the server-reported total
// page count.
type LinkDetails struct {
	Details    []LinkDetail `json:"Details"`
	TotalPages int          `json:"TotalPages"`
}

// QueryStats is click and impression data for one query or page.
type QueryStats struct {
	Query                 string  `json:"Query"`
	Date                  Date    `json:"Date"`
	Clicks                int64   `json:"Clicks"`
	Impressions           int64   `json:"Impressions"`
	AvgClickPosition      float64 `json:"AvgClickPosition"`
	AvgImpressionPosition float64 `json:"AvgImpressionPosition"`
}

// RankAndTrafficStats is one day of site-wide click and impression totals.
type RankAndTrafficStats struct {
	Date        Date  `json:"Date"`
	Clicks      int64 `json:"Clicks"`
	Impressions int64 `json:"Impressions"`
}

// BlockedURLEntityType distinguishes page-level from directory-level
// blocking entries.
type BlockedURLEntityType int

const (
	BlockedURLEntityPage      BlockedURLEntityType = 0
	BlockedURLEntityDirectory BlockedURLEntityType = 1
)

// BlockedURL is one URL or directory excluded from the index.
type BlockedURL struct {
	URL        string               `json:"Url"`
	EntityType BlockedURLEntityType `json:"EntityType"`
	Date       Date                 `json:"Date"`
}

// QueryParameter is one URL-normalization query parameter registered for a
// site.
type QueryParameter struct {
	Parameter string `json:"Parameter"`
	IsEnabled bool   `json:"IsEnabled"`
	Date      Date   `json:"Date"`
}

// FetchedURL is one URL retrieved through the fetch tool.
type FetchedURL struct {
	URL       string `json:"Url"`
	FetchDate Date   `json:"Date"`
}

// FetchedURLDetails is the crawl result for one fetched URL.
type FetchedURLDetails struct {
	URL        string `json:"Url"`
	FetchDate  Date   `json:"Date"`
	HTTPStatus int    `json:"HttpStatus"`
}

// CountryRegionSettings is one per-country/region targeting entry.
type CountryRegionSettings struct {
	URL          string `json:"Url"`
	TwoLetterISO string `json:"TwoLetterIsoCountryCode"`
	Type         int    `json:"Type"`
	Date         Date   `json:"Date"`
}
