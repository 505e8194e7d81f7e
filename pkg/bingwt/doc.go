// Package bingwt provides types, interfaces, and helpers for working with
// the Bing Webmaster Tools JSON API.
//
// # Overview
//
// The bingwt package defines the domain types (e.g., Site, CrawlStats,
// QueryStats, QuotaInfo), the closed error taxonomy, the pagination
// iterator, and the interfaces for the capability services (SitesService,
// SubmissionService, and so on). A concrete implementation is provided by
// the bwtclient package, which wires configuration and transport. Most
// consumers should import bwtclient to construct a client and then interact
// with the service interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/seotools-io/bingwt/pkg/bingwt"
//	  "github.com/seotools-io/bingwt/pkg/bwtclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := bwtclient.New(&bingwt.Config{APIKey: "your-api-key"})
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  sites, err := cli.Sites().GetSites(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = sites
//	}
//
// # Errors
//
// Every failure surfaces as an *Error with one ErrorKind. Match broadly
// with errors.As or narrowly with the helpers:
//
//	if bingwt.IsRateLimit(err) { ... }
//	if bingwt.IsNotFound(err) { ... }
//
// Transient failures (network errors, 5xx, 429) are retried with bounded
// exponential backoff before they surface; everything else fails fast.
//
// # Pagination
//
// Endpoints that return fixed-size pages are exposed both page-at-a-time
// and through PageIterator, which walks pages lazily in increasing order
// and stops at the first empty page, the server-reported total, or the
// MaxPages guard:
//
//	it, err := cli.Links().IterateURLLinks(ctx, site, link, 50)
//	if err != nil { log.Fatal(err) }
//	for it.HasNext() {
//	  detail, err := it.Next()
//	  ...
//	}
package bingwt
