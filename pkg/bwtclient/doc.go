// Package bwtclient provides the primary entry point for constructing a
// Bing Webmaster Tools client that implements the bingwt.Client interface.
//
// It layers configuration and HTTP transport on top of the service
// interfaces and types defined in the bingwt package. Most applications
// should import bwtclient to build a client, then use the returned
// bingwt.Client to access capability services, for example Sites(),
// Submission(), Links().
//
// Quick start
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
//
//	  // From the environment (BING_WEBMASTER_API_KEY):
//	  cli, err := bwtclient.NewFromEnv()
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  // Or explicitly:
//	  cli, err = bwtclient.New(&bingwt.Config{
//	    APIKey:   "your-api-key",
//	    RetryMax: 5,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  sites, err := cli.Sites().GetSites(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = sites
//	}
package bwtclient
