package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/seotools-io/bingwt/internal/constants"
	"github.com/spf13/cobra"
)

// NewSubmitCommand creates the submit command group.
func NewSubmitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit URLs and feeds for indexing",
		Long:  "Submit individual URLs, URL batches, and sitemaps or feeds to the index",
	}

	cmd.AddCommand(newSubmitURLCommand())
	cmd.AddCommand(newSubmitBatchCommand())
	cmd.AddCommand(newSubmitFeedCommand())
	cmd.AddCommand(newFeedsListCommand())

	cmd.Run = func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	}

	return cmd
}

func newSubmitURLCommand() *cobra.Command {
	var siteURL string

	cmd := &cobra.Command{
		Use:   "url URL",
		Short: "Submit a single URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if siteURL == "" {
				return ErrSiteURLRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			if err := client.Submission().SubmitURL(context.Background(), siteURL, args[0]); err != nil {
				return fmt.Errorf("failed to submit url: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Submitted '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVarP(&siteURL, "site", "s", "", "site URL the page belongs to (required)")
	_ = cmd.MarkFlagRequired("site")

	return cmd
}

func newSubmitBatchCommand() *cobra.Command {
	var (
		siteURL  string
		fromFile string
	)

	cmd := &cobra.Command{
		Use:   "batch [URL...]",
		Short: "Submit a batch of URLs",
		Long: `Submit many URLs in one call. URLs are taken from the arguments or,
with --from-file, one per line from a file. Batches larger than the
per-request limit are split automatically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if siteURL == "" {
				return ErrSiteURLRequired
			}

			urls := args

			if fromFile != "" {
				fileURLs, err := readURLFile(fromFile)
				if err != nil {
					return err
				}

				urls = append(urls, fileURLs...)
			}

			if len(urls) == 0 {
				return ErrNoURLsToSubmit
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			ctx := context.Background()

			for start := 0; start < len(urls); start += constants.MaxURLBatchSize {
				end := start + constants.MaxURLBatchSize
				if end > len(urls) {
					end = len(urls)
				}

				if err := client.Submission().SubmitURLBatch(ctx, siteURL, urls[start:end]); err != nil {
					return fmt.Errorf("failed to submit batch starting at %d: %w", start, err)
				}
			}

			fmt.Fprintf(os.Stdout, "Submitted %d URL(s)\n", len(urls))

			return nil
		},
	}

	cmd.Flags().StringVarP(&siteURL, "site", "s", "", "site URL the pages belong to (required)")
	cmd.Flags().StringVar(&fromFile, "from-file", "", "file with one URL per line")
	_ = cmd.MarkFlagRequired("site")

	return cmd
}

func readURLFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening url file: %w", err)
	}

	defer func() { _ = file.Close() }()

	var urls []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		urls = append(urls, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading url file: %w", err)
	}

	return urls, nil
}

func newSubmitFeedCommand() *cobra.Command {
	var siteURL string

	cmd := &cobra.Command{
		Use:   "feed FEED_URL",
		Short: "Submit a sitemap or feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if siteURL == "" {
				return ErrSiteURLRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			if err := client.Submission().SubmitFeed(context.Background(), siteURL, args[0]); err != nil {
				return fmt.Errorf("failed to submit feed: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Submitted feed '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVarP(&siteURL, "site", "s", "", "site URL the feed belongs to (required)")
	_ = cmd.MarkFlagRequired("site")

	return cmd
}

func newFeedsListCommand() *cobra.Command {
	var siteURL string

	cmd := &cobra.Command{
		Use:   "feeds",
		Short: "List submitted feeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			if siteURL == "" {
				return ErrSiteURLRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			feeds, err := client.Submission().GetFeeds(context.Background(), siteURL)
			if err != nil {
				return fmt.Errorf("failed to list feeds: %w", err)
			}

			if done, err := renderStructured(feeds); done {
				return err
			}

			if len(feeds) == 0 {
				fmt.Fprintln(os.Stdout, "No feeds found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("URL", "Status", "URLs", "Last Crawled")

			for _, feed := range feeds {
				_ = table.Append(feed.URL, feed.Status, fmt.Sprintf("%d", feed.URLCount), formatDate(feed.LastCrawled))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&siteURL, "site", "s", "", "site URL (required)")
	_ = cmd.MarkFlagRequired("site")

	return cmd
}
