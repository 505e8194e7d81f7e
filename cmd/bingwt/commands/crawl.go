package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/seotools-io/bingwt/pkg/bingwt"
	"github.com/spf13/cobra"
)

// NewCrawlCommand creates the crawl command group.
func NewCrawlCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Inspect crawl activity and settings",
		Long:  "Show crawl statistics, reported crawl issues, and crawl settings for a site",
	}

	cmd.AddCommand(newCrawlStatsCommand())
	cmd.AddCommand(newCrawlIssuesCommand())
	cmd.AddCommand(newCrawlSettingsCommand())

	cmd.Run = func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	}

	return cmd
}

func newCrawlStatsCommand() *cobra.Command {
	var siteURL string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show daily crawl statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if siteURL == "" {
				return ErrSiteURLRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			stats, err := client.Crawling().GetCrawlStats(context.Background(), siteURL)
			if err != nil {
				return fmt.Errorf("failed to get crawl stats: %w", err)
			}

			if done, err := renderStructured(stats); done {
				return err
			}

			if len(stats) == 0 {
				fmt.Fprintln(os.Stdout, "No crawl stats found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Date", "Crawled", "In Index", "Errors", "2xx", "4xx", "5xx")

			for _, row := range stats {
				_ = table.Append(
					formatDate(row.Date),
					fmt.Sprintf("%d", row.CrawledPages),
					fmt.Sprintf("%d", row.InIndex),
					fmt.Sprintf("%d", row.CrawlErrors),
					fmt.Sprintf("%d", row.Code2xx),
					fmt.Sprintf("%d", row.Code4xx),
					fmt.Sprintf("%d", row.Code5xx),
				)
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

func newCrawlIssuesCommand() *cobra.Command {
	var siteURL string

	cmd := &cobra.Command{
		Use:   "issues",
		Short: "List URLs with crawl issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			if siteURL == "" {
				return ErrSiteURLRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			issues, err := client.Crawling().GetCrawlIssues(context.Background(), siteURL)
			if err != nil {
				return fmt.Errorf("failed to get crawl issues: %w", err)
			}

			if done, err := renderStructured(issues); done {
				return err
			}

			if len(issues) == 0 {
				fmt.Fprintln(os.Stdout, "No crawl issues found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("URL", "Issue Flags", "HTTP Code")

			for _, issue := range issues {
				_ = table.Append(issue.URL, fmt.Sprintf("%d", issue.Issues), fmt.Sprintf("%d", issue.HTTPCode))
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

func newCrawlSettingsCommand() *cobra.Command {
	var (
		siteURL    string
		crawlBoost bool
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or update crawl settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if siteURL == "" {
				return ErrSiteURLRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			ctx := context.Background()

			if cmd.Flags().Changed("crawl-boost") {
				settings, err := client.Crawling().GetCrawlSettings(ctx, siteURL)
				if err != nil {
					return fmt.Errorf("failed to get crawl settings: %w", err)
				}

				settings.CrawlBoostEnabled = crawlBoost

				if err := client.Crawling().SaveCrawlSettings(ctx, siteURL, *settings); err != nil {
					return fmt.Errorf("failed to save crawl settings: %w", err)
				}

				fmt.Fprintln(os.Stdout, "Crawl settings updated")

				return nil
			}

			settings, err := client.Crawling().GetCrawlSettings(ctx, siteURL)
			if err != nil {
				return fmt.Errorf("failed to get crawl settings: %w", err)
			}

			return renderCrawlSettings(settings)
		},
	}

	cmd.Flags().StringVarP(&siteURL, "site", "s", "", "site URL (required)")
	cmd.Flags().BoolVar(&crawlBoost, "crawl-boost", false, "enable or disable crawl boost")
	_ = cmd.MarkFlagRequired("site")

	return cmd
}

func renderCrawlSettings(settings *bingwt.CrawlSettings) error {
	if done, err := renderStructured(settings); done {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("Crawl Boost Available", formatBool(settings.CrawlBoostAvailable))
	_ = table.Append("Crawl Boost Enabled", formatBool(settings.CrawlBoostEnabled))
	_ = table.Append("Hourly Rate Slots", fmt.Sprintf("%d", len(settings.CrawlRate)))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
