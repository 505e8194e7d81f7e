package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/seotools-io/bingwt/pkg/bingwt"
	"github.com/spf13/cobra"
)

// NewTrafficCommand creates the traffic command group.
func NewTrafficCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "traffic",
		Short: "Inspect search traffic statistics",
		Long:  "Show click and impression statistics by query, by page, and site-wide",
	}

	cmd.AddCommand(newTrafficQueriesCommand())
	cmd.AddCommand(newTrafficPagesCommand())
	cmd.AddCommand(newTrafficRankCommand())

	cmd.Run = func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	}

	return cmd
}

func renderQueryStats(stats []bingwt.QueryStats, firstColumn string) error {
	if done, err := renderStructured(stats); done {
		return err
	}

	if len(stats) == 0 {
		fmt.Fprintln(os.Stdout, "No traffic data found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header(firstColumn, "Clicks", "Impressions", "Avg Position")

	for _, row := range stats {
		_ = table.Append(
			row.Query,
			fmt.Sprintf("%d", row.Clicks),
			fmt.Sprintf("%d", row.Impressions),
			fmt.Sprintf("%.1f", row.AvgImpressionPosition),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newTrafficQueriesCommand() *cobra.Command {
	var (
		siteURL string
		query   string
	)

	cmd := &cobra.Command{
		Use:   "queries",
		Short: "Show traffic by search query",
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

			var stats []bingwt.QueryStats

			if query != "" {
				stats, err = client.Traffic().GetQueryPageStats(ctx, siteURL, query)
			} else {
				stats, err = client.Traffic().GetQueryStats(ctx, siteURL)
			}

			if err != nil {
				return fmt.Errorf("failed to get query stats: %w", err)
			}

			return renderQueryStats(stats, "Query")
		},
	}

	cmd.Flags().StringVarP(&siteURL, "site", "s", "", "site URL (required)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "drill into one query")
	_ = cmd.MarkFlagRequired("site")

	return cmd
}

func newTrafficPagesCommand() *cobra.Command {
	var (
		siteURL string
		page    string
	)

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Show traffic by page",
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

			var stats []bingwt.QueryStats

			if page != "" {
				stats, err = client.Traffic().GetQueryPageDetailStats(ctx, siteURL, page)
			} else {
				stats, err = client.Traffic().GetPageStats(ctx, siteURL)
			}

			if err != nil {
				return fmt.Errorf("failed to get page stats: %w", err)
			}

			return renderQueryStats(stats, "Page")
		},
	}

	cmd.Flags().StringVarP(&siteURL, "site", "s", "", "site URL (required)")
	cmd.Flags().StringVarP(&page, "page", "p", "", "drill into one page")
	_ = cmd.MarkFlagRequired("site")

	return cmd
}

func newTrafficRankCommand() *cobra.Command {
	var siteURL string

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Show site-wide daily clicks and impressions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if siteURL == "" {
				return ErrSiteURLRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			stats, err := client.Traffic().GetRankAndTrafficStats(context.Background(), siteURL)
			if err != nil {
				return fmt.Errorf("failed to get rank and traffic stats: %w", err)
			}

			if done, err := renderStructured(stats); done {
				return err
			}

			if len(stats) == 0 {
				fmt.Fprintln(os.Stdout, "No traffic data found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Date", "Clicks", "Impressions")

			for _, row := range stats {
				_ = table.Append(formatDate(row.Date), fmt.Sprintf("%d", row.Clicks), fmt.Sprintf("%d", row.Impressions))
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
