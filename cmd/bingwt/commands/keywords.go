package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const defaultKeywordWindowDays = 30

// NewKeywordsCommand creates the keywords command group.
func NewKeywordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keywords",
		Aliases: []string{"keyword"},
		Short:   "Inspect search keyword data",
		Long:    "Show impression data and related queries for search keywords",
	}

	cmd.AddCommand(newKeywordGetCommand())
	cmd.AddCommand(newKeywordStatsCommand())
	cmd.AddCommand(newKeywordRelatedCommand())

	cmd.Run = func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	}

	return cmd
}

func keywordWindow(days int) (time.Time, time.Time) {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -days)

	return start, end
}

func newKeywordGetCommand() *cobra.Command {
	var (
		country  string
		language string
		days     int
	)

	cmd := &cobra.Command{
		Use:   "get QUERY",
		Short: "Show aggregate impressions for a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			start, end := keywordWindow(days)

			keyword, err := client.Keywords().GetKeyword(context.Background(), args[0], country, language, start, end)
			if err != nil {
				return fmt.Errorf("failed to get keyword: %w", err)
			}

			if keyword == nil {
				fmt.Fprintln(os.Stdout, "No data for this query")

				return nil
			}

			if done, err := renderStructured(keyword); done {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Query", "Impressions", "Broad Impressions")
			_ = table.Append(keyword.Query, fmt.Sprintf("%d", keyword.Impressions), fmt.Sprintf("%d", keyword.BroadImpressions))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "two-letter country filter")
	cmd.Flags().StringVar(&language, "language", "", "language filter, e.g. en-US")
	cmd.Flags().IntVar(&days, "days", defaultKeywordWindowDays, "look-back window in days")

	return cmd
}

func newKeywordStatsCommand() *cobra.Command {
	var (
		country  string
		language string
	)

	cmd := &cobra.Command{
		Use:   "stats QUERY",
		Short: "Show daily impressions for a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			stats, err := client.Keywords().GetKeywordStats(context.Background(), args[0], country, language)
			if err != nil {
				return fmt.Errorf("failed to get keyword stats: %w", err)
			}

			if done, err := renderStructured(stats); done {
				return err
			}

			if len(stats) == 0 {
				fmt.Fprintln(os.Stdout, "No data for this query")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Date", "Impressions", "Broad Impressions")

			for _, row := range stats {
				_ = table.Append(formatDate(row.Date), fmt.Sprintf("%d", row.Impressions), fmt.Sprintf("%d", row.BroadImpressions))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "two-letter country filter")
	cmd.Flags().StringVar(&language, "language", "", "language filter, e.g. en-US")

	return cmd
}

func newKeywordRelatedCommand() *cobra.Command {
	var (
		country  string
		language string
		days     int
	)

	cmd := &cobra.Command{
		Use:   "related QUERY",
		Short: "Show related queries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			start, end := keywordWindow(days)

			keywords, err := client.Keywords().GetRelatedKeywords(context.Background(), args[0], country, language, start, end)
			if err != nil {
				return fmt.Errorf("failed to get related keywords: %w", err)
			}

			if done, err := renderStructured(keywords); done {
				return err
			}

			if len(keywords) == 0 {
				fmt.Fprintln(os.Stdout, "No related queries found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Query", "Impressions", "Broad Impressions")

			for _, keyword := range keywords {
				_ = table.Append(keyword.Query, fmt.Sprintf("%d", keyword.Impressions), fmt.Sprintf("%d", keyword.BroadImpressions))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "two-letter country filter")
	cmd.Flags().StringVar(&language, "language", "", "language filter, e.g. en-US")
	cmd.Flags().IntVar(&days, "days", defaultKeywordWindowDays, "look-back window in days")

	return cmd
}
