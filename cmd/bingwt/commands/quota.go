package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewQuotaCommand creates the quota command.
func NewQuotaCommand() *cobra.Command {
	var siteURL string

	cmd := &cobra.Command{
		Use:   "quota",
		Short: "Show remaining submission quota",
		Long:  "Show the server-reported remaining URL and content submission quota for a site",
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

			urlQuota, err := client.Submission().GetURLSubmissionQuota(ctx, siteURL)
			if err != nil {
				return fmt.Errorf("failed to get url submission quota: %w", err)
			}

			contentQuota, err := client.Submission().GetContentSubmissionQuota(ctx, siteURL)
			if err != nil {
				return fmt.Errorf("failed to get content submission quota: %w", err)
			}

			view := struct {
				URLDaily       int `json:"url_daily"       yaml:"url_daily"`
				URLMonthly     int `json:"url_monthly"     yaml:"url_monthly"`
				ContentDaily   int `json:"content_daily"   yaml:"content_daily"`
				ContentMonthly int `json:"content_monthly" yaml:"content_monthly"`
			}{
				URLDaily:       urlQuota.DailyRemaining,
				URLMonthly:     urlQuota.MonthlyRemaining,
				ContentDaily:   contentQuota.DailyRemaining,
				ContentMonthly: contentQuota.MonthlyRemaining,
			}

			if done, err := renderStructured(view); done {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Quota", "Daily Remaining", "Monthly Remaining")
			_ = table.Append("URL", fmt.Sprintf("%d", urlQuota.DailyRemaining), fmt.Sprintf("%d", urlQuota.MonthlyRemaining))
			_ = table.Append("Content", fmt.Sprintf("%d", contentQuota.DailyRemaining), fmt.Sprintf("%d", contentQuota.MonthlyRemaining))

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
