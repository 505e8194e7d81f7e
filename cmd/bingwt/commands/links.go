package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewLinksCommand creates the links command group.
func NewLinksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Inspect inbound links",
		Long:  "Show inbound link counts and the referring pages behind them",
	}

	cmd.AddCommand(newLinkCountsCommand())
	cmd.AddCommand(newInboundLinksCommand())

	cmd.Run = func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	}

	return cmd
}

func newLinkCountsCommand() *cobra.Command {
	var (
		siteURL  string
		maxPages int
	)

	cmd := &cobra.Command{
		Use:   "counts",
		Short: "Show inbound link counts per URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if siteURL == "" {
				return ErrSiteURLRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			counts, err := client.Links().AllLinkCounts(context.Background(), siteURL, maxPages)
			if err != nil {
				return fmt.Errorf("failed to get link counts: %w", err)
			}

			if done, err := renderStructured(counts); done {
				return err
			}

			if len(counts) == 0 {
				fmt.Fprintln(os.Stdout, "No inbound links found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("URL", "Inbound Links")

			for _, count := range counts {
				_ = table.Append(count.URL, fmt.Sprintf("%d", count.Count))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&siteURL, "site", "s", "", "site URL (required)")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "cap on pages fetched (0 uses the default)")
	_ = cmd.MarkFlagRequired("site")

	return cmd
}

func newInboundLinksCommand() *cobra.Command {
	var (
		siteURL  string
		maxPages int
	)

	cmd := &cobra.Command{
		Use:   "inbound LINK_URL",
		Short: "List pages linking to a URL",
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

			links, err := client.Links().AllURLLinks(context.Background(), siteURL, args[0], maxPages)
			if err != nil {
				return fmt.Errorf("failed to get inbound links: %w", err)
			}

			if done, err := renderStructured(links); done {
				return err
			}

			if len(links) == 0 {
				fmt.Fprintln(os.Stdout, "No inbound links found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Referring URL", "Anchor Text")

			for _, link := range links {
				anchor := link.AnchorText
				if anchor == "" {
					anchor = NotAvailable
				}

				_ = table.Append(link.URL, anchor)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&siteURL, "site", "s", "", "site URL (required)")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "cap on pages fetched (0 uses the default)")
	_ = cmd.MarkFlagRequired("site")

	return cmd
}
