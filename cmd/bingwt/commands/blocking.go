package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/seotools-io/bingwt/pkg/bingwt"
	"github.com/spf13/cobra"
)

// NewBlockedCommand creates the blocked command group.
func NewBlockedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocked",
		Short: "Manage blocked URLs",
		Long:  "List, add, and remove URLs and directories excluded from the index",
	}

	cmd.AddCommand(newBlockedListCommand())
	cmd.AddCommand(newBlockedAddCommand())
	cmd.AddCommand(newBlockedRemoveCommand())

	cmd.Run = func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	}

	return cmd
}

func newBlockedListCommand() *cobra.Command {
	var siteURL string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blocked URLs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if siteURL == "" {
				return ErrSiteURLRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			blocked, err := client.Blocking().GetBlockedURLs(context.Background(), siteURL)
			if err != nil {
				return fmt.Errorf("failed to list blocked urls: %w", err)
			}

			if done, err := renderStructured(blocked); done {
				return err
			}

			if len(blocked) == 0 {
				fmt.Fprintln(os.Stdout, "No blocked URLs found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("URL", "Type", "Since")

			for _, entry := range blocked {
				entryType := "page"
				if entry.EntityType == bingwt.BlockedURLEntityDirectory {
					entryType = "directory"
				}

				_ = table.Append(entry.URL, entryType, formatDate(entry.Date))
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

func blockedEntityType(directory bool) bingwt.BlockedURLEntityType {
	if directory {
		return bingwt.BlockedURLEntityDirectory
	}

	return bingwt.BlockedURLEntityPage
}

func newBlockedAddCommand() *cobra.Command {
	var (
		siteURL   string
		directory bool
	)

	cmd := &cobra.Command{
		Use:   "add URL",
		Short: "Block a URL or directory",
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

			entry := bingwt.BlockedURL{
				URL:        args[0],
				EntityType: blockedEntityType(directory),
			}

			if err := client.Blocking().AddBlockedURL(context.Background(), siteURL, entry); err != nil {
				return fmt.Errorf("failed to block url: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Blocked '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVarP(&siteURL, "site", "s", "", "site URL (required)")
	cmd.Flags().BoolVar(&directory, "directory", false, "block a whole directory instead of a page")
	_ = cmd.MarkFlagRequired("site")

	return cmd
}

func newBlockedRemoveCommand() *cobra.Command {
	var (
		siteURL   string
		directory bool
	)

	cmd := &cobra.Command{
		Use:   "remove URL",
		Short: "Unblock a URL or directory",
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

			entry := bingwt.BlockedURL{
				URL:        args[0],
				EntityType: blockedEntityType(directory),
			}

			if err := client.Blocking().RemoveBlockedURL(context.Background(), siteURL, entry); err != nil {
				return fmt.Errorf("failed to unblock url: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Unblocked '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVarP(&siteURL, "site", "s", "", "site URL (required)")
	cmd.Flags().BoolVar(&directory, "directory", false, "unblock a whole directory instead of a page")
	_ = cmd.MarkFlagRequired("site")

	return cmd
}
