package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSitesCommand creates the sites command group.
func NewSitesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sites",
		Aliases: []string{"site"},
		Short:   "Manage registered sites",
		Long:    "List, add, remove, and verify sites in the webmaster account",
	}

	cmd.AddCommand(newSitesListCommand())
	cmd.AddCommand(newSitesAddCommand())
	cmd.AddCommand(newSitesRemoveCommand())
	cmd.AddCommand(newSitesVerifyCommand())

	cmd.Run = func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	}

	return cmd
}

func newSitesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered sites",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			sites, err := client.Sites().GetSites(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list sites: %w", err)
			}

			if done, err := renderStructured(sites); done {
				return err
			}

			if len(sites) == 0 {
				fmt.Fprintln(os.Stdout, "No sites found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("URL", "Verified")

			for _, site := range sites {
				_ = table.Append(site.URL, formatBool(site.IsVerified))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newSitesAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add SITE_URL",
		Short: "Add a site to the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			if err := client.Sites().AddSite(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to add site: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Added site '%s'\n", args[0])

			return nil
		},
	}
}

func newSitesRemoveCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove SITE_URL",
		Short: "Remove a site from the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Fprintf(os.Stdout, "Really remove site '%s'? (y/N): ", args[0])

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Fprintln(os.Stdout, "Cancelled")

					return nil
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			if err := client.Sites().RemoveSite(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to remove site: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Removed site '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newSitesVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify SITE_URL",
		Short: "Attempt ownership verification for a site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			verified, err := client.Sites().VerifySite(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to verify site: %w", err)
			}

			if verified {
				fmt.Fprintf(os.Stdout, "Site '%s' is verified\n", args[0])
			} else {
				fmt.Fprintf(os.Stdout, "Site '%s' could not be verified\n", args[0])
			}

			return nil
		},
	}
}
