package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewParamsCommand creates the params command group.
func NewParamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Manage URL normalization query parameters",
		Long:  "List, add, remove, and toggle the query parameters ignored during URL normalization",
	}

	cmd.AddCommand(newParamsListCommand())
	cmd.AddCommand(newParamsAddCommand())
	cmd.AddCommand(newParamsRemoveCommand())
	cmd.AddCommand(newParamsToggleCommand("enable", true))
	cmd.AddCommand(newParamsToggleCommand("disable", false))

	cmd.Run = func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	}

	return cmd
}

func newParamsListCommand() *cobra.Command {
	var siteURL string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered query parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			if siteURL == "" {
				return ErrSiteURLRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			params, err := client.URLs().GetQueryParameters(context.Background(), siteURL)
			if err != nil {
				return fmt.Errorf("failed to list query parameters: %w", err)
			}

			if done, err := renderStructured(params); done {
				return err
			}

			if len(params) == 0 {
				fmt.Fprintln(os.Stdout, "No query parameters found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Parameter", "Enabled", "Since")

			for _, parameter := range params {
				_ = table.Append(parameter.Parameter, formatBool(parameter.IsEnabled), formatDate(parameter.Date))
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

func newParamsAddCommand() *cobra.Command {
	var siteURL string

	cmd := &cobra.Command{
		Use:   "add PARAMETER",
		Short: "Register a query parameter",
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

			if err := client.URLs().AddQueryParameter(context.Background(), siteURL, args[0]); err != nil {
				return fmt.Errorf("failed to add query parameter: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Added query parameter '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVarP(&siteURL, "site", "s", "", "site URL (required)")
	_ = cmd.MarkFlagRequired("site")

	return cmd
}

func newParamsRemoveCommand() *cobra.Command {
	var siteURL string

	cmd := &cobra.Command{
		Use:   "remove PARAMETER",
		Short: "Remove a query parameter",
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

			if err := client.URLs().RemoveQueryParameter(context.Background(), siteURL, args[0]); err != nil {
				return fmt.Errorf("failed to remove query parameter: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Removed query parameter '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVarP(&siteURL, "site", "s", "", "site URL (required)")
	_ = cmd.MarkFlagRequired("site")

	return cmd
}

func newParamsToggleCommand(use string, enabled bool) *cobra.Command {
	var siteURL string

	cmd := &cobra.Command{
		Use:   use + " PARAMETER",
		Short: fmt.Sprintf("%s a query parameter", use),
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

			if err := client.URLs().EnableDisableQueryParameter(context.Background(), siteURL, args[0], enabled); err != nil {
				return fmt.Errorf("failed to %s query parameter: %w", use, err)
			}

			fmt.Fprintf(os.Stdout, "%sd query parameter '%s'\n", use, args[0])

			return nil
		},
	}

	cmd.Flags().StringVarP(&siteURL, "site", "s", "", "site URL (required)")
	_ = cmd.MarkFlagRequired("site")

	return cmd
}
