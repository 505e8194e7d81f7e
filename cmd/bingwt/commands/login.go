package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/seotools-io/bingwt/pkg/bingwt"
	"github.com/seotools-io/bingwt/pkg/bwtclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store and verify an API key",
		Long:  "Verify an API key against the Bing Webmaster Tools API and persist it for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				apiKey = viper.GetString("api-key")
			}

			if apiKey == "" {
				apiKey = os.Getenv(bingwt.EnvAPIKey)
			}

			if apiKey == "" {
				fmt.Fprint(os.Stdout, "API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))

				fmt.Fprintln(os.Stdout)

				if err != nil {
					return fmt.Errorf("reading API key: %w", err)
				}

				apiKey = strings.TrimSpace(string(byteKey))
			}

			if apiKey == "" {
				return ErrAPIKeyRequired
			}

			client, err := bwtclient.New(&bingwt.Config{
				APIKey:  apiKey,
				BaseURL: viper.GetString("api"),
			})
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			// A successful site listing proves the key works.
			sites, err := client.Sites().GetSites(context.Background())
			if err != nil {
				if bingwt.IsAuthentication(err) {
					return fmt.Errorf("API key rejected: %w", err)
				}

				return fmt.Errorf("verifying API key: %w", err)
			}

			config := loadConfig()
			config.APIKey = apiKey

			if baseURL := viper.GetString("api"); baseURL != "" {
				config.BaseURL = baseURL
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Logged in. Account has %d site(s).\n", len(sites))

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "key", "", "API key (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.APIKey == "" {
				fmt.Fprintln(os.Stdout, "Not logged in")

				return nil
			}

			config.APIKey = ""

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, "Logged out")

			return nil
		},
	}
}
