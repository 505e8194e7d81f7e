package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/seotools-io/bingwt/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileConfig is the persisted CLI configuration.
type FileConfig struct {
	APIKey  string `yaml:"api_key,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
}

func configFilePath() string {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".bingwt", "config.yml")
}

// loadConfig reads the persisted config. A missing or unreadable file yields
// an empty config.
func loadConfig() *FileConfig {
	config := &FileConfig{}

	path := configFilePath()
	if path == "" {
		return config
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, config)

	return config
}

// saveConfig writes the config with key-file permissions.
func saveConfig(config *FileConfig) error {
	path := configFilePath()
	if path == "" {
		return fmt.Errorf("cannot determine config file path: %w", os.ErrNotExist)
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and update the persisted bingwt CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	cmd.Run = func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	}

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			masked := NotAvailable
			if config.APIKey != "" {
				masked = "***"
			}

			baseURL := config.BaseURL
			if baseURL == "" {
				baseURL = constants.DefaultBaseURL
			}

			view := struct {
				APIKey  string `json:"api_key"  yaml:"api_key"`
				BaseURL string `json:"base_url" yaml:"base_url"`
			}{APIKey: masked, BaseURL: baseURL}

			if done, err := renderStructured(view); done {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("API Key", masked)
			_ = table.Append("Base URL", baseURL)
			_ = table.Append("Config File", configFilePath())

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	var (
		apiKey  string
		baseURL string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if cmd.Flags().Changed("api-key") {
				config.APIKey = apiKey
			}

			if cmd.Flags().Changed("base-url") {
				config.BaseURL = baseURL
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, "Configuration updated")

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key to persist")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "API endpoint URL to persist")

	return cmd
}
