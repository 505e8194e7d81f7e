package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/seotools-io/bingwt/pkg/bingwt"
	"github.com/seotools-io/bingwt/pkg/bwtclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// JSON formatting.
	defaultJSONIndent = "  "
)

// Common static errors used throughout the commands package.
var (
	ErrAPIKeyRequired  = errors.New("API key is required (run 'bingwt login' or set BING_WEBMASTER_API_KEY)")
	ErrSiteURLRequired = errors.New("site URL is required")
	ErrNoURLsToSubmit  = errors.New("no URLs to submit")
)

// CreateClient builds a client from the effective configuration: flags,
// environment, then the persisted config file.
func CreateClient() (bingwt.Client, error) {
	apiKey := viper.GetString("api-key")
	if apiKey == "" {
		apiKey = os.Getenv(bingwt.EnvAPIKey)
	}

	if apiKey == "" {
		fileConfig := loadConfig()
		apiKey = fileConfig.APIKey
	}

	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	config := &bingwt.Config{
		APIKey:  apiKey,
		BaseURL: viper.GetString("api"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = stderrLogger{}
	}

	client, err := bwtclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// stderrLogger writes structured log lines to stderr for --verbose runs.
type stderrLogger struct{}

func (stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s %v\n", level, msg, fields)
}

func (l stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

// renderStructured writes data as JSON or YAML when the output flag asks for
// it. Returns false when the caller should render a table instead.
func renderStructured(data interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", defaultJSONIndent)

		if err := encoder.Encode(data); err != nil {
			return true, fmt.Errorf("encoding to JSON: %w", err)
		}

		return true, nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		if err := encoder.Encode(data); err != nil {
			return true, fmt.Errorf("encoding to YAML: %w", err)
		}

		return true, nil
	default:
		return false, nil
	}
}

// formatDate renders an API date for table output.
func formatDate(d bingwt.Date) string {
	if d.IsZero() {
		return NotAvailable
	}

	return d.Format(time.DateOnly)
}

// formatBool renders a boolean for table output.
func formatBool(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}
