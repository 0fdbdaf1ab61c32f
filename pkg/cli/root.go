// Package cli provides the command-line interface for the DigiKey API client.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/partstack/digikey-mcp/pkg/config"
	"github.com/partstack/digikey-mcp/pkg/digikey"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose bool

	// Global config and API client
	cfg    *config.Config
	client *digikey.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "digikey",
	Short: "DigiKey Product Search API client",
	Long: `Command-line client for the DigiKey Product Search API v4.

Credentials come from the CLIENT_ID and CLIENT_SECRET environment
variables (or a .env file). Set USE_SANDBOX=true to talk to the
sandbox host instead of production.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip authentication for version and help commands
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger := zap.NewNop()
		if verbose {
			logger, err = zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
		}

		client = digikey.NewClientWithLogger(cfg, logger)

		if err := client.EnsureAuthenticated(context.Background()); err != nil {
			return fmt.Errorf("authenticate: %w", err)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(productCmd)
}

// printJSON pretty-prints a raw JSON payload to stdout.
func printJSON(raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("format response: %w", err)
	}
	fmt.Println(buf.String())
	return nil
}
