package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teemow/zoomctl/internal/config"
	"github.com/teemow/zoomctl/internal/zoom"
)

// rootCmd represents the base command for the zoomctl application
var rootCmd = &cobra.Command{
	Use:   "zoomctl",
	Short: "Zoom API CLI and webhook receiver",
	Long: `zoomctl is a command-line client for the Zoom REST API using
Server-to-Server OAuth, covering meetings, recordings, users, Team Chat,
phone call logs, and AI companion meeting summaries.

It can also run as a webhook receiver (zoomctl serve) that answers Zoom's
URL validation challenge and relays selected events to a notifier.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "zoomctl version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		var apiErr *zoom.APIError
		if errors.As(err, &apiErr) {
			if hint := apiErr.Hint(); hint != "" {
				fmt.Fprintf(os.Stderr, "HINT: %s\n", hint)
			}
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newMeetingsCmd())
	rootCmd.AddCommand(newRecordingsCmd())
	rootCmd.AddCommand(newUsersCmd())
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newPhoneCmd())
	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("zoomctl version %s\n", version)
		},
	}
}

// newZoomClient builds the API client with the file-backed token cache.
func newZoomClient() (*zoom.Client, *config.Config, error) {
	cfg := config.Load()
	if err := cfg.ValidateCredentials(); err != nil {
		return nil, nil, err
	}
	store, err := zoom.DefaultFileStore()
	if err != nil {
		return nil, nil, err
	}
	return zoom.NewClient(zoom.NewTokenSource(cfg, store)), cfg, nil
}

// printJSON pretty-prints a raw API response to stdout.
func printJSON(data json.RawMessage) error {
	if data == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Println(buf.String())
	return nil
}
