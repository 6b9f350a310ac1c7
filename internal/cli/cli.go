package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/hltv-cal/internal/exporter"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitNoMatch = 2
)

// errNoMatch means the page held nothing the extractor could use
var errNoMatch = errors.New("no match found on page")

var (
	flagConfig      string
	flagDataDir     string
	flagDownloadDir string
	flagFormat      string
	flagPageURL     string
	flagBrowser     bool
	flagDryRun      bool
	flagVerbose     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hltv-cal",
		Short: "Add HLTV matches to your calendar",
		Long: `A CLI tool that reads HLTV match and listing pages and exports matches to
Google Calendar, Outlook or a downloadable .ics file.

Pages can be given as a URL, a saved HTML file, or "-" to read HTML from stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Config file (default: ./config.yaml or ~/.config/hltv-cal/config.yaml)")
	flags.StringVar(&flagDataDir, "data-dir", "", "Directory for stored settings (overrides config)")
	flags.StringVar(&flagDownloadDir, "download-dir", "", "Directory that receives .ics files (overrides config)")
	flags.StringVar(&flagFormat, "format", "text", "Output format: text, json or yaml")
	flags.StringVar(&flagPageURL, "page-url", "", "Page URL to assume when reading a file or stdin")
	flags.BoolVar(&flagBrowser, "browser", false, "Render pages in headless Chrome")
	flags.BoolVar(&flagDryRun, "dry-run", false, "Print calendar links instead of opening a browser")
	flags.BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newMatchCmd(), newListingCmd(), newSettingsCmd())

	return cmd
}

// parseFormat validates the --format flag
func parseFormat() (OutputFormat, error) {
	format := OutputFormat(flagFormat)
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return format, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'yaml')", flagFormat)
}

// ExitCode maps a command error to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errNoMatch):
		return ExitNoMatch
	case errors.Is(err, exporter.ErrNothingSelected):
		return ExitNoMatch
	}
	return ExitError
}

// Execute runs the CLI
func Execute() {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(ExitCode(err))
}
