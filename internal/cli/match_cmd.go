package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/hltv-cal/internal/exporter"
	"github.com/pfrederiksen/hltv-cal/internal/extractor"
	"github.com/pfrederiksen/hltv-cal/internal/match"
)

var (
	flagProvider string
	flagShowOnly bool
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <url|file|->",
		Short: "Export the match shown on a match page",
		Long: `Reads a single HLTV match page and adds the match to a calendar.

Without --provider the stored default provider is used. If no default has
been chosen yet, the command lists the providers and exits.`,
		Args: cobra.ExactArgs(1),
		RunE: runMatch,
	}

	cmd.Flags().StringVarP(&flagProvider, "provider", "p", "", "Calendar provider: google, outlook or ics")
	cmd.Flags().BoolVar(&flagShowOnly, "show", false, "Print the extracted match without exporting")

	return cmd
}

func runMatch(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	doc, pageURL, err := a.loader.Open(ctx, args[0])
	if err != nil {
		return fmt.Errorf("loading page: %w", err)
	}

	if !extractor.IsMatchPage(doc) {
		if len(extractor.Listing(doc, a.cfg.BaseURL)) > 0 {
			return fmt.Errorf("%w: %s is a listing page, use 'hltv-cal listing'", errNoMatch, pageURL)
		}
		return errNoMatch
	}

	m, ok := extractor.FromMatchPage(doc, pageURL)
	if !ok {
		return errNoMatch
	}

	result := &OutputResult{
		CheckedAt:  time.Now().UTC(),
		Matches:    []*match.Match{m},
		MatchCount: 1,
	}

	if !flagShowOnly {
		res, err := exportOne(ctx, a, m)
		if err != nil {
			return err
		}
		result.Export = res
	}

	if err := WriteOutput(a.out, result, a.format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func exportOne(ctx context.Context, a *app, m *match.Match) (*exporter.Result, error) {
	var explicit match.Provider
	if flagProvider != "" {
		p, err := match.ParseProvider(flagProvider)
		if err != nil {
			return nil, err
		}
		explicit = p
	}

	provider, err := a.exporter.Resolve(ctx, explicit)
	if errors.Is(err, exporter.ErrChooseProvider) {
		return nil, fmt.Errorf("%w: pass --provider (%s) or run 'hltv-cal settings set defaultProvider <provider>'",
			err, providerChoices())
	}
	if err != nil {
		return nil, err
	}

	return a.exporter.ExportMatch(ctx, m, provider)
}

func providerChoices() string {
	choices := make([]string, 0, len(match.Providers()))
	for _, p := range match.Providers() {
		choices = append(choices, fmt.Sprintf("%s = %s", p, p.Label()))
	}
	return strings.Join(choices, ", ")
}
