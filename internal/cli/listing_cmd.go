package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/hltv-cal/internal/calendar"
	"github.com/pfrederiksen/hltv-cal/internal/extractor"
	"github.com/pfrederiksen/hltv-cal/internal/filter"
	"github.com/pfrederiksen/hltv-cal/internal/logger"
	"github.com/pfrederiksen/hltv-cal/internal/match"
	"github.com/pfrederiksen/hltv-cal/internal/selection"
)

var (
	flagTeams       string
	flagTournaments []string
	flagBestOf      string
	flagDates       string
	flagUpcoming    bool
	flagSort        string
	flagSelect      []string
	flagAll         bool
	flagOutput      string
)

func newListingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listing <url|file|->",
		Short: "List, filter and bulk-export matches from a listing page",
		Long: `Reads an HLTV listing page (the match list or an event page) and prints the
matches found. With --select or --all the chosen matches are written into a
single .ics file.

Team names are matched fuzzily; quote names that contain spaces:
  hltv-cal listing https://www.hltv.org/matches --team 'navi "team liquid"'`,
		Args: cobra.ExactArgs(1),
		RunE: runListing,
	}

	flags := cmd.Flags()
	flags.StringVar(&flagTeams, "team", "", "Only matches involving these teams (space separated)")
	flags.StringSliceVar(&flagTournaments, "tournament", nil, "Only matches whose tournament contains this text")
	flags.StringVar(&flagBestOf, "best-of", "", "Only these formats, e.g. 3 or 1,3")
	flags.StringVar(&flagDates, "dates", "", "Only matches in a date range: 'Mar 1-15', 'March 1 - April 15' or 'March'")
	flags.BoolVar(&flagUpcoming, "upcoming", false, "Hide matches that have already started")
	flags.StringVar(&flagSort, "sort", string(SortByDate), "Sort order: date, tournament or team")
	flags.StringSliceVar(&flagSelect, "select", nil, "Match IDs to export into one .ics file")
	flags.BoolVar(&flagAll, "all", false, "Export every listed match into one .ics file")
	flags.StringVarP(&flagOutput, "output", "o", "", "Bulk export file name (default hltv-matches-YYYY-MM-DD.ics)")

	return cmd
}

func buildFilter() (*filter.Filter, error) {
	f := filter.NewFilter()

	if flagTeams != "" {
		teams, err := filter.ParseTeams(flagTeams)
		if err != nil {
			return nil, err
		}
		f.Teams = teams
	}

	f.Tournaments = flagTournaments

	if flagBestOf != "" {
		formats, err := filter.ParseBestOf(flagBestOf)
		if err != nil {
			return nil, err
		}
		f.BestOf = formats
	}

	if flagDates != "" {
		from, to, err := filter.ParseDateRange(flagDates)
		if err != nil {
			return nil, err
		}
		f.DateFrom, f.DateTo = from, to
	}

	return f, nil
}

func runListing(cmd *cobra.Command, args []string) error {
	sortOrder := SortOrder(strings.ToLower(flagSort))
	if !sortOrder.valid() {
		return fmt.Errorf("invalid sort order: %s (must be 'date', 'tournament' or 'team')", flagSort)
	}

	f, err := buildFilter()
	if err != nil {
		return err
	}

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

	all := extractor.Listing(doc, a.cfg.BaseURL)
	logger.Debug("Listing loaded", logger.Fields{"page": pageURL, "matches": len(all)})

	matches := f.Apply(all)
	if flagUpcoming {
		matches = upcoming(matches, time.Now())
	}
	sortMatches(matches, sortOrder)

	if len(matches) == 0 && len(f.Teams) > 0 {
		for _, team := range f.Teams {
			if suggestions := filter.SuggestTeams(team, all); len(suggestions) > 0 {
				fmt.Fprintf(a.errOut, "No matches for %q. Teams on this page: %s\n", team, strings.Join(suggestions, ", "))
			}
		}
	}

	result := &OutputResult{
		CheckedAt:  time.Now().UTC(),
		Matches:    matches,
		MatchCount: len(matches),
	}
	if !f.IsEmpty() {
		result.Filter = f.String()
	}

	if flagAll || len(flagSelect) > 0 {
		set := selectMatches(matches)

		filename := flagOutput
		if filename == "" {
			filename = calendar.BulkFilename(time.Now())
		}

		res, err := a.exporter.ExportSelected(ctx, set, filename)
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

// selectMatches builds the bulk selection in listing order
func selectMatches(matches []*match.Match) *selection.Set {
	wanted := make(map[string]bool, len(flagSelect))
	for _, id := range flagSelect {
		wanted[strings.TrimSpace(id)] = true
	}

	set := selection.New()
	for _, m := range matches {
		if flagAll || wanted[m.ID] {
			set.Add(m)
		}
	}

	for id := range wanted {
		if !set.Has(id) {
			logger.Warn("Selected match not listed", logger.Fields{"match_id": id})
		}
	}
	return set
}

func upcoming(matches []*match.Match, now time.Time) []*match.Match {
	kept := make([]*match.Match, 0, len(matches))
	for _, m := range matches {
		if m.IsUpcoming(now) {
			kept = append(kept, m)
		}
	}
	return kept
}
