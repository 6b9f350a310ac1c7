// Package filter narrows a listing down to the matches a user cares about.
//
// Criteria combine with AND; within one criterion any value may match:
//   - Date range (from/to, inclusive)
//   - Teams (fuzzy, case-insensitive, against either side)
//   - Tournaments (substring matching, case-insensitive)
//   - Best-of formats
//
// Example usage:
//
//	teams, _ := filter.ParseTeams(`navi "team liquid"`)
//	f := filter.NewFilter()
//	f.Teams = teams
//	filtered := f.Apply(matches)
package filter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/pfrederiksen/hltv-cal/internal/match"
)

// Filter represents match filtering criteria
type Filter struct {
	// Date range filtering
	DateFrom *time.Time `json:"date_from,omitempty" yaml:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty" yaml:"date_to,omitempty"`

	// Team name filtering (fuzzy, either team)
	Teams []string `json:"teams,omitempty" yaml:"teams,omitempty"`

	// Tournament filtering (case-insensitive substring match)
	Tournaments []string `json:"tournaments,omitempty" yaml:"tournaments,omitempty"`

	// Best-of filtering; 0 matches matches with no known format
	BestOf []int `json:"best_of,omitempty" yaml:"best_of,omitempty"`
}

// NewFilter creates a new empty filter with no active criteria.
// The filter will match all matches until criteria are added.
func NewFilter() *Filter {
	return &Filter{}
}

// IsEmpty checks if the filter has any active criteria
func (f *Filter) IsEmpty() bool {
	return f.DateFrom == nil &&
		f.DateTo == nil &&
		len(f.Teams) == 0 &&
		len(f.Tournaments) == 0 &&
		len(f.BestOf) == 0
}

// Matches checks if a match passes all active criteria
func (f *Filter) Matches(m *match.Match) bool {
	if f.IsEmpty() {
		return true
	}

	if f.DateFrom != nil && m.Date.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && m.Date.After(*f.DateTo) {
		return false
	}

	if len(f.Teams) > 0 && !anyTeam(f.Teams, m) {
		return false
	}

	if len(f.Tournaments) > 0 {
		matched := false
		tournamentLower := strings.ToLower(m.Tournament)
		for _, t := range f.Tournaments {
			if strings.Contains(tournamentLower, strings.ToLower(t)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.BestOf) > 0 {
		matched := false
		for _, bo := range f.BestOf {
			if m.BestOf == bo {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// anyTeam reports whether any query fuzzily matches either team name
func anyTeam(queries []string, m *match.Match) bool {
	for _, q := range queries {
		if fuzzy.MatchFold(q, m.Team1) || fuzzy.MatchFold(q, m.Team2) {
			return true
		}
	}
	return false
}

// Apply returns only the matches that pass the filter, keeping their order.
// If the filter is empty, returns the original list unchanged.
func (f *Filter) Apply(matches []*match.Match) []*match.Match {
	if f.IsEmpty() {
		return matches
	}

	var filtered []*match.Match
	for _, m := range matches {
		if f.Matches(m) {
			filtered = append(filtered, m)
		}
	}

	return filtered
}

// String returns a human-readable description of the active criteria.
// Format: "From: Feb 1, 2026 | Teams: navi, faze | Best of: 3"
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if f.DateFrom != nil {
		parts = append(parts, fmt.Sprintf("From: %s", f.DateFrom.Format("Jan 2, 2006")))
	}

	if f.DateTo != nil {
		parts = append(parts, fmt.Sprintf("To: %s", f.DateTo.Format("Jan 2, 2006")))
	}

	if len(f.Teams) > 0 {
		parts = append(parts, fmt.Sprintf("Teams: %s", strings.Join(f.Teams, ", ")))
	}

	if len(f.Tournaments) > 0 {
		parts = append(parts, fmt.Sprintf("Tournaments: %s", strings.Join(f.Tournaments, ", ")))
	}

	if len(f.BestOf) > 0 {
		formats := make([]string, 0, len(f.BestOf))
		for _, bo := range f.BestOf {
			formats = append(formats, strconv.Itoa(bo))
		}
		parts = append(parts, fmt.Sprintf("Best of: %s", strings.Join(formats, ", ")))
	}

	return strings.Join(parts, " | ")
}

// SuggestTeams ranks the distinct team names in matches against query, best
// first. Used to hint at spellings when a team filter finds nothing.
func SuggestTeams(query string, matches []*match.Match) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range matches {
		for _, name := range []string{m.Team1, m.Team2} {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	ranks := fuzzy.RankFindFold(query, names)
	sort.Stable(ranks)

	suggestions := make([]string, 0, len(ranks))
	for _, r := range ranks {
		suggestions = append(suggestions, r.Target)
	}
	return suggestions
}
