package cli

import (
	"sort"
	"strings"

	"github.com/pfrederiksen/hltv-cal/internal/match"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByDate       SortOrder = "date"
	SortByTournament SortOrder = "tournament"
	SortByTeam       SortOrder = "team"
)

func (s SortOrder) valid() bool {
	switch s {
	case SortByDate, SortByTournament, SortByTeam:
		return true
	}
	return false
}

// sortMatches sorts matches in place; ties keep listing order
func sortMatches(matches []*match.Match, sortOrder SortOrder) {
	switch sortOrder {
	case SortByDate:
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Date.Before(matches[j].Date)
		})
	case SortByTournament:
		sort.SliceStable(matches, func(i, j int) bool {
			ti, tj := strings.ToLower(matches[i].Tournament), strings.ToLower(matches[j].Tournament)
			if ti != tj {
				return ti < tj
			}
			// If tournaments are equal, sort by date
			return matches[i].Date.Before(matches[j].Date)
		})
	case SortByTeam:
		sort.SliceStable(matches, func(i, j int) bool {
			ti, tj := strings.ToLower(matches[i].Team1), strings.ToLower(matches[j].Team1)
			if ti != tj {
				return ti < tj
			}
			return matches[i].Date.Before(matches[j].Date)
		})
	}
}
