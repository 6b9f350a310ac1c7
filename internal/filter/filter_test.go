package filter

import (
	"testing"
	"time"

	"github.com/pfrederiksen/hltv-cal/internal/match"
)

func sampleMatches() []*match.Match {
	return []*match.Match{
		{ID: "1", Team1: "Natus Vincere", Team2: "FaZe", Tournament: "IEM Katowice 2026", BestOf: 3,
			Date: time.Date(2026, 2, 10, 15, 0, 0, 0, time.UTC)},
		{ID: "2", Team1: "Team Liquid", Team2: "G2", Tournament: "BLAST Premier Spring", BestOf: 1,
			Date: time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC)},
		{ID: "3", Team1: "Vitality", Team2: "The MongolZ", Tournament: "IEM Katowice 2026", BestOf: 5,
			Date: time.Date(2026, 2, 15, 17, 0, 0, 0, time.UTC)},
		{ID: "4", Team1: "Team 1", Team2: "Team 2", Tournament: "CS Match",
			Date: time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)},
	}
}

func ids(ms []*match.Match) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}

func TestFilter_IsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		filter *Filter
		want   bool
	}{
		{"empty filter", NewFilter(), true},
		{"filter with date from", &Filter{DateFrom: timePtr(time.Now())}, false},
		{"filter with team", &Filter{Teams: []string{"navi"}}, false},
		{"filter with tournament", &Filter{Tournaments: []string{"katowice"}}, false},
		{"filter with best of", &Filter{BestOf: []int{3}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.IsEmpty(); got != tt.want {
				t.Errorf("Filter.IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Apply(t *testing.T) {
	feb1 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	feb28 := time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name   string
		filter *Filter
		want   []string
	}{
		{"empty filter keeps everything", NewFilter(), []string{"1", "2", "3", "4"}},
		{"date range", &Filter{DateFrom: &feb1, DateTo: &feb28}, []string{"1", "3"}},
		{"date from only", &Filter{DateFrom: timePtr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))}, []string{"2", "4"}},
		{"team fuzzy abbreviation", &Filter{Teams: []string{"navi"}}, []string{"1"}},
		{"team matches second side", &Filter{Teams: []string{"mongolz"}}, []string{"3"}},
		{"team case insensitive", &Filter{Teams: []string{"FAZE"}}, []string{"1"}},
		{"any of several teams", &Filter{Teams: []string{"g2", "vitality"}}, []string{"2", "3"}},
		{"tournament substring", &Filter{Tournaments: []string{"katowice"}}, []string{"1", "3"}},
		{"best of", &Filter{BestOf: []int{1, 5}}, []string{"2", "3"}},
		{"unknown format", &Filter{BestOf: []int{0}}, []string{"4"}},
		{"combined criteria", &Filter{Tournaments: []string{"iem"}, BestOf: []int{5}}, []string{"3"}},
		{"nothing matches", &Filter{Teams: []string{"zzzz"}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(tt.filter.Apply(sampleMatches()))
			if len(got) != len(tt.want) {
				t.Fatalf("Apply() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Apply()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilter_String(t *testing.T) {
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter *Filter
		want   string
	}{
		{"empty", NewFilter(), "No active filters"},
		{"date", &Filter{DateFrom: &from}, "From: Feb 1, 2026"},
		{"teams and best of", &Filter{Teams: []string{"navi", "faze"}, BestOf: []int{3}}, "Teams: navi, faze | Best of: 3"},
		{"tournaments", &Filter{Tournaments: []string{"IEM"}}, "Tournaments: IEM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.String(); got != tt.want {
				t.Errorf("Filter.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSuggestTeams(t *testing.T) {
	got := SuggestTeams("vit", sampleMatches())
	if len(got) == 0 || got[0] != "Vitality" {
		t.Errorf("SuggestTeams(vit) = %v, want Vitality first", got)
	}

	if got := SuggestTeams("xyzzy", sampleMatches()); len(got) != 0 {
		t.Errorf("SuggestTeams(xyzzy) = %v, want none", got)
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
