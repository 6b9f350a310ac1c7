package calendar

import (
	"testing"
	"time"

	"github.com/pfrederiksen/hltv-cal/internal/match"
)

func TestMatchFilename(t *testing.T) {
	tests := []struct {
		team1, team2 string
		want         string
	}{
		{"FaZe", "NAVI", "FaZe-vs-NAVI.ics"},
		{"Team Liquid", "The MongolZ", "Team-Liquid-vs-The-MongolZ.ics"},
		{"Team  1", "Team 2", "Team-1-vs-Team-2.ics"},
		{"AC/DC", "Foo", "AC-DC-vs-Foo.ics"},
		{`Back\Slash`, "Foo / Bar", "Back-Slash-vs-Foo-Bar.ics"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			m := &match.Match{Team1: tt.team1, Team2: tt.team2}
			if got := MatchFilename(m); got != tt.want {
				t.Errorf("MatchFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBulkFilename(t *testing.T) {
	ts := time.Date(2026, 3, 4, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))
	if got := BulkFilename(ts); got != "hltv-matches-2026-03-05.ics" {
		t.Errorf("BulkFilename() = %q, want %q", got, "hltv-matches-2026-03-05.ics")
	}
}

func TestEnsureICSExt(t *testing.T) {
	tests := map[string]string{
		"matches":     "matches.ics",
		"matches.ics": "matches.ics",
		"out.txt":     "out.txt.ics",
	}
	for in, want := range tests {
		if got := EnsureICSExt(in); got != want {
			t.Errorf("EnsureICSExt(%q) = %q, want %q", in, got, want)
		}
	}
}
