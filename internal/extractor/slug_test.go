package extractor

import "testing"

func TestTournamentFromSlug(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		team2  string
		want   string
		wantOK bool
	}{
		{
			name:   "documented example",
			path:   "/matches/2389843/leo-vs-lazer-cats-cct-season-3-europe-series-15",
			team2:  "Lazer Cats",
			want:   "Cct Season 3 Europe Series 15",
			wantOK: true,
		},
		{
			name:   "full url",
			path:   "https://www.hltv.org/matches/2389900/faze-vs-navi-iem-katowice-2026",
			team2:  "NAVI",
			want:   "Iem Katowice 2026",
			wantOK: true,
		},
		{
			name:   "punctuation in team name",
			path:   "/matches/1/mouz-vs-team-spirit-blast-open",
			team2:  "Team Spirit!",
			wantOK: false,
		},
		{
			name:   "team2 token inside a longer team2 slug",
			path:   "/matches/1/cats-vs-lazer-cats-open-cup",
			team2:  "Cats",
			want:   "Open Cup",
			wantOK: true,
		},
		{
			name:   "team2 token earlier than the real boundary",
			path:   "/matches/1/alpha-vs-g2-g2-academy-cup",
			team2:  "G2",
			want:   "G2 Academy Cup",
			wantOK: true,
		},
		{
			name:   "no vs separator",
			path:   "/matches/1/showmatch-2026",
			team2:  "B",
			wantOK: false,
		},
		{
			name:   "no slug",
			path:   "/matches/1/",
			team2:  "B",
			wantOK: false,
		},
		{
			name:   "not a match path",
			path:   "/events/8001/cct-season-3",
			team2:  "B",
			wantOK: false,
		},
		{
			name:   "team2 last in slug",
			path:   "/matches/1/a-vs-b",
			team2:  "B",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TournamentFromSlug(tt.path, tt.team2)
			if ok != tt.wantOK {
				t.Fatalf("TournamentFromSlug(%q, %q) ok = %v, want %v (got %q)", tt.path, tt.team2, ok, tt.wantOK, got)
			}
			if got != tt.want {
				t.Errorf("TournamentFromSlug(%q, %q) = %q, want %q", tt.path, tt.team2, got, tt.want)
			}
		})
	}
}

func TestFirstOf(t *testing.T) {
	calls := 0
	miss := func() (string, bool) { calls++; return "", false }
	hit := func(v string) Strategy {
		return func() (string, bool) { calls++; return v, true }
	}

	got, ok := FirstOf(miss, hit("second"), hit("third"))
	if !ok || got != "second" {
		t.Errorf("FirstOf() = %q, %v; want second, true", got, ok)
	}
	if calls != 2 {
		t.Errorf("strategies run = %d, want 2 (stop at first success)", calls)
	}

	if got, ok := FirstOf(miss, miss); ok || got != "" {
		t.Errorf("FirstOf(all miss) = %q, %v", got, ok)
	}
	if got, ok := FirstOf(); ok || got != "" {
		t.Errorf("FirstOf() = %q, %v", got, ok)
	}
}
