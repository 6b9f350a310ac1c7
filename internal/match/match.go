package match

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	// PlaceholderTeam1 is used when the first team element exists but is blank.
	PlaceholderTeam1 = "Team 1"
	// PlaceholderTeam2 is used when the second team element exists but is blank.
	PlaceholderTeam2 = "Team 2"
	// FallbackTournament is the last entry of every tournament fallback chain.
	FallbackTournament = "CS Match"
)

// Match represents a single scheduled HLTV match
type Match struct {
	ID         string    `json:"id" yaml:"id"`
	Team1      string    `json:"team1" yaml:"team1"`
	Team2      string    `json:"team2" yaml:"team2"`
	Date       time.Time `json:"date" yaml:"date"`
	Tournament string    `json:"tournament" yaml:"tournament"`
	MatchURL   string    `json:"match_url" yaml:"match_url"`
	BestOf     int       `json:"best_of,omitempty" yaml:"best_of,omitempty"` // 0 when the format is unknown
	Stage      string    `json:"stage,omitempty" yaml:"stage,omitempty"`
}

// CalendarEvent is a provider-neutral calendar entry
type CalendarEvent struct {
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Start       time.Time `json:"start" yaml:"start"`
	End         time.Time `json:"end" yaml:"end"`
	Location    string    `json:"location,omitempty" yaml:"location,omitempty"`
	URL         string    `json:"url,omitempty" yaml:"url,omitempty"`
}

var matchIDPattern = regexp.MustCompile(`/matches/(\d+)/`)

// NewID returns the numeric match id embedded in a /matches/{id}/ path.
// Paths without an id get the current unix time in milliseconds, so repeated
// extraction of such a page yields different ids.
func NewID(path string) string {
	if id, ok := IDFromPath(path); ok {
		return id
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// IDFromPath returns the numeric id of a /matches/{id}/ path, if present
func IDFromPath(path string) (string, bool) {
	m := matchIDPattern.FindStringSubmatch(path)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Duration estimates how long a series runs from its best-of count
func Duration(bestOf int) time.Duration {
	switch bestOf {
	case 1:
		return time.Hour
	case 3:
		return 2*time.Hour + 30*time.Minute
	case 5:
		return 4 * time.Hour
	default:
		return 2 * time.Hour
	}
}

// ToCalendarEvent maps a match onto a calendar event
func ToCalendarEvent(m *Match) CalendarEvent {
	return CalendarEvent{
		Title:       fmt.Sprintf("%s vs %s - %s", m.Team1, m.Team2, m.Tournament),
		Description: fmt.Sprintf("Watch at %s", m.MatchURL),
		Start:       m.Date,
		End:         m.Date.Add(Duration(m.BestOf)),
		URL:         m.MatchURL,
	}
}

// ToCalendarEvents maps every match, preserving order
func ToCalendarEvents(matches []*Match) []CalendarEvent {
	events := make([]CalendarEvent, 0, len(matches))
	for _, m := range matches {
		events = append(events, ToCalendarEvent(m))
	}
	return events
}
